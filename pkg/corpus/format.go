package corpus

// Compression is the compression form of a record format's files,
// as described in the ClueWeb22 document specifications.
type Compression int

// Compression forms used by the corpus.
const (
	CompressionGZip Compression = iota + 1
	CompressionZip
)

// Format identifies a record format by its on-disk directory name.
type Format string

// The corpus record formats. The jpg format (page screenshots) is declared
// by the document specifications but not yet distributed.
const (
	FormatTxt     Format = "txt"
	FormatHTML    Format = "html"
	FormatInlink  Format = "inlink"
	FormatOutlink Format = "outlink"
	FormatVDOM    Format = "vdom"
	FormatJPG     Format = "jpg"
)

// Formats lists all record formats.
var Formats = []Format{
	FormatTxt,
	FormatHTML,
	FormatInlink,
	FormatOutlink,
	FormatVDOM,
	FormatJPG,
}

// ID returns the format's directory name under the corpus root.
func (f Format) ID() string {
	return string(f)
}

// Extension returns the file extension of a single compressed file
// of this format.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".warc.gz"
	case FormatTxt, FormatInlink, FormatOutlink:
		return ".json.gz"
	case FormatVDOM:
		return ".zip"
	default:
		return ""
	}
}

// OffsetExtension returns the extension of the per-file offset index,
// or the empty string for formats without offset files.
func (f Format) OffsetExtension() string {
	switch f {
	case FormatHTML:
		return ".warc.offset"
	case FormatTxt, FormatInlink, FormatOutlink:
		return ".offset"
	default:
		return ""
	}
}

// Compression returns the format's compression form.
func (f Format) Compression() Compression {
	switch f {
	case FormatVDOM:
		return CompressionZip
	case FormatTxt, FormatHTML, FormatInlink, FormatOutlink:
		return CompressionGZip
	default:
		return 0
	}
}

// CompressionExtension returns the extension of files within the compressed
// archive, or the empty string for formats without an inner archive.
func (f Format) CompressionExtension() string {
	if f == FormatVDOM {
		return ".bin"
	}
	return ""
}

// Released reports whether files of this format are distributed in the
// current corpus release.
func (f Format) Released() bool {
	return f != FormatJPG
}

// Valid reports whether the format is one of the declared record formats.
func (f Format) Valid() bool {
	switch f {
	case FormatTxt, FormatHTML, FormatInlink, FormatOutlink, FormatVDOM, FormatJPG:
		return true
	default:
		return false
	}
}
