package corpus

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// Constraints from the ClueWeb22 document specifications.
const (
	maxSubdirectoriesPerStream = 80
	maxFilesPerSubdirectory    = 100
)

// DocID is a decomposed ClueWeb22 document ID such as
// "clueweb22-de0000-00-00366". It can be used to check the ID format and to
// construct the relative file path holding the document's records.
type DocID struct {
	Language     Language
	Stream       int
	Subdirectory int
	File         int
	Doc          int
}

// ParseDocID parses and validates a ClueWeb22 document ID.
func ParseDocID(id string) (DocID, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 4 {
		return DocID{}, errors.NewIDError("doc", id, errors.New("expected 4 dash-separated parts"))
	}
	if parts[0] != "clueweb22" {
		return DocID{}, errors.NewIDError("doc", id, errors.New(`must start with "clueweb22"`))
	}

	language, stream, subdirectory, err := parseSubdirectoryPart(parts[1])
	if err != nil {
		return DocID{}, errors.NewIDError("doc", id, err)
	}

	file, err := strconv.Atoi(parts[2])
	if err != nil {
		return DocID{}, errors.NewIDError("doc", id, errors.New("file part is not numeric"))
	}
	if file > maxFilesPerSubdirectory {
		return DocID{}, errors.NewIDError("doc", id, fmt.Errorf("file %d exceeds %d", file, maxFilesPerSubdirectory))
	}

	doc, err := strconv.Atoi(parts[3])
	if err != nil {
		return DocID{}, errors.NewIDError("doc", id, errors.New("doc sequence is not numeric"))
	}

	return DocID{
		Language:     language,
		Stream:       stream,
		Subdirectory: subdirectory,
		File:         file,
		Doc:          doc,
	}, nil
}

// parseSubdirectoryPart splits a component like "de0000" or "zh_chs0013"
// into language, stream, and subdirectory.
func parseSubdirectoryPart(part string) (Language, int, int, error) {
	if len(part) <= 4 {
		return "", 0, 0, errors.New("subdirectory part too short")
	}

	language, ok := LanguageByID(part[:len(part)-4])
	if !ok {
		return "", 0, 0, fmt.Errorf("unknown language %q", part[:len(part)-4])
	}

	stream, err := strconv.Atoi(part[len(part)-4 : len(part)-2])
	if err != nil {
		return "", 0, 0, errors.New("stream part is not numeric")
	}

	subdirectory, err := strconv.Atoi(part[len(part)-2:])
	if err != nil {
		return "", 0, 0, errors.New("subdirectory part is not numeric")
	}
	if subdirectory > maxSubdirectoriesPerStream {
		return "", 0, 0, fmt.Errorf("subdirectory %d exceeds %d", subdirectory, maxSubdirectoriesPerStream)
	}

	return language, stream, subdirectory, nil
}

// FileID locates the records file holding this document, without the
// doc sequence.
func (d DocID) FileID() FileID {
	return FileID{
		Language:     d.Language,
		Stream:       d.Stream,
		Subdirectory: d.Subdirectory,
		File:         d.File,
	}
}

// Path returns the document's records file path relative to a format
// directory, without the format's file extension, e.g.
// "de/de00/de0000/de0000-00".
func (d DocID) Path() string {
	return d.FileID().Path()
}

// String formats the decomposed ID back into its canonical form.
func (d DocID) String() string {
	return fmt.Sprintf("clueweb22-%s%02d%02d-%02d-%05d",
		d.Language.ID(), d.Stream, d.Subdirectory, d.File, d.Doc)
}

// FileID is a decomposed ClueWeb22 file ID: a document ID without the doc
// sequence. It identifies one records file per format and is used to align
// files of different formats and to iterate record counts.
type FileID struct {
	Language     Language
	Stream       int
	Subdirectory int
	File         int
}

// FileIDFromPath recovers a file ID from a records file path such as
// "txt/de/de00/de0000/de0000-00.json.gz".
func FileIDFromPath(p string) (FileID, error) {
	parts := strings.Split(filepath.ToSlash(p), "/")
	if len(parts) < 4 {
		return FileID{}, errors.NewIDError("file", p, errors.New("expected at least 4 path elements"))
	}

	language, ok := LanguageByID(parts[len(parts)-4])
	if !ok {
		return FileID{}, errors.NewIDError("file", p, fmt.Errorf("unknown language %q", parts[len(parts)-4]))
	}

	stream, err := trailingNumber(parts[len(parts)-3])
	if err != nil {
		return FileID{}, errors.NewIDError("file", p, err)
	}
	subdirectory, err := trailingNumber(parts[len(parts)-2])
	if err != nil {
		return FileID{}, errors.NewIDError("file", p, err)
	}

	name, _, _ := strings.Cut(parts[len(parts)-1], ".")
	_, fileTag, ok := strings.Cut(name, "-")
	if !ok {
		return FileID{}, errors.NewIDError("file", p, errors.New("file name has no dash"))
	}
	file, err := strconv.Atoi(fileTag)
	if err != nil {
		return FileID{}, errors.NewIDError("file", p, errors.New("file part is not numeric"))
	}

	return FileID{
		Language:     language,
		Stream:       stream,
		Subdirectory: subdirectory,
		File:         file,
	}, nil
}

// trailingNumber parses the last two characters of a path element
// ("de00" -> 0, "zh_chs0013" -> 13).
func trailingNumber(part string) (int, error) {
	if len(part) < 2 {
		return 0, errors.New("path element too short")
	}
	return strconv.Atoi(part[len(part)-2:])
}

// DocID returns the document ID for a doc sequence within this file.
func (f FileID) DocID(doc int) DocID {
	return DocID{
		Language:     f.Language,
		Stream:       f.Stream,
		Subdirectory: f.Subdirectory,
		File:         f.File,
		Doc:          doc,
	}
}

// Path returns the records file path relative to a format directory,
// without the format's file extension.
func (f FileID) Path() string {
	languagePath := f.Language.ID()
	streamPath := fmt.Sprintf("%s%02d", languagePath, f.Stream)
	subdirectoryPath := fmt.Sprintf("%s%02d", streamPath, f.Subdirectory)
	filePath := fmt.Sprintf("%s-%02d", subdirectoryPath, f.File)
	return filepath.Join(languagePath, streamPath, subdirectoryPath, filePath)
}

// String formats the decomposed file ID in the document ID notation,
// without the doc sequence.
func (f FileID) String() string {
	return fmt.Sprintf("clueweb22-%s%02d%02d-%02d",
		f.Language.ID(), f.Stream, f.Subdirectory, f.File)
}

// FormatPath resolves the file's path relative to the corpus root for one
// record format, including the format's file extension. The Chinese outlink
// files use a deviating stream directory name; that quirk of the published
// corpus is applied here.
func (f FileID) FormatPath(format Format) string {
	p := filepath.Join(format.ID(), f.Path()) + format.Extension()
	if format == FormatOutlink && f.Language == LanguageZH {
		// The published corpus stores Chinese outlink files under
		// outlink/zh_chs/zh00/... instead of outlink/zh_chs/zh_chs00/...
		p = strings.Replace(p, "zh_chs/zh_chs", "zh_chs/zh", 1)
	}
	return p
}

// OffsetPath resolves the file's offset index path relative to the corpus
// root for one record format. Formats without offset files return the
// empty string.
func (f FileID) OffsetPath(format Format) string {
	if format.OffsetExtension() == "" {
		return ""
	}
	p := f.FormatPath(format)
	return strings.TrimSuffix(p, format.Extension()) + format.OffsetExtension()
}
