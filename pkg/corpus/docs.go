package corpus

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/webis-de/clueweb22/pkg/errors"
	"github.com/webis-de/clueweb22/pkg/logging"
)

// Docs binds a corpus subset to a local corpus root and provides document
// counts and iteration. A Docs can view its subset through the schema of any
// subset it extends, and can be restricted to a single language.
type Docs struct {
	root     string
	subset   Subset
	view     Subset
	language Language // empty means all languages

	version *Version // cached
}

// DocsOption configures a Docs.
type DocsOption func(*Docs)

// WithView reads the subset through the schema of a subset it extends,
// e.g. the B subset with the A or L schema.
func WithView(view Subset) DocsOption {
	return func(d *Docs) {
		d.view = view
	}
}

// WithLanguage restricts the dataset to a single language slice.
func WithLanguage(language Language) DocsOption {
	return func(d *Docs) {
		d.language = language
	}
}

// NewDocs creates a Docs for a subset stored under the given corpus root.
func NewDocs(root string, subset Subset, opts ...DocsOption) (*Docs, error) {
	d := &Docs{
		root:   root,
		subset: subset,
		view:   subset,
	}
	for _, opt := range opts {
		opt(d)
	}

	validView := false
	for _, view := range d.subset.Views() {
		if d.view == view {
			validView = true
			break
		}
	}
	if !validView {
		return nil, errors.NewValidationError("view", d.view,
			fmt.Sprintf("subset %s cannot be viewed as %s", d.subset, d.view))
	}
	if d.language != "" && !d.language.Valid() {
		return nil, errors.NewValidationError("language", d.language, "unknown corpus language")
	}

	return d, nil
}

// Root returns the corpus root directory.
func (d *Docs) Root() string { return d.root }

// Subset returns the stored subset.
func (d *Docs) Subset() Subset { return d.subset }

// View returns the schema the documents are read with.
func (d *Docs) View() Subset { return d.view }

// Language returns the language restriction, or the empty language.
func (d *Docs) Language() Language { return d.language }

// Name returns the dataset identifier path below the corpus name,
// e.g. "b/as-a/en" for the B subset viewed as A and restricted to English.
func (d *Docs) Name() string {
	parts := []string{d.subset.Tag()}
	if d.view != d.subset {
		parts = append(parts, "as-"+d.view.Tag())
	}
	if d.language != "" {
		parts = append(parts, d.language.Tag())
	}
	return strings.Join(parts, "/")
}

// Version returns the corpus disk version, detected once and cached.
func (d *Docs) Version() (Version, error) {
	if d.version == nil {
		version, err := DetectVersion(d.root)
		if err != nil {
			return Version{}, err
		}
		d.version = &version
	}
	return *d.version, nil
}

// Readme returns the corpus README shipped with the distribution.
func (d *Docs) Readme() (string, error) {
	name := filepath.Join(d.root, "README.txt")
	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.WrapIO("read", name, err)
	}
	return string(data), nil
}

// DiffRecordCounts returns the per-file record counts of one of the
// subset's diff formats. Diff format files cover exactly the subset's
// documents, even when the corpus root holds a broader subset, so these
// counts are authoritative for the dataset.
func (d *Docs) DiffRecordCounts() ([]FileCount, error) {
	diff := d.subset.DiffFormats()
	if len(diff) == 0 {
		// The B subset adds no format of its own until jpg is released;
		// fall back to html counts.
		return RecordCounts(d.root, FormatHTML, d.language)
	}
	return RecordCounts(d.root, diff[0], d.language)
}

// RecordCounts returns the per-file record counts for a format, constrained
// to the subset's files even if the corpus root contains a broader subset.
func (d *Docs) RecordCounts(format Format) ([]FileCount, error) {
	counts, err := RecordCounts(d.root, format, d.language)
	if err != nil {
		return nil, err
	}
	available := make(map[FileID]bool, len(counts))
	for _, c := range counts {
		available[c.File] = true
	}

	diffCounts, err := d.DiffRecordCounts()
	if err != nil {
		return nil, err
	}

	constrained := make([]FileCount, 0, len(diffCounts))
	for _, c := range diffCounts {
		if available[c.File] {
			constrained = append(constrained, c)
		}
	}
	return constrained, nil
}

// Count returns the number of documents in the dataset.
func (d *Docs) Count() (int, error) {
	counts, err := d.DiffRecordCounts()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total, nil
}

// filePaths lists the records files for a format, in ascending file order,
// resolved against the corpus root.
func (d *Docs) filePaths(format Format) ([]string, error) {
	counts, err := d.RecordCounts(format)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(counts))
	for i, c := range counts {
		paths[i] = filepath.Join(d.root, c.File.FormatPath(format))
	}
	return paths, nil
}

// Docs returns a sequential iterator over all documents of the dataset.
// The iterator must be closed.
func (d *Docs) Docs(ctx context.Context) (*DocIterator, error) {
	it := &DocIterator{
		ctx:  ctx,
		view: d.view,
	}

	txtPaths, err := d.filePaths(FormatTxt)
	if err != nil {
		return nil, err
	}
	it.txt = newGzipStream(txtPaths, func(r io.Reader) func() (TxtRecord, error) {
		return NewTxtReader(r).Next
	})

	if d.view != SubsetL {
		htmlPaths, err := d.filePaths(FormatHTML)
		if err != nil {
			return nil, err
		}
		inlinkPaths, err := d.filePaths(FormatInlink)
		if err != nil {
			return nil, err
		}
		outlinkPaths, err := d.filePaths(FormatOutlink)
		if err != nil {
			return nil, err
		}
		vdomPaths, err := d.filePaths(FormatVDOM)
		if err != nil {
			return nil, err
		}

		it.html = newGzipStream(htmlPaths, func(r io.Reader) func() (HTMLRecord, error) {
			return NewHTMLReader(r).Next
		})
		it.inlink = newGzipStream(inlinkPaths, func(r io.Reader) func() (*LinkRecord, error) {
			return NewLinkReader(r, FormatInlink).Next
		})
		it.outlink = newGzipStream(outlinkPaths, func(r io.Reader) func() (*LinkRecord, error) {
			return NewLinkReader(r, FormatOutlink).Next
		})
		it.vdom = newZipStream(vdomPaths)
	}

	return it, nil
}

// DocIterator iterates documents by zipping the per-format record streams.
type DocIterator struct {
	ctx  context.Context
	view Subset

	txt     *gzipStream[TxtRecord]
	html    *gzipStream[HTMLRecord]
	inlink  *gzipStream[*LinkRecord]
	outlink *gzipStream[*LinkRecord]
	vdom    *zipStream
}

// Next returns the next document, or io.EOF after the last one.
func (it *DocIterator) Next() (Doc, error) {
	if err := it.ctx.Err(); err != nil {
		return nil, err
	}

	txt, err := it.txt.Next()
	if err != nil {
		return nil, err // io.EOF ends the iteration
	}

	if it.view == SubsetL {
		return LDoc{
			DocID:    txt.DocID,
			URL:      txt.URL,
			URLHash:  txt.URLHash,
			Language: txt.Language,
			Text:     txt.Text,
		}, nil
	}

	html, err := it.html.Next()
	if err != nil {
		return nil, unalignedStreams(FormatHTML, err)
	}
	inlink, err := it.inlink.Next()
	if err != nil {
		return nil, unalignedStreams(FormatInlink, err)
	}
	outlink, err := it.outlink.Next()
	if err != nil {
		return nil, unalignedStreams(FormatOutlink, err)
	}
	vdom, err := it.vdom.Next()
	if err != nil {
		return nil, unalignedStreams(FormatVDOM, err)
	}

	return combineDoc(it.ctx, it.view, txt, html, inlink, outlink, vdom)
}

// Close releases all open files.
func (it *DocIterator) Close() error {
	var firstErr error
	for _, err := range []error{
		it.txt.Close(),
		it.html.Close(),
		it.inlink.Close(),
		it.outlink.Close(),
		it.vdom.Close(),
	} {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// unalignedStreams converts an early end of a secondary record stream into
// a hard error: all format streams must yield one record per document.
func unalignedStreams(format Format, err error) error {
	if err == io.EOF {
		return errors.WrapParse(format.ID(), "",
			fmt.Errorf("record stream ended before the txt stream"))
	}
	return err
}

// combineDoc builds an A or B document from one record of every format,
// verifying record alignment. The published corpus has known URL and URL
// hash inconsistencies between record types; those are logged, not fatal.
func combineDoc(ctx context.Context, view Subset, txt TxtRecord, html HTMLRecord,
	inlink, outlink *LinkRecord, vdom VDOMRecord) (Doc, error) {

	logger := logging.FromContext(ctx)

	if txt.DocID != html.DocID {
		return nil, errors.WrapParse("records", "",
			fmt.Errorf("txt record %s does not align with html record %s", txt.DocID, html.DocID))
	}
	if txt.URL != html.URL {
		// txt URLs are truncated to everything before the first comma.
		logger.Debug().
			Str("doc_id", txt.DocID).
			Str("txt_url", txt.URL).
			Str("html_url", html.URL).
			Msg("URL mismatch between txt and html records")
	}
	if txt.URLHash != html.URLHash {
		logger.Warn().
			Str("doc_id", txt.DocID).
			Str("txt_url_hash", txt.URLHash).
			Str("html_url_hash", html.URLHash).
			Msg("URL hash mismatch between txt and html records")
	}
	if txt.Language != "other" && txt.Language != html.Language {
		return nil, errors.WrapParse("records", "",
			fmt.Errorf("language mismatch for %s: txt %q, html %q", txt.DocID, txt.Language, html.Language))
	}

	var inlinkAnchors, outlinkAnchors []Anchor
	if inlink != nil {
		if inlink.DocID != html.DocID {
			return nil, errors.WrapParse("records", "",
				fmt.Errorf("inlink record %s does not align with html record %s", inlink.DocID, html.DocID))
		}
		logLinkMismatch(logger, "inlink", html, inlink)
		inlinkAnchors = inlink.Anchors
	}
	if outlink != nil {
		if outlink.DocID != html.DocID {
			return nil, errors.WrapParse("records", "",
				fmt.Errorf("outlink record %s does not align with html record %s", outlink.DocID, html.DocID))
		}
		logLinkMismatch(logger, "outlink", html, outlink)
		outlinkAnchors = outlink.Anchors
	}

	doc := ADoc{
		DocID:          html.DocID,
		URL:            html.URL,
		URLHash:        html.URLHash,
		Language:       html.Language,
		Text:           txt.Text,
		Date:           html.Date,
		HTML:           html.HTML,
		RecordID:       html.RecordID,
		PayloadDigest:  html.PayloadDigest,
		VDOMNodes:      html.VDOMNodes,
		VDOM:           vdom.Data,
		InlinkAnchors:  inlinkAnchors,
		OutlinkAnchors: outlinkAnchors,
	}
	if view == SubsetB {
		return BDoc(doc), nil
	}
	return doc, nil
}

// logLinkMismatch logs the known URL and URL hash inconsistencies between
// link records and html records.
func logLinkMismatch(logger *zerolog.Logger, kind string, html HTMLRecord, link *LinkRecord) {
	if link.URL != html.URL {
		logger.Warn().
			Str("doc_id", html.DocID).
			Str(kind+"_url", link.URL).
			Str("html_url", html.URL).
			Msg("URL mismatch between " + kind + " and html records")
	}
	if link.URLHash != html.URLHash {
		logger.Warn().
			Str("doc_id", html.DocID).
			Str(kind+"_url_hash", link.URLHash).
			Str("html_url_hash", html.URLHash).
			Msg("URL hash mismatch between " + kind + " and html records")
	}
}

// gzipStream iterates records of one format across a list of gzip files,
// opening each file lazily.
type gzipStream[T any] struct {
	paths     []string
	newReader func(io.Reader) func() (T, error)

	index int
	file  *os.File
	gz    *gzip.Reader
	next  func() (T, error)
}

// newGzipStream creates a stream over the given files.
func newGzipStream[T any](paths []string, newReader func(io.Reader) func() (T, error)) *gzipStream[T] {
	return &gzipStream[T]{paths: paths, newReader: newReader}
}

// Next returns the next record across all files, or io.EOF after the last.
func (s *gzipStream[T]) Next() (T, error) {
	var zero T
	for {
		if s.next == nil {
			if s.index >= len(s.paths) {
				return zero, io.EOF
			}
			if err := s.open(s.paths[s.index]); err != nil {
				return zero, err
			}
			s.index++
		}

		record, err := s.next()
		if err == io.EOF {
			if err := s.closeCurrent(); err != nil {
				return zero, err
			}
			continue
		}
		if err != nil {
			return zero, err
		}
		return record, nil
	}
}

// open opens one gzip file and positions the record reader on it.
func (s *gzipStream[T]) open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return errors.WrapParse("gzip", path, err)
	}
	s.file = file
	s.gz = gz
	s.next = s.newReader(gz)
	return nil
}

// closeCurrent closes the currently open file, if any.
func (s *gzipStream[T]) closeCurrent() error {
	s.next = nil
	if s.gz != nil {
		s.gz.Close()
		s.gz = nil
	}
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// Close releases the stream's open file.
func (s *gzipStream[T]) Close() error {
	if s == nil {
		return nil
	}
	return s.closeCurrent()
}

// zipStream iterates vdom records across a list of zip files. Each archive
// member holds the visual DOM of one document, in ascending member order.
type zipStream struct {
	paths []string

	index   int
	archive *zip.ReadCloser
	members []*zip.File
	member  int
}

// newZipStream creates a stream over the given zip files.
func newZipStream(paths []string) *zipStream {
	return &zipStream{paths: paths}
}

// Next returns the next vdom record across all archives, or io.EOF after
// the last.
func (s *zipStream) Next() (VDOMRecord, error) {
	for {
		if s.archive == nil {
			if s.index >= len(s.paths) {
				return VDOMRecord{}, io.EOF
			}
			if err := s.open(s.paths[s.index]); err != nil {
				return VDOMRecord{}, err
			}
			s.index++
		}

		if s.member >= len(s.members) {
			if err := s.closeCurrent(); err != nil {
				return VDOMRecord{}, err
			}
			continue
		}

		member := s.members[s.member]
		s.member++
		data, err := readZipMember(member)
		if err != nil {
			return VDOMRecord{}, err
		}
		return VDOMRecord{Data: data}, nil
	}
}

// open opens one archive and lists its vdom members.
func (s *zipStream) open(path string) error {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	s.archive = archive
	s.members = s.members[:0]
	s.member = 0
	for _, member := range archive.File {
		if strings.HasSuffix(member.Name, FormatVDOM.CompressionExtension()) {
			s.members = append(s.members, member)
		}
	}
	// Member names are fixed-width document IDs, so name order is document
	// order. The archive's own member order is not guaranteed.
	sort.Slice(s.members, func(i, j int) bool {
		return s.members[i].Name < s.members[j].Name
	})
	return nil
}

// closeCurrent closes the currently open archive, if any.
func (s *zipStream) closeCurrent() error {
	if s.archive == nil {
		return nil
	}
	err := s.archive.Close()
	s.archive = nil
	s.members = nil
	return err
}

// Close releases the stream's open archive.
func (s *zipStream) Close() error {
	if s == nil {
		return nil
	}
	return s.closeCurrent()
}

// readZipMember reads one archive member fully.
func readZipMember(member *zip.File) ([]byte, error) {
	r, err := member.Open()
	if err != nil {
		return nil, errors.WrapIO("open", member.Name, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", member.Name, err)
	}
	return data, nil
}
