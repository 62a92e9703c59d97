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

	"github.com/webis-de/clueweb22/pkg/errors"
)

// Store provides random access to documents by ClueWeb22 ID, using the
// per-file offset indexes shipped with the corpus.
type Store struct {
	docs *Docs
}

// NewStore creates a document store over a dataset.
func NewStore(docs *Docs) *Store {
	return &Store{docs: docs}
}

// Store returns a document store over this dataset.
func (d *Docs) Store() *Store {
	return NewStore(d)
}

// Get returns a single document by ID.
func (s *Store) Get(ctx context.Context, id string) (Doc, error) {
	docs, err := s.GetMany(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return docs[0], nil
}

// GetMany returns the documents with the given IDs, in ascending document
// order. Lookups for the same records file share one file open.
func (s *Store) GetMany(ctx context.Context, ids []string) ([]Doc, error) {
	docIDs := make([]DocID, len(ids))
	for i, id := range ids {
		docID, err := ParseDocID(id)
		if err != nil {
			return nil, err
		}
		if s.docs.language != "" && docID.Language != s.docs.language {
			return nil, errors.NewIDError("document", id,
				fmt.Errorf("document is not in the %s language slice", s.docs.language.Tag()))
		}
		docIDs[i] = docID
	}

	sort.Slice(docIDs, func(i, j int) bool {
		a, b := docIDs[i], docIDs[j]
		if a.FileID() != b.FileID() {
			return a.FileID().String() < b.FileID().String()
		}
		return a.Doc < b.Doc
	})

	var docs []Doc
	for start := 0; start < len(docIDs); {
		end := start
		for end < len(docIDs) && docIDs[end].FileID() == docIDs[start].FileID() {
			end++
		}
		fileDocs, err := s.readFile(ctx, docIDs[start].FileID(), docIDs[start:end])
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
		start = end
	}
	return docs, nil
}

// readFile reads the selected documents of one records file, given their
// IDs in ascending document order.
func (s *Store) readFile(ctx context.Context, file FileID, docIDs []DocID) ([]Doc, error) {
	indices := make([]int, len(docIDs))
	for i, id := range docIDs {
		indices[i] = id.Doc
	}

	txt, err := s.readGzipRecords(file, FormatTxt, indices, func(r io.Reader) func() (any, error) {
		next := NewTxtReader(r).Next
		return func() (any, error) { return next() }
	})
	if err != nil {
		return nil, err
	}

	if s.docs.view == SubsetL {
		docs := make([]Doc, len(txt))
		for i, record := range txt {
			rec := record.(TxtRecord)
			docs[i] = LDoc{
				DocID:    rec.DocID,
				URL:      rec.URL,
				URLHash:  rec.URLHash,
				Language: rec.Language,
				Text:     rec.Text,
			}
		}
		return docs, nil
	}

	html, err := s.readGzipRecords(file, FormatHTML, indices, func(r io.Reader) func() (any, error) {
		next := NewHTMLReader(r).Next
		return func() (any, error) { return next() }
	})
	if err != nil {
		return nil, err
	}
	inlink, err := s.readGzipRecords(file, FormatInlink, indices, func(r io.Reader) func() (any, error) {
		next := NewLinkReader(r, FormatInlink).Next
		return func() (any, error) { return next() }
	})
	if err != nil {
		return nil, err
	}
	outlink, err := s.readGzipRecords(file, FormatOutlink, indices, func(r io.Reader) func() (any, error) {
		next := NewLinkReader(r, FormatOutlink).Next
		return func() (any, error) { return next() }
	})
	if err != nil {
		return nil, err
	}
	vdom, err := s.readVDOMRecords(file, docIDs)
	if err != nil {
		return nil, err
	}

	docs := make([]Doc, len(docIDs))
	for i := range docIDs {
		doc, err := combineDoc(ctx, s.docs.view,
			txt[i].(TxtRecord), html[i].(HTMLRecord),
			inlink[i].(*LinkRecord), outlink[i].(*LinkRecord), vdom[i])
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}
	return docs, nil
}

// readGzipRecords reads the records with the given indices from one gzip
// records file, using its offset index to decompress only the selected
// sections.
func (s *Store) readGzipRecords(file FileID, format Format, indices []int,
	newReader func(io.Reader) func() (any, error)) ([]any, error) {

	name := filepath.Join(s.docs.root, file.FormatPath(format))
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WrapIO("open", name, err)
	}
	defer f.Close()

	offsets, err := ReadOffsets(filepath.Join(s.docs.root, file.OffsetPath(format)))
	if err != nil {
		return nil, err
	}
	sections, err := SelectSections(f, offsets, indices)
	if err != nil {
		return nil, err
	}
	gz, err := gzip.NewReader(sections)
	if err != nil {
		return nil, errors.WrapParse("gzip", name, err)
	}
	defer gz.Close()

	next := newReader(gz)
	records := make([]any, 0, len(indices))
	for range indices {
		record, err := next()
		if err == io.EOF {
			return nil, errors.WrapParse(format.ID(), name,
				fmt.Errorf("file holds fewer records than its offset index"))
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// readVDOMRecords reads the vdom archive members of the given documents.
// Members are named after the document ID with the payload extension.
func (s *Store) readVDOMRecords(file FileID, docIDs []DocID) ([]VDOMRecord, error) {
	name := filepath.Join(s.docs.root, file.FormatPath(FormatVDOM))
	archive, err := zip.OpenReader(name)
	if err != nil {
		return nil, errors.WrapIO("open", name, err)
	}
	defer archive.Close()

	members := make(map[string]*zip.File, len(archive.File))
	for _, member := range archive.File {
		members[member.Name] = member
	}

	records := make([]VDOMRecord, len(docIDs))
	for i, id := range docIDs {
		memberName := id.String() + FormatVDOM.CompressionExtension()
		member, ok := members[memberName]
		if !ok {
			return nil, errors.NewNotFoundError("vdom record", id.String())
		}
		data, err := readZipMember(member)
		if err != nil {
			return nil, err
		}
		records[i] = VDOMRecord{Data: data}
	}
	return records, nil
}
