package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// TxtReader reads txt records from a decompressed JSON-lines stream.
type TxtReader struct {
	r *bufio.Reader
}

// NewTxtReader creates a reader for txt records.
func NewTxtReader(r io.Reader) *TxtReader {
	return &TxtReader{r: bufio.NewReaderSize(r, 1<<16)}
}

// txtWire mirrors the JSON keys of txt records.
type txtWire struct {
	DocID    string `json:"ClueWeb22-ID"`
	URL      string `json:"URL"`
	URLHash  string `json:"URL-hash"`
	Language string `json:"Language"`
	Text     string `json:"Clean-Text"`
}

// Next returns the next txt record, or io.EOF at the end of the stream.
func (t *TxtReader) Next() (TxtRecord, error) {
	line, err := readLine(t.r)
	if err != nil {
		return TxtRecord{}, err
	}

	var wire txtWire
	if err := json.Unmarshal(line, &wire); err != nil {
		return TxtRecord{}, errors.WrapParse("json", "txt record", err)
	}

	// The published corpus appends a newline to URLs of txt records;
	// the other record types don't have it.
	url := strings.TrimSuffix(wire.URL, "\n")

	return TxtRecord{
		DocID:    wire.DocID,
		URL:      url,
		URLHash:  wire.URLHash,
		Language: wire.Language,
		Text:     wire.Text,
	}, nil
}

// LinkReader reads inlink or outlink records from a decompressed JSON-lines
// stream. Blank lines yield a nil record to keep streams aligned.
type LinkReader struct {
	r      *bufio.Reader
	format Format
}

// NewLinkReader creates a reader for link records of the given format
// (FormatInlink or FormatOutlink).
func NewLinkReader(r io.Reader, format Format) *LinkReader {
	return &LinkReader{r: bufio.NewReaderSize(r, 1<<16), format: format}
}

// anchorWire decodes the positional anchor arrays of link records:
// [url, url hash, anchor text, <unused>, language].
type anchorWire Anchor

func (a *anchorWire) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 5 {
		return fmt.Errorf("anchor has %d fields, expected 5", len(fields))
	}

	for i, target := range map[int]*string{
		0: &a.URL,
		1: &a.URLHash,
		2: &a.Text,
		4: &a.Language,
	} {
		if err := json.Unmarshal(fields[i], target); err != nil {
			return fmt.Errorf("anchor field %d: %w", i, err)
		}
	}
	return nil
}

// linkWire mirrors the JSON keys of link records. Inlink files carry the
// anchors under "anchors", outlink files under "outlinks".
type linkWire struct {
	DocID    string       `json:"ClueWeb22-ID"`
	URL      string       `json:"url"`
	URLHash  string       `json:"urlhash"`
	Anchors  []anchorWire `json:"anchors"`
	Outlinks []anchorWire `json:"outlinks"`
}

// Next returns the next link record, a nil record for a blank line, or
// io.EOF at the end of the stream.
func (l *LinkReader) Next() (*LinkRecord, error) {
	line, err := readLine(l.r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(line)) == 0 {
		return nil, nil
	}

	var wire linkWire
	if err := json.Unmarshal(line, &wire); err != nil {
		return nil, errors.WrapParse("json", l.format.ID()+" record", err)
	}

	anchors := wire.Anchors
	if l.format == FormatOutlink {
		anchors = wire.Outlinks
	}

	record := &LinkRecord{
		DocID:   wire.DocID,
		URL:     wire.URL,
		URLHash: wire.URLHash,
		Anchors: make([]Anchor, len(anchors)),
	}
	for i, a := range anchors {
		record.Anchors[i] = Anchor(a)
	}
	return record, nil
}

// readLine reads one line without the trailing newline. A non-empty final
// line without a newline is returned before io.EOF.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}
	if err != nil {
		return nil, err
	}
	return line[:len(line)-1], nil
}
