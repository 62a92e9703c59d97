package corpus

import (
	"bufio"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// WARC-Date layouts seen in the corpus: with and without fractional seconds.
const (
	warcDateLayout         = "2006-01-02T15:04:05Z"
	warcDateFractionLayout = "2006-01-02T15:04:05.999999Z"
)

// HTMLReader reads html records from a decompressed WARC/1.0 stream.
// Only response records are returned; other record types are skipped.
type HTMLReader struct {
	r *bufio.Reader
}

// NewHTMLReader creates a reader for html records.
func NewHTMLReader(r io.Reader) *HTMLReader {
	return &HTMLReader{r: bufio.NewReaderSize(r, 1<<16)}
}

// Next returns the next html record, or io.EOF at the end of the stream.
func (h *HTMLReader) Next() (HTMLRecord, error) {
	for {
		header, body, err := h.nextRecord()
		if err != nil {
			return HTMLRecord{}, err
		}
		if header.Get("WARC-Type") != "response" {
			continue
		}
		return parseHTMLRecord(header, body)
	}
}

// nextRecord reads one raw WARC record: the version line, the header block,
// and a body of exactly Content-Length bytes.
func (h *HTMLReader) nextRecord() (textproto.MIMEHeader, []byte, error) {
	// Skip the blank lines separating records from the previous body.
	var version string
	for {
		line, err := h.r.ReadString('\n')
		if err != nil {
			return nil, nil, err // io.EOF between records is the normal end
		}
		version = strings.TrimRight(line, "\r\n")
		if version != "" {
			break
		}
	}
	if !strings.HasPrefix(version, "WARC/") {
		return nil, nil, errors.WrapParse("warc", "",
			fmt.Errorf("unexpected version line %q", version))
	}

	header, err := textproto.NewReader(h.r).ReadMIMEHeader()
	if err != nil {
		return nil, nil, errors.WrapParse("warc", "", err)
	}

	length, err := strconv.Atoi(header.Get("Content-Length"))
	if err != nil {
		return nil, nil, errors.WrapParse("warc", "",
			fmt.Errorf("bad Content-Length: %w", err))
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(h.r, body); err != nil {
		return nil, nil, errors.WrapParse("warc", "",
			fmt.Errorf("truncated record body: %w", err))
	}

	return header, body, nil
}

// parseHTMLRecord decodes the ClueWeb22-specific headers of a response
// record.
func parseHTMLRecord(header textproto.MIMEHeader, body []byte) (HTMLRecord, error) {
	dateHeader := header.Get("WARC-Date")
	layout := warcDateLayout
	if strings.Contains(dateHeader, ".") {
		layout = warcDateFractionLayout
	}
	date, err := time.Parse(layout, dateHeader)
	if err != nil {
		return HTMLRecord{}, errors.WrapParse("warc", "", fmt.Errorf("bad WARC-Date: %w", err))
	}

	// Record IDs are angle-bracketed URN UUIDs, e.g. <urn:uuid:...>.
	recordIDHeader := strings.Trim(header.Get("WARC-Record-ID"), "<>")
	recordID, err := uuid.Parse(recordIDHeader)
	if err != nil {
		return HTMLRecord{}, errors.WrapParse("warc", "", fmt.Errorf("bad WARC-Record-ID: %w", err))
	}

	vdomNodes := make(map[AnnotationType][]int, len(AnnotationTypes))
	for _, annotation := range AnnotationTypes {
		nodes, err := parseNodeList(header.Get("VDOM-" + string(annotation)))
		if err != nil {
			return HTMLRecord{}, errors.WrapParse("warc", "",
				fmt.Errorf("bad VDOM-%s: %w", annotation, err))
		}
		vdomNodes[annotation] = nodes
	}

	return HTMLRecord{
		DocID:         header.Get("ClueWeb22-ID"),
		URL:           header.Get("WARC-Target-URI"),
		URLHash:       header.Get("URL-Hash"),
		Language:      header.Get("Language"),
		Date:          date,
		RecordID:      recordID,
		PayloadDigest: header.Get("WARC-Payload-Digest"),
		HTML:          body,
		VDOMNodes:     vdomNodes,
	}, nil
}

// parseNodeList parses a space-separated list of visual DOM node numbers.
func parseNodeList(value string) ([]int, error) {
	fields := strings.Fields(value)
	nodes := make([]int, 0, len(fields))
	for _, field := range fields {
		node, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
