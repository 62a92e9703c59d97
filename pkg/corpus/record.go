package corpus

import (
	"time"

	"github.com/google/uuid"
)

// AnnotationType classifies the semantic annotations attached to visual
// DOM nodes in html records.
type AnnotationType string

// Annotation types from the ClueWeb22 document specifications.
const (
	AnnotationNone      AnnotationType = "None"
	AnnotationPrimary   AnnotationType = "Primary"
	AnnotationHeading   AnnotationType = "Heading"
	AnnotationTitle     AnnotationType = "Title"
	AnnotationParagraph AnnotationType = "Paragraph"
	AnnotationTable     AnnotationType = "Table"
	AnnotationList      AnnotationType = "List"
)

// AnnotationTypes lists all annotation types.
var AnnotationTypes = []AnnotationType{
	AnnotationNone,
	AnnotationPrimary,
	AnnotationHeading,
	AnnotationTitle,
	AnnotationParagraph,
	AnnotationTable,
	AnnotationList,
}

// TxtRecord is one record from the txt format: the clean text of a page.
type TxtRecord struct {
	DocID    string
	URL      string
	URLHash  string
	Language string
	Text     string
}

// Anchor is one link anchor from the inlink and outlink formats.
type Anchor struct {
	URL      string
	URLHash  string
	Text     string
	Language string
}

// LinkRecord is one record from the inlink or outlink format. Blank lines
// in link files stand for documents without anchors and are represented by
// a nil *LinkRecord to keep record streams aligned.
type LinkRecord struct {
	DocID   string
	URL     string
	URLHash string
	Anchors []Anchor
}

// HTMLRecord is one record from the html format: a WARC response record
// with ClueWeb22-specific headers.
type HTMLRecord struct {
	DocID         string
	URL           string
	URLHash       string
	Language      string
	Date          time.Time
	RecordID      uuid.UUID
	PayloadDigest string
	HTML          []byte
	VDOMNodes     map[AnnotationType][]int
}

// VDOMRecord is one record from the vdom format: a serialized visual DOM.
// The payload is a protobuf message, kept opaque here.
type VDOMRecord struct {
	Data []byte
}

// ScreenshotRecord is one record from the jpg format, reserved for a
// future corpus release.
type ScreenshotRecord struct {
	Data []byte
}

// LDoc is a document of the L subset (or of an as-l view): clean text only.
type LDoc struct {
	DocID    string `json:"doc_id"`
	URL      string `json:"url"`
	URLHash  string `json:"url_hash"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// ID returns the document's ClueWeb22 ID.
func (d LDoc) ID() string { return d.DocID }

// DefaultText returns the text used for indexing.
func (d LDoc) DefaultText() string { return d.Text }

// ADoc is a document of the A subset (or of the b/as-a view): clean text
// plus the html, vdom, and link record types.
type ADoc struct {
	DocID          string                   `json:"doc_id"`
	URL            string                   `json:"url"`
	URLHash        string                   `json:"url_hash"`
	Language       string                   `json:"language"`
	Text           string                   `json:"text"`
	Date           time.Time                `json:"date"`
	HTML           []byte                   `json:"html"`
	RecordID       uuid.UUID                `json:"record_id"`
	PayloadDigest  string                   `json:"payload_digest"`
	VDOMNodes      map[AnnotationType][]int `json:"vdom_nodes"`
	VDOM           []byte                   `json:"vdom"`
	InlinkAnchors  []Anchor                 `json:"inlink_anchors"`
	OutlinkAnchors []Anchor                 `json:"outlink_anchors"`
}

// ID returns the document's ClueWeb22 ID.
func (d ADoc) ID() string { return d.DocID }

// DefaultText returns the text used for indexing.
func (d ADoc) DefaultText() string { return d.Text }

// BDoc is a document of the B subset. It carries the same record types as
// ADoc; page screenshots join once the jpg format is released.
type BDoc struct {
	DocID          string                   `json:"doc_id"`
	URL            string                   `json:"url"`
	URLHash        string                   `json:"url_hash"`
	Language       string                   `json:"language"`
	Text           string                   `json:"text"`
	Date           time.Time                `json:"date"`
	HTML           []byte                   `json:"html"`
	RecordID       uuid.UUID                `json:"record_id"`
	PayloadDigest  string                   `json:"payload_digest"`
	VDOMNodes      map[AnnotationType][]int `json:"vdom_nodes"`
	VDOM           []byte                   `json:"vdom"`
	InlinkAnchors  []Anchor                 `json:"inlink_anchors"`
	OutlinkAnchors []Anchor                 `json:"outlink_anchors"`
}

// ID returns the document's ClueWeb22 ID.
func (d BDoc) ID() string { return d.DocID }

// DefaultText returns the text used for indexing.
func (d BDoc) DefaultText() string { return d.Text }

// Doc is a document of any subset view.
type Doc interface {
	// ID returns the document's ClueWeb22 ID.
	ID() string
	// DefaultText returns the text used for indexing.
	DefaultText() string
}

// Compile-time checks that all doc schemas satisfy Doc.
var (
	_ Doc = LDoc{}
	_ Doc = ADoc{}
	_ Doc = BDoc{}
)

// DocType returns a zero value of the subset's document schema.
func (s Subset) DocType() Doc {
	switch s {
	case SubsetL:
		return LDoc{}
	case SubsetA:
		return ADoc{}
	case SubsetB:
		return BDoc{}
	default:
		return nil
	}
}
