package corpus

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxtReader(t *testing.T) {
	stream := strings.NewReader(
		`{"URL": "https://example.de/\n", "URL-hash": "ABCD", "Language": "de", "ClueWeb22-ID": "clueweb22-de0000-00-00000", "Clean-Text": "Hallo Welt"}` + "\n" +
			`{"URL": "https://example.de/zwei\n", "URL-hash": "EF01", "Language": "de", "ClueWeb22-ID": "clueweb22-de0000-00-00001", "Clean-Text": "Zweites Dokument"}` + "\n")

	reader := NewTxtReader(stream)

	record, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "clueweb22-de0000-00-00000", record.DocID)
	assert.Equal(t, "https://example.de/", record.URL, "the trailing newline must be stripped")
	assert.Equal(t, "ABCD", record.URLHash)
	assert.Equal(t, "de", record.Language)
	assert.Equal(t, "Hallo Welt", record.Text)

	record, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "clueweb22-de0000-00-00001", record.DocID)

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestTxtReaderBadJSON(t *testing.T) {
	reader := NewTxtReader(strings.NewReader("{broken\n"))
	_, err := reader.Next()
	assert.Error(t, err)
}

func TestLinkReaderInlinks(t *testing.T) {
	stream := strings.NewReader(
		`{"url": "https://example.com/", "urlhash": "AA11", "anchors": [["https://other.example/", "BB22", "click here", 0, "en"]], "ClueWeb22-ID": "clueweb22-en0000-00-00000"}` + "\n")

	reader := NewLinkReader(stream, FormatInlink)

	record, err := reader.Next()
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "clueweb22-en0000-00-00000", record.DocID)
	assert.Equal(t, "https://example.com/", record.URL)
	assert.Equal(t, "AA11", record.URLHash)
	require.Len(t, record.Anchors, 1)
	assert.Equal(t, Anchor{
		URL:      "https://other.example/",
		URLHash:  "BB22",
		Text:     "click here",
		Language: "en",
	}, record.Anchors[0])

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLinkReaderOutlinks(t *testing.T) {
	stream := strings.NewReader(
		`{"url": "https://example.com/", "urlhash": "AA11", "outlinks": [["https://target.example/", "CC33", "a link", 0, "en"]], "ClueWeb22-ID": "clueweb22-en0000-00-00000"}` + "\n")

	reader := NewLinkReader(stream, FormatOutlink)

	record, err := reader.Next()
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Len(t, record.Anchors, 1)
	assert.Equal(t, "https://target.example/", record.Anchors[0].URL)
}

// Documents without anchors are stored as blank lines so that link files
// stay aligned with the other record streams.
func TestLinkReaderBlankLine(t *testing.T) {
	stream := strings.NewReader(
		"\n" +
			`{"url": "https://example.com/", "urlhash": "AA11", "anchors": [], "ClueWeb22-ID": "clueweb22-en0000-00-00001"}` + "\n")

	reader := NewLinkReader(stream, FormatInlink)

	record, err := reader.Next()
	require.NoError(t, err)
	assert.Nil(t, record)

	record, err = reader.Next()
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "clueweb22-en0000-00-00001", record.DocID)
	assert.Empty(t, record.Anchors)

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLinkReaderShortAnchor(t *testing.T) {
	stream := strings.NewReader(
		`{"url": "https://example.com/", "urlhash": "AA11", "anchors": [["https://other.example/", "BB22"]], "ClueWeb22-ID": "clueweb22-en0000-00-00000"}` + "\n")

	reader := NewLinkReader(stream, FormatInlink)
	_, err := reader.Next()
	assert.Error(t, err)
}
