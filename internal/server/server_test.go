package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webis-de/clueweb22"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	registry, err := clueweb22.New(clueweb22.WithCorpusRoot(t.TempDir()))
	require.NoError(t, err)
	return New(registry, "test", "localhost:0")
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	s.Handler().ServeHTTP(recorder, request)
	return recorder
}

func TestServerInfo(t *testing.T) {
	s := testServer(t)
	response := get(t, s, "/")
	require.Equal(t, http.StatusOK, response.Code)

	var info map[string]any
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &info))
	assert.Equal(t, "clueweb22", info["name"])
	assert.EqualValues(t, 40, info["datasets"])
}

func TestServerDatasets(t *testing.T) {
	s := testServer(t)
	response := get(t, s, "/datasets")
	require.Equal(t, http.StatusOK, response.Code)

	var datasets []map[string]any
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &datasets))
	require.Len(t, datasets, 40)
	assert.Equal(t, "_", datasets[0]["id"])
	assert.Equal(t, "ClueWeb22", datasets[0]["title"])
}

func TestServerDataset(t *testing.T) {
	s := testServer(t)
	response := get(t, s, "/datasets/b/as-a")
	require.Equal(t, http.StatusOK, response.Code)

	var dataset map[string]any
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dataset))
	assert.Equal(t, "b/as-a", dataset["id"])
	assert.Equal(t, "b/as-a", dataset["documents"])
}

func TestServerDocsPage(t *testing.T) {
	s := testServer(t)
	response := get(t, s, "/docs/_")
	require.Equal(t, http.StatusOK, response.Code)

	page := response.Body.String()
	assert.Contains(t, page, "# ClueWeb22")
	assert.Contains(t, page, "```bibtex")

	// The bibliography is parsed on first use and reused afterwards.
	bib := s.bib
	require.NotNil(t, bib)
	require.Equal(t, http.StatusOK, get(t, s, "/docs/b/de").Code)
	assert.Same(t, bib, s.bib)
}

func TestServerDatasetNotFound(t *testing.T) {
	s := testServer(t)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/datasets/c").Code)
}

func TestServerCountWithheldDataset(t *testing.T) {
	s := testServer(t)
	assert.Equal(t, http.StatusForbidden, get(t, s, "/count/l/de").Code)
}

func TestServerDocumentInvalidID(t *testing.T) {
	s := testServer(t)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/documents/not-an-id").Code)
}
