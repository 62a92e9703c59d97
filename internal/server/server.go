// Package server exposes the dataset registry over HTTP: catalog metadata,
// document counts, and document lookup by ClueWeb22 ID.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webis-de/clueweb22"
	"github.com/webis-de/clueweb22/internal/docs"
	"github.com/webis-de/clueweb22/internal/embedded"
	"github.com/webis-de/clueweb22/pkg/bibtex"
	"github.com/webis-de/clueweb22/pkg/catalog"
	"github.com/webis-de/clueweb22/pkg/corpus"
	"github.com/webis-de/clueweb22/pkg/errors"
	"github.com/webis-de/clueweb22/pkg/logging"
)

// Server serves the registry API.
type Server struct {
	registry *clueweb22.Registry
	version  string
	server   *http.Server

	bibOnce sync.Once
	bib     *bibtex.Bibliography
	bibErr  error
}

// New creates a server for the given registry, listening on addr.
func New(registry *clueweb22.Registry, version, addr string) *Server {
	s := &Server{
		registry: registry,
		version:  version,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", s.handleInfo)
	engine.GET("/datasets", s.handleDatasets)
	engine.GET("/datasets/*id", s.handleDataset)
	engine.GET("/docs/*id", s.handleDocs)
	engine.GET("/count/*id", s.handleCount)
	engine.GET("/documents/:docID", s.handleDocument)

	s.server = &http.Server{
		Handler:      engine,
		Addr:         addr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // document bodies can be large
	}
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Start listens in the background until Stop is called.
func (s *Server) Start(ctx context.Context) {
	logger := logging.FromContext(ctx)
	logger.Info().Str("addr", s.server.Addr).Msg("starting HTTP API server")
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	logging.FromContext(ctx).Warn().Msg("shutting down HTTP API server")
	return s.server.Shutdown(ctx)
}

// datasetResponse is the JSON shape of one catalog entry.
type datasetResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DocsInstructions string   `json:"docs_instructions"`
	DataAccess       string   `json:"data_access,omitempty"`
	BibtexIDs        []string `json:"bibtex_ids,omitempty"`
	Documents        string   `json:"documents,omitempty"`
}

func toDatasetResponse(dataset *clueweb22.Dataset) datasetResponse {
	response := datasetResponse{
		ID:               string(dataset.ID),
		Title:            docs.PageTitle(dataset.Descriptor),
		Description:      dataset.Description,
		DocsInstructions: dataset.DocsInstructions,
		DataAccess:       dataset.DataAccess,
		BibtexIDs:        dataset.BibtexIDs,
	}
	if dataset.Docs != nil {
		response.Documents = dataset.Docs.Name()
	}
	return response
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "clueweb22",
		"version":     s.version,
		"corpus_root": s.registry.CorpusRoot(),
		"datasets":    len(s.registry.IDs()),
	})
}

func (s *Server) handleDatasets(c *gin.Context) {
	datasets := s.registry.Datasets()
	response := make([]datasetResponse, len(datasets))
	for i, dataset := range datasets {
		response[i] = toDatasetResponse(dataset)
	}
	c.JSON(http.StatusOK, response)
}

// datasetParam recovers the dataset identifier from a wildcard route
// parameter, which keeps its leading slash.
func datasetParam(c *gin.Context) catalog.DatasetID {
	id := c.Param("id")
	if len(id) > 0 && id[0] == '/' {
		id = id[1:]
	}
	return catalog.DatasetID(id)
}

func (s *Server) handleDataset(c *gin.Context) {
	dataset, err := s.registry.Dataset(datasetParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDatasetResponse(dataset))
}

// bibliography parses the embedded bibliography once and reuses it across
// requests.
func (s *Server) bibliography() (*bibtex.Bibliography, error) {
	s.bibOnce.Do(func() {
		s.bib, s.bibErr = bibtex.Load(embedded.FS, "catalog/bibliography.bib")
	})
	return s.bib, s.bibErr
}

func (s *Server) handleDocs(c *gin.Context) {
	dataset, err := s.registry.Dataset(datasetParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	bib, err := s.bibliography()
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := docs.RenderPage(dataset.Descriptor, bib)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(page))
}

func (s *Server) handleCount(c *gin.Context) {
	dataset, err := s.registry.Dataset(datasetParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if dataset.Docs == nil {
		respondError(c, errors.ErrNotReleased)
		return
	}

	count, err := dataset.Docs.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    string(dataset.ID),
		"count": count,
	})
}

func (s *Server) handleDocument(c *gin.Context) {
	id := c.DefaultQuery("dataset", "b")
	dataset, err := s.registry.Dataset(catalog.DatasetID(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if dataset.Docs == nil {
		respondError(c, errors.ErrNotReleased)
		return
	}

	store := corpus.NewStore(dataset.Docs)
	doc, err := store.Get(c.Request.Context(), c.Param("docID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// respondError maps domain errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsInvalidID(err), errors.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrNotReleased):
		status = http.StatusForbidden
	case errors.Is(err, errors.ErrCorpusMissing):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
