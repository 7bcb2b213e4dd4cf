package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kopernik-io/kopernik-api/internal/core"
)

// UploadResponse is the body returned by a successful upload.
type UploadResponse struct {
	DatasetID string `json:"dataset_id"`
}

// handleUpload accepts a multipart dataset upload, runs the analysis,
// and returns the generated dataset ID.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.respondError(w, r, err, http.StatusRequestEntityTooLarge)
			return
		}
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, core.ErrNoFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	id, err := s.service.Ingest(r.Context(), header.Filename, file)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{DatasetID: id.String()})
}

// handleSummary returns the stored summary for a dataset.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := s.datasetID(w, r)
	if !ok {
		return
	}
	summary, err := s.service.Summary(id)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleCharts returns the stored chart aggregations for a dataset.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	id, ok := s.datasetID(w, r)
	if !ok {
		return
	}
	charts, err := s.service.Charts(id)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, charts)
}

// handlePreview returns the stored row preview for a dataset.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := s.datasetID(w, r)
	if !ok {
		return
	}
	preview, err := s.service.Preview(id)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// handleHealth is a liveness probe. Reports the number of cached
// datasets as a cheap sanity signal.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"datasets": s.service.DatasetCount(),
	})
}

// datasetID extracts and parses the datasetID URL parameter.
// Writes a 404 and returns false when the value is not a valid UUID:
// a malformed ID can, by construction, never name a stored dataset.
func (s *Server) datasetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "datasetID")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.respondError(w, r, core.ErrDatasetNotFound, http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}
