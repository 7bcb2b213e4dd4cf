package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kopernik-io/kopernik-api/internal/logging"
)

// Sentinel errors returned by the service layer. The web layer maps
// these to HTTP status codes via MapError.
var (
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrEmptyFile         = errors.New("uploaded file is empty")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidFile       = errors.New("failed to parse file")
)

// Service ties the parsers, the analysis engine, and the bundle store
// together. One instance is shared by all request handlers.
type Service struct {
	store *Store
}

// NewService creates a service backed by the given store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Ingest parses an uploaded file, analyzes it, and stores the resulting
// bundle under a freshly minted dataset ID.
//
// The file format is picked by extension: .csv is parsed as CSV,
// .xlsx/.xlsm as an Excel workbook. Anything else is rejected with
// ErrUnsupportedFormat before reading the body.
func (s *Service) Ingest(ctx context.Context, filename string, r io.Reader) (uuid.UUID, error) {
	var (
		table *Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		table, err = ParseCSV(r)
	case ".xlsx", ".xlsm":
		table, err = ParseExcel(r)
	default:
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		if errors.Is(err, ErrEmptyFile) {
			return uuid.Nil, err
		}
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	analysis := Analyze(table)

	id := uuid.New()
	s.store.Save(id, &Bundle{
		Table:     table,
		Types:     analysis.Types,
		Summary:   analysis.Summary,
		Charts:    analysis.Charts,
		Preview:   analysis.Preview,
		CreatedAt: time.Now(),
	})

	logging.FromContext(ctx).Info("dataset ingested",
		"dataset_id", id.String(),
		"file", filename,
		"rows", table.RowCount(),
		"columns", table.ColumnCount(),
	)

	return id, nil
}

// Summary returns the stored summary for a dataset.
func (s *Service) Summary(id uuid.UUID) (Summary, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return Summary{}, ErrDatasetNotFound
	}
	return b.Summary, nil
}

// Charts returns the stored chart aggregations for a dataset.
func (s *Service) Charts(id uuid.UUID) (Charts, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return Charts{}, ErrDatasetNotFound
	}
	return b.Charts, nil
}

// Preview returns the stored row preview for a dataset.
func (s *Service) Preview(id uuid.UUID) (Preview, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return Preview{}, ErrDatasetNotFound
	}
	return b.Preview, nil
}

// DatasetCount returns how many datasets are currently cached.
func (s *Service) DatasetCount() int {
	return s.store.Len()
}
