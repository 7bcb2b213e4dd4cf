package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestService_IngestAndRead(t *testing.T) {
	svc := NewService(NewStore())

	csv := "day,kind\n2024-01-01,A\n2024-01-01,A\n2024-01-02,B\n"
	id, err := svc.Ingest(context.Background(), "events.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("Ingest() returned nil ID")
	}

	summary, err := svc.Summary(id)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.RowCount != 3 || summary.ColumnCount != 2 {
		t.Errorf("summary counts = (%d, %d), want (3, 2)", summary.RowCount, summary.ColumnCount)
	}

	charts, err := svc.Charts(id)
	if err != nil {
		t.Fatalf("Charts() error = %v", err)
	}
	if charts.ByDate == nil || charts.ByCategoryTop5 == nil {
		t.Errorf("charts = %+v, want both present", charts)
	}

	preview, err := svc.Preview(id)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if len(preview.Rows) != 3 {
		t.Errorf("len(preview.Rows) = %d, want 3", len(preview.Rows))
	}

	if svc.DatasetCount() != 1 {
		t.Errorf("DatasetCount() = %d, want 1", svc.DatasetCount())
	}
}

func TestService_UnknownDataset(t *testing.T) {
	svc := NewService(NewStore())
	id := uuid.New()

	if _, err := svc.Summary(id); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("Summary() error = %v, want ErrDatasetNotFound", err)
	}
	if _, err := svc.Charts(id); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("Charts() error = %v, want ErrDatasetNotFound", err)
	}
	if _, err := svc.Preview(id); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("Preview() error = %v, want ErrDatasetNotFound", err)
	}
}

func TestService_Ingest_UnsupportedExtension(t *testing.T) {
	svc := NewService(NewStore())
	_, err := svc.Ingest(context.Background(), "data.pdf", strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Ingest() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestService_Ingest_EmptyFile(t *testing.T) {
	svc := NewService(NewStore())
	_, err := svc.Ingest(context.Background(), "data.csv", strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Ingest() error = %v, want ErrEmptyFile", err)
	}
}

func TestService_Ingest_InvalidFile(t *testing.T) {
	svc := NewService(NewStore())
	_, err := svc.Ingest(context.Background(), "data.csv", strings.NewReader("id,id\n1,2\n"))
	if !errors.Is(err, ErrInvalidFile) {
		t.Errorf("Ingest() error = %v, want ErrInvalidFile", err)
	}
}

func TestMapError_Codes(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{ErrDatasetNotFound, "DS001"},
		{ErrEmptyFile, "FILE001"},
		{ErrUnsupportedFormat, "FILE002"},
		{ErrInvalidFile, "FILE003"},
		{ErrNoFile, "FILE004"},
		{errors.New("something else"), "SYS001"},
	}
	for _, tt := range tests {
		if got := MapError(tt.err); got.Code != tt.code {
			t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.code)
		}
	}
}

func TestMapError_DuplicateColumns(t *testing.T) {
	svc := NewService(NewStore())
	_, err := svc.Ingest(context.Background(), "d.csv", strings.NewReader("id,id\n1,2\n"))
	if err == nil {
		t.Fatal("Ingest() accepted duplicate headers")
	}
	if got := MapError(err); got.Code != "VAL001" {
		t.Errorf("MapError().Code = %q, want VAL001", got.Code)
	}
}
