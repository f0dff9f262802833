package service

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// BenchService manages the consultant bench list.
type BenchService struct {
	repo   repository.BenchRepository
	logger *zap.Logger
}

// NewBenchService constructs the service.
func NewBenchService(repo repository.BenchRepository, logger *zap.Logger) *BenchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BenchService{repo: repo, logger: logger}
}

// BenchEntryInput carries the fields of a bench entry.
type BenchEntryInput struct {
	Name        string
	Title       string
	Experience  string
	Skills      []string
	MonthlyRate string
	ResumeLink  string
	MarketRate  string
}

// RowError reports a spreadsheet row that could not be imported. Row numbers
// count the header as row 1.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

// List returns the bench, newest first.
func (s *BenchService) List(ctx context.Context) ([]domain.BenchEntry, error) {
	return s.repo.List(ctx)
}

// Add stores a single entry.
func (s *BenchService) Add(ctx context.Context, input BenchEntryInput) (*domain.BenchEntry, error) {
	entry, err := newBenchEntry(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ImportCSV loads entries from a CSV document with a header row.
func (s *BenchService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := readCSVRows(r)
	if err != nil {
		return nil, err
	}
	return s.importRows(ctx, rows)
}

// ImportXLSX loads entries from the first sheet of a workbook.
func (s *BenchService) ImportXLSX(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := readXLSXRows(r)
	if err != nil {
		return nil, err
	}
	return s.importRows(ctx, rows)
}

// ExportXLSX renders the current bench list as a workbook.
func (s *BenchService) ExportXLSX(ctx context.Context) ([]byte, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return writeBenchWorkbook(entries)
}

func (s *BenchService) importRows(ctx context.Context, rows [][]string) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("file is empty", nil)
	}
	if len(rows)-1 > maxImportRows {
		return nil, apperrors.NewValidationError("too many rows", map[string]any{"max": maxImportRows})
	}

	columns, err := mapBenchHeader(rows[0])
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []RowError{}}
	entries := make([]domain.BenchEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		entry, err := newBenchEntry(columns.input(row))
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: i + 2, Message: apperrors.ToDomainError(err).Message})
			continue
		}
		entries = append(entries, *entry)
	}

	if len(entries) > 0 {
		if err := s.repo.CreateBatch(ctx, entries); err != nil {
			return nil, err
		}
	}
	result.Imported = len(entries)
	s.logger.Info("bench list imported", zap.Int("imported", result.Imported), zap.Int("rejected", len(result.Errors)))
	return result, nil
}

func newBenchEntry(input BenchEntryInput) (*domain.BenchEntry, error) {
	name := strings.TrimSpace(input.Name)
	title := strings.TrimSpace(input.Title)
	switch {
	case name == "":
		return nil, apperrors.NewValidationError("name is required", map[string]any{"field": "name"})
	case title == "":
		return nil, apperrors.NewValidationError("title is required", map[string]any{"field": "title"})
	}

	skills := make([]string, 0, len(input.Skills))
	for _, skill := range input.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return &domain.BenchEntry{
		Name:        name,
		Title:       title,
		Experience:  strings.TrimSpace(input.Experience),
		Skills:      skills,
		MonthlyRate: defaultString(strings.TrimSpace(input.MonthlyRate), domain.DefaultMonthlyRate),
		ResumeLink:  strings.TrimSpace(input.ResumeLink),
		MarketRate:  strings.TrimSpace(input.MarketRate),
	}, nil
}
