package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/recruit-ops/internal/domain"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

const (
	maxImportRows  = 5000
	benchSheetName = "Bench List"
)

var benchExportHeader = []string{"Name", "Title", "Experience", "Skills", "Monthly Rate", "Resume Link", "Market Rate", "Created At"}

// benchColumnAliases maps normalised header cells onto entry fields.
var benchColumnAliases = map[string]string{
	"name":         "name",
	"full_name":    "name",
	"title":        "title",
	"role":         "title",
	"experience":   "experience",
	"skills":       "skills",
	"skill":        "skills",
	"monthly_rate": "monthly_rate",
	"rate":         "monthly_rate",
	"resume_link":  "resume_link",
	"resume":       "resume_link",
	"market_rate":  "market_rate",
}

type benchColumns struct {
	index map[string]int
	// titleFromSkill is set for sheets without a title column; the first
	// skill then doubles as the title.
	titleFromSkill bool
}

func mapBenchHeader(header []string) (*benchColumns, error) {
	cols := &benchColumns{index: map[string]int{}}
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
		key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
		if field, ok := benchColumnAliases[key]; ok {
			if _, seen := cols.index[field]; !seen {
				cols.index[field] = i
			}
		}
	}

	if _, ok := cols.index["name"]; !ok {
		return nil, apperrors.NewValidationError("missing required column: name", map[string]any{"column": "name"})
	}
	if _, ok := cols.index["title"]; !ok {
		if _, hasSkills := cols.index["skills"]; !hasSkills {
			return nil, apperrors.NewValidationError("missing required column: title", map[string]any{"column": "title"})
		}
		cols.titleFromSkill = true
	}
	return cols, nil
}

func (c *benchColumns) cell(row []string, field string) string {
	i, ok := c.index[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c *benchColumns) input(row []string) BenchEntryInput {
	skills := splitSkills(c.cell(row, "skills"))
	input := BenchEntryInput{
		Name:        c.cell(row, "name"),
		Title:       c.cell(row, "title"),
		Experience:  c.cell(row, "experience"),
		Skills:      skills,
		MonthlyRate: c.cell(row, "monthly_rate"),
		ResumeLink:  c.cell(row, "resume_link"),
		MarketRate:  c.cell(row, "market_rate"),
	}
	if c.titleFromSkill && len(skills) > 0 {
		input.Title = skills[0]
	}
	return input
}

// splitSkills accepts either ";" or "," as the separator. A cell containing
// ";" is split on ";" only so that skills like "C, C++" survive.
func splitSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("invalid CSV", map[string]any{"reason": err.Error()})
		}
		rows = append(rows, record)
		if len(rows) > maxImportRows+1 {
			return nil, apperrors.NewValidationError("too many rows", map[string]any{"max": maxImportRows})
		}
	}
	return rows, nil
}

func readXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid spreadsheet", map[string]any{"reason": err.Error()})
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewValidationError("spreadsheet has no sheets", nil)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

func writeBenchWorkbook(entries []domain.BenchEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(benchSheetName); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	// indexes shift once the default sheet is gone
	index, err := f.GetSheetIndex(benchSheetName)
	if err != nil {
		return nil, fmt.Errorf("locate sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	widths := []float64{22, 28, 14, 40, 16, 36, 16, 20}
	for col, header := range benchExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(benchSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(benchSheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(benchSheetName, name, name, widths[col]); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, entry := range entries {
		values := []any{
			entry.Name,
			entry.Title,
			entry.Experience,
			strings.Join(entry.Skills, "; "),
			entry.MonthlyRate,
			entry.ResumeLink,
			entry.MarketRate,
			entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(benchSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(benchSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
