package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

func TestBenchAddDefaults(t *testing.T) {
	svc := NewBenchService(repository.NewMemoryBenchRepository(), nil)

	entry, err := svc.Add(context.Background(), BenchEntryInput{
		Name:   " Asha Rao ",
		Title:  "QA Lead",
		Skills: []string{"Selenium", " ", "Cypress"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", entry.Name)
	assert.Equal(t, domain.DefaultMonthlyRate, entry.MonthlyRate)
	assert.Equal(t, []string{"Selenium", "Cypress"}, entry.Skills)
	assert.NotEmpty(t, entry.ID)

	_, err = svc.Add(context.Background(), BenchEntryInput{Name: "No Title"})
	assert.Equal(t, "title is required", apperrors.ToDomainError(err).Message)
}

func TestBenchImportCSV(t *testing.T) {
	repo := repository.NewMemoryBenchRepository()
	svc := NewBenchService(repo, nil)
	csvDoc := strings.Join([]string{
		"Name,Title,Experience,Skills,Monthly Rate",
		"Ravi Kumar,Go Developer,6 years,\"Go; Kubernetes; C, C++\",$9000",
		",Missing Name,2 years,Java,",
		"",
		"Meera Shah,Data Engineer,4 years,\"Spark,Airflow\",",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csvDoc))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "name is required", result.Errors[0].Message)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	byName := map[string]domain.BenchEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.Equal(t, []string{"Go", "Kubernetes", "C, C++"}, byName["Ravi Kumar"].Skills)
	assert.Equal(t, "$9000", byName["Ravi Kumar"].MonthlyRate)
	assert.Equal(t, []string{"Spark", "Airflow"}, byName["Meera Shah"].Skills)
	assert.Equal(t, domain.DefaultMonthlyRate, byName["Meera Shah"].MonthlyRate)
}

func TestBenchImportCSVLegacyHeader(t *testing.T) {
	svc := NewBenchService(repository.NewMemoryBenchRepository(), nil)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader("name,skill,experience\nJohn Doe,React,5\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "React", entries[0].Title)
	assert.Equal(t, "5", entries[0].Experience)
}

func TestBenchImportRejectsBadHeader(t *testing.T) {
	svc := NewBenchService(repository.NewMemoryBenchRepository(), nil)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("title,experience\nDev,3\n"))
	require.Error(t, err)
	assert.Equal(t, "missing required column: name", apperrors.ToDomainError(err).Message)

	_, err = svc.ImportCSV(context.Background(), strings.NewReader(""))
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.ImportXLSX(context.Background(), strings.NewReader("not a workbook"))
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestBenchExportImportRoundTrip(t *testing.T) {
	source := NewBenchService(repository.NewMemoryBenchRepository(), nil)
	ctx := context.Background()
	_, err := source.Add(ctx, BenchEntryInput{Name: "Ana Lima", Title: "SRE", Skills: []string{"Terraform", "AWS"}, MarketRate: "$10k"})
	require.NoError(t, err)

	workbook, err := source.ExportXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Bench List", f.GetSheetName(0))
	header, err := f.GetCellValue("Bench List", "E1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Rate", header)

	target := NewBenchService(repository.NewMemoryBenchRepository(), nil)
	result, err := target.ImportXLSX(ctx, bytes.NewReader(workbook))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	entries, err := target.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Terraform", "AWS"}, entries[0].Skills)
	assert.Equal(t, "$10k", entries[0].MarketRate)
}
