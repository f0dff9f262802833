package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/api/dto"
	"github.com/spec-kit/recruit-ops/internal/service"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BenchHandler manages the bench list and its spreadsheet import/export.
type BenchHandler struct {
	service *service.BenchService
}

// NewBenchHandler constructs handler.
func NewBenchHandler(bench *service.BenchService) *BenchHandler {
	return &BenchHandler{service: bench}
}

// List GET /api/bench-list.
func (h *BenchHandler) List(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.BenchEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.NewBenchEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create POST /api/bench-list.
func (h *BenchHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBenchEntryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	entry, err := h.service.Add(c.UserContext(), service.BenchEntryInput{
		Name:        req.Name,
		Title:       req.Title,
		Experience:  req.Experience,
		Skills:      req.Skills,
		MonthlyRate: req.MonthlyRate,
		ResumeLink:  req.ResumeLink,
		MarketRate:  req.MarketRate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewBenchEntryResponse(entry)})
}

// Upload POST /api/bench-list/upload (multipart/form-data, field name: file).
// The parser is chosen by file extension.
func (h *BenchHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}
	f, err := fh.Open()
	if err != nil {
		return apperrors.NewValidationError("cannot open uploaded file", nil)
	}
	defer f.Close()

	var result *service.ImportResult
	switch ext := strings.ToLower(filepath.Ext(fh.Filename)); ext {
	case ".csv":
		result, err = h.service.ImportCSV(c.UserContext(), f)
	case ".xlsx":
		result, err = h.service.ImportXLSX(c.UserContext(), f)
	default:
		return apperrors.NewValidationError("unsupported file type", map[string]any{"extension": ext, "allowed": []string{".csv", ".xlsx"}})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}

// Export GET /api/bench-list/export.
func (h *BenchHandler) Export(c *fiber.Ctx) error {
	body, err := h.service.ExportXLSX(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment("bench-list.xlsx")
	return c.Send(body)
}
