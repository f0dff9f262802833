package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/calculator"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// ToolsHandler exposes the HR calculators.
type ToolsHandler struct{}

// NewToolsHandler constructs handler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// List GET /api/tools.
func (h *ToolsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": calculator.Tools()})
}

// Calculate POST /api/tools/:name.
func (h *ToolsHandler) Calculate(c *fiber.Ctx) error {
	tool, ok := calculator.Lookup(c.Params("name"))
	if !ok {
		return apperrors.NewNotFound("tool", map[string]any{"name": c.Params("name")})
	}
	result, err := tool.Run(c.BodyParser)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}
