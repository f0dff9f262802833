package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/api/dto"
	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/service"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// FacilityHandler serves rooms, guest requests and inventory.
type FacilityHandler struct {
	hr *service.HROperationsService
}

func NewFacilityHandler(hr *service.HROperationsService) *FacilityHandler {
	return &FacilityHandler{hr: hr}
}

// ListRooms GET /api/rooms.
func (h *FacilityHandler) ListRooms(c *fiber.Ctx) error {
	items, err := h.hr.ListRooms(c.UserContext(), optionalQuery[domain.RoomStatus](c, "status"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateRoomStatus PUT /api/rooms/:id/status.
func (h *FacilityHandler) UpdateRoomStatus(c *fiber.Ctx) error {
	id, status, err := statusUpdate(c)
	if err != nil {
		return err
	}
	room, err := h.hr.UpdateRoomStatus(c.UserContext(), id, domain.RoomStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": room})
}

// ListRequests GET /api/requests.
func (h *FacilityHandler) ListRequests(c *fiber.Ctx) error {
	items, err := h.hr.ListGuestRequests(c.UserContext(), service.GuestRequestFilter{
		Status:     optionalQuery[domain.GuestRequestStatus](c, "status"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateRequestStatus PUT /api/requests/:id/status.
func (h *FacilityHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	id, status, err := statusUpdate(c)
	if err != nil {
		return err
	}
	req, err := h.hr.UpdateGuestRequestStatus(c.UserContext(), id, domain.GuestRequestStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": req})
}

// ListInventory GET /api/inventory?lowStock=true.
func (h *FacilityHandler) ListInventory(c *fiber.Ctx) error {
	items, err := h.hr.ListInventory(c.UserContext(), c.QueryBool("lowStock"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateInventoryQuantity PUT /api/inventory/:id/quantity.
func (h *FacilityHandler) UpdateInventoryQuantity(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.QuantityUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Quantity == nil {
		return apperrors.NewValidationError("quantity required", nil)
	}
	item, err := h.hr.UpdateInventoryQuantity(c.UserContext(), id, *req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// DashboardRooms GET /api/dashboard/rooms.
func (h *FacilityHandler) DashboardRooms(c *fiber.Ctx) error {
	rooms, err := h.hr.DashboardRooms(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rooms})
}

// DashboardRequests GET /api/dashboard/requests.
func (h *FacilityHandler) DashboardRequests(c *fiber.Ctx) error {
	items, err := h.hr.ListGuestRequests(c.UserContext(), service.GuestRequestFilter{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// DashboardPerformance GET /api/dashboard/performance.
func (h *FacilityHandler) DashboardPerformance(c *fiber.Ctx) error {
	perf, err := h.hr.DepartmentPerformance(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": perf})
}
