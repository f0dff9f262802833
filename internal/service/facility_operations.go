package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

const dashboardRoomPreview = 4

// ListRooms returns rooms in id order, optionally narrowed to one status.
func (s *HROperationsService) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	out := []domain.Room{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, r := range d.Rooms {
			if status != nil && r.Status != *status {
				continue
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

// DashboardRooms is the short room list shown on the dashboard.
func (s *HROperationsService) DashboardRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.ListRooms(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(rooms) > dashboardRoomPreview {
		rooms = rooms[:dashboardRoomPreview]
	}
	return rooms, nil
}

// UpdateRoomStatus records a housekeeping state change.
func (s *HROperationsService) UpdateRoomStatus(ctx context.Context, id int, status domain.RoomStatus) (*domain.Room, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid room status", map[string]any{"status": status})
	}

	var updated domain.Room
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		room := d.Room(id)
		if room == nil {
			return nil, apperrors.NewNotFound("room", map[string]any{"id": id})
		}
		ev := events.Event{
			Type:     events.EventRoomStatusChanged,
			EntityID: strconv.Itoa(room.ID),
			Payload:  events.RoomStatusChangedPayload{Number: room.Number, OldStatus: room.Status, NewStatus: status},
		}
		room.Status = status
		room.UpdatedAt = now
		d.AddActivity(domain.ActivityRoom, "Room status updated",
			fmt.Sprintf("Room %s marked as %s", room.Number, status), now)
		updated = *room
		return []events.Event{ev}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GuestRequestFilter narrows guest request listings.
type GuestRequestFilter struct {
	Status     *domain.GuestRequestStatus
	Department string
}

// ListGuestRequests returns guest requests in id order.
func (s *HROperationsService) ListGuestRequests(ctx context.Context, filter GuestRequestFilter) ([]domain.GuestRequest, error) {
	out := []domain.GuestRequest{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, r := range d.Requests {
			if filter.Status != nil && r.Status != *filter.Status {
				continue
			}
			if filter.Department != "" && !strings.EqualFold(r.Department, filter.Department) {
				continue
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

// UpdateGuestRequestStatus moves a guest request along and logs it to the
// activity feed.
func (s *HROperationsService) UpdateGuestRequestStatus(ctx context.Context, id int, status domain.GuestRequestStatus) (*domain.GuestRequest, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid request status", map[string]any{"status": status})
	}

	var updated domain.GuestRequest
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		req := d.GuestRequest(id)
		if req == nil {
			return nil, apperrors.NewNotFound("request", map[string]any{"id": id})
		}
		ev := events.Event{
			Type:     events.EventGuestRequestUpdated,
			EntityID: strconv.Itoa(req.ID),
			Payload: events.GuestRequestUpdatedPayload{
				GuestName:  req.GuestName,
				RoomNumber: req.RoomNumber,
				Department: req.Department,
				OldStatus:  req.Status,
				NewStatus:  status,
			},
		}
		req.Status = status
		req.UpdatedAt = &now
		label := strings.ToLower(strings.ReplaceAll(string(status), "_", " "))
		d.AddActivity(domain.ActivityRequest, "Request "+label,
			fmt.Sprintf("%s - %s (%s)", req.GuestName, req.Title, req.Department), now)
		updated = *req
		return []events.Event{ev}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListInventory returns stock lines in id order. lowStockOnly keeps the
// lines below their reorder threshold.
func (s *HROperationsService) ListInventory(ctx context.Context, lowStockOnly bool) ([]domain.InventoryItem, error) {
	out := []domain.InventoryItem{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, item := range d.Inventory {
			if lowStockOnly && !item.LowStock() {
				continue
			}
			out = append(out, item)
		}
		return nil
	})
	return out, err
}

// UpdateInventoryQuantity sets the on-hand quantity of a stock line. Falling
// below the reorder threshold emits a low stock event.
func (s *HROperationsService) UpdateInventoryQuantity(ctx context.Context, id, quantity int) (*domain.InventoryItem, error) {
	if quantity < 0 {
		return nil, apperrors.NewValidationError("quantity must not be negative", map[string]any{"quantity": quantity})
	}

	var updated domain.InventoryItem
	err := s.mutate(ctx, func(d *repository.Dataset, now time.Time) ([]events.Event, error) {
		item := d.InventoryItem(id)
		if item == nil {
			return nil, apperrors.NewNotFound("inventory item", map[string]any{"id": id})
		}
		wasLow := item.LowStock()
		item.Quantity = quantity
		d.AddActivity(domain.ActivityInventory, "Inventory adjusted",
			fmt.Sprintf("%s quantity set to %d", item.Name, quantity), now)
		updated = *item

		if wasLow || !item.LowStock() {
			return nil, nil
		}
		return []events.Event{{
			Type:     events.EventInventoryLowStock,
			EntityID: strconv.Itoa(item.ID),
			Payload:  events.InventoryLowStockPayload{Name: item.Name, Quantity: item.Quantity, MinStock: item.MinStock},
		}}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DepartmentPerformance maps each department to its current performance score.
func (s *HROperationsService) DepartmentPerformance(ctx context.Context) (map[string]int, error) {
	out := map[string]int{}
	err := s.store.View(ctx, func(d *repository.Dataset) error {
		for _, dept := range d.Departments {
			out[dept.Name] = dept.Performance
		}
		return nil
	})
	return out, err
}
