package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/events"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

func TestUpdateRoomStatus(t *testing.T) {
	seedAt := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	clock := seedAt.Add(time.Hour)
	svc, _, recorded := newHRTestService(t, seedAt, clock, nil)
	ctx := context.Background()

	room, err := svc.UpdateRoomStatus(ctx, 2, domain.RoomStatusClean)
	require.NoError(t, err)
	assert.Equal(t, "102", room.Number)
	assert.Equal(t, domain.RoomStatusClean, room.Status)
	assert.Equal(t, clock, room.UpdatedAt)
	assert.Equal(t, []events.EventType{events.EventRoomStatusChanged}, recorded.types())
	assert.Equal(t, events.RoomStatusChangedPayload{
		Number: "102", OldStatus: domain.RoomStatusDirty, NewStatus: domain.RoomStatusClean,
	}, recorded.items[0].Payload)

	activity, err := svc.RecentActivity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityRoom, activity[0].Type)
	assert.Equal(t, "Room status updated", activity[0].Title)
	assert.Equal(t, "Room 102 marked as CLEAN", activity[0].Description)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.OccupiedRooms)
	assert.Equal(t, 6, stats.AvailableRooms)

	clean := domain.RoomStatusClean
	rooms, err := svc.ListRooms(ctx, &clean)
	require.NoError(t, err)
	assert.Len(t, rooms, 6)
}

func TestUpdateRoomStatusErrors(t *testing.T) {
	now := time.Now().UTC()
	svc, _, recorded := newHRTestService(t, now, now, nil)
	ctx := context.Background()

	_, err := svc.UpdateRoomStatus(ctx, 2, domain.RoomStatus("SPARKLING"))
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.UpdateRoomStatus(ctx, 99, domain.RoomStatusClean)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	rooms, err := svc.ListRooms(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, rooms, 12)
	assert.Empty(t, recorded.items)
}

func TestDashboardRoomsShowsFirstRooms(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _ := newHRTestService(t, now, now, nil)

	rooms, err := svc.DashboardRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "104", rooms[3].Number)
}

func TestUpdateGuestRequestStatus(t *testing.T) {
	now := time.Now().UTC()
	svc, _, recorded := newHRTestService(t, now, now, nil)
	ctx := context.Background()

	req, err := svc.UpdateGuestRequestStatus(ctx, 3, domain.GuestRequestStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.GuestRequestStatusInProgress, req.Status)
	require.NotNil(t, req.UpdatedAt)
	assert.Equal(t, []events.EventType{events.EventGuestRequestUpdated}, recorded.types())

	activity, err := svc.RecentActivity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Request in progress", activity[0].Title)
	assert.Equal(t, "Robert Johnson - Leaky faucet (Maintenance)", activity[0].Description)

	pending := domain.GuestRequestStatusPending
	list, err := svc.ListGuestRequests(ctx, GuestRequestFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ID)

	list, err = svc.ListGuestRequests(ctx, GuestRequestFilter{Department: "maintenance"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].ID)

	_, err = svc.UpdateGuestRequestStatus(ctx, 3, domain.GuestRequestStatus("DONE"))
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	_, err = svc.UpdateGuestRequestStatus(ctx, 42, domain.GuestRequestStatusCompleted)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUpdateInventoryQuantity(t *testing.T) {
	now := time.Now().UTC()
	svc, _, recorded := newHRTestService(t, now, now, nil)
	ctx := context.Background()

	item, err := svc.UpdateInventoryQuantity(ctx, 4, 29)
	require.NoError(t, err)
	assert.True(t, item.LowStock())
	assert.Equal(t, []events.EventType{events.EventInventoryLowStock}, recorded.types())
	assert.Equal(t, events.InventoryLowStockPayload{Name: "Cleaning Supplies", Quantity: 29, MinStock: 30}, recorded.items[0].Payload)

	// Already low: no second alert.
	_, err = svc.UpdateInventoryQuantity(ctx, 4, 10)
	require.NoError(t, err)
	assert.Len(t, recorded.items, 1)

	activity, err := svc.RecentActivity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityInventory, activity[0].Type)
	assert.Equal(t, "Cleaning Supplies quantity set to 10", activity[0].Description)

	low, err := svc.ListInventory(ctx, true)
	require.NoError(t, err)
	assert.Len(t, low, 2)

	_, err = svc.UpdateInventoryQuantity(ctx, 4, -1)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	_, err = svc.UpdateInventoryQuantity(ctx, 40, 1)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestDepartmentPerformance(t *testing.T) {
	now := time.Now().UTC()
	svc, _, _ := newHRTestService(t, now, now, nil)

	perf, err := svc.DepartmentPerformance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Technology":      92,
		"Marketing":       87,
		"Sales":           95,
		"Human Resources": 88,
	}, perf)
}
