package domain

import "time"

// RoomStatus is the housekeeping state of a room.
type RoomStatus string

const (
	RoomStatusClean      RoomStatus = "CLEAN"
	RoomStatusDirty      RoomStatus = "DIRTY"
	RoomStatusInspected  RoomStatus = "INSPECTED"
	RoomStatusOutOfOrder RoomStatus = "OUT_OF_ORDER"
)

// Valid reports whether the status is known.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusClean, RoomStatusDirty, RoomStatusInspected, RoomStatusOutOfOrder:
		return true
	}
	return false
}

// Occupied reports whether a room in this state counts as taken.
func (s RoomStatus) Occupied() bool {
	return s == RoomStatusDirty || s == RoomStatusInspected
}

// Room is a bookable room on the property.
type Room struct {
	ID        int        `json:"id"`
	Number    string     `json:"number"`
	Floor     int        `json:"floor"`
	Type      string     `json:"type"`
	Status    RoomStatus `json:"status"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// GuestRequestStatus tracks a guest request.
type GuestRequestStatus string

const (
	GuestRequestStatusPending    GuestRequestStatus = "PENDING"
	GuestRequestStatusInProgress GuestRequestStatus = "IN_PROGRESS"
	GuestRequestStatusCompleted  GuestRequestStatus = "COMPLETED"
	GuestRequestStatusCancelled  GuestRequestStatus = "CANCELLED"
)

// Valid reports whether the status is known.
func (s GuestRequestStatus) Valid() bool {
	switch s {
	case GuestRequestStatusPending, GuestRequestStatusInProgress, GuestRequestStatusCompleted, GuestRequestStatusCancelled:
		return true
	}
	return false
}

// GuestRequest is a service request raised for a room.
type GuestRequest struct {
	ID         int                `json:"id"`
	GuestName  string             `json:"guestName"`
	RoomNumber string             `json:"roomNumber"`
	Title      string             `json:"title"`
	Department string             `json:"department"`
	Priority   Priority           `json:"priority"`
	Status     GuestRequestStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  *time.Time         `json:"updatedAt,omitempty"`
}

// InventoryItem is a stocked supply line.
type InventoryItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"minStock"`
	Supplier    string  `json:"supplier"`
	Price       float64 `json:"price"`
	LastOrdered string  `json:"lastOrdered"`
}

// LowStock reports whether the item is below its reorder threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity < i.MinStock
}
