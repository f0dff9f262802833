package domain

import "time"

// PositionStatus enumerates requisition states.
type PositionStatus string

const (
	PositionStatusOpen     PositionStatus = "OPEN"
	PositionStatusInReview PositionStatus = "IN_REVIEW"
	PositionStatusFilled   PositionStatus = "FILLED"
	PositionStatusOnHold   PositionStatus = "ON_HOLD"
)

// Valid reports whether the status is known.
func (s PositionStatus) Valid() bool {
	switch s {
	case PositionStatusOpen, PositionStatusInReview, PositionStatusFilled, PositionStatusOnHold:
		return true
	}
	return false
}

// Position is an internal requisition that applications are filed against.
type Position struct {
	ID         int            `json:"id"`
	Title      string         `json:"title"`
	Department string         `json:"department"`
	Status     PositionStatus `json:"status"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
