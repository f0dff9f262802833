package events

import (
	"time"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventApplicationReceived      EventType = "application_received"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventPositionStatusChanged    EventType = "position_status_changed"
	EventRecruiterStatusChanged   EventType = "recruiter_status_changed"
	EventOnboardingStarted        EventType = "onboarding_started"
	EventOnboardingCompleted      EventType = "onboarding_completed"
	EventCandidateStatusChanged   EventType = "candidate_status_changed"
	EventDepartmentUpdated        EventType = "department_updated"
	EventJobPostingCreated        EventType = "job_posting_created"
	EventJobApplicationSubmitted  EventType = "job_application_submitted"
	EventDailyReportGenerated     EventType = "daily_report_generated"
	EventRoomStatusChanged        EventType = "room_status_changed"
	EventGuestRequestUpdated      EventType = "guest_request_updated"
	EventInventoryLowStock        EventType = "inventory_low_stock"
)

// AllEventTypes lists every event the service emits.
func AllEventTypes() []EventType {
	return []EventType{
		EventApplicationReceived,
		EventApplicationStatusChanged,
		EventPositionStatusChanged,
		EventRecruiterStatusChanged,
		EventOnboardingStarted,
		EventOnboardingCompleted,
		EventCandidateStatusChanged,
		EventDepartmentUpdated,
		EventJobPostingCreated,
		EventJobApplicationSubmitted,
		EventDailyReportGenerated,
		EventRoomStatusChanged,
		EventGuestRequestUpdated,
		EventInventoryLowStock,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	EntityID  string    `json:"entity_id"`
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// ApplicationReceivedPayload payload.
type ApplicationReceivedPayload struct {
	CandidateID   int             `json:"candidate_id"`
	CandidateName string          `json:"candidate_name"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	Priority      domain.Priority `json:"priority"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	OldStatus domain.ApplicationStatus `json:"old_status"`
	NewStatus domain.ApplicationStatus `json:"new_status"`
}

// PositionStatusChangedPayload payload.
type PositionStatusChangedPayload struct {
	Title     string                `json:"title"`
	OldStatus domain.PositionStatus `json:"old_status"`
	NewStatus domain.PositionStatus `json:"new_status"`
}

// RecruiterStatusChangedPayload payload.
type RecruiterStatusChangedPayload struct {
	Name       string                 `json:"name"`
	Department string                 `json:"department"`
	OldStatus  domain.RecruiterStatus `json:"old_status"`
	NewStatus  domain.RecruiterStatus `json:"new_status"`
}

// OnboardingPayload is shared by onboarding start and completion.
type OnboardingPayload struct {
	ApplicationID int    `json:"application_id"`
	PositionID    int    `json:"position_id"`
	HireDate      string `json:"hire_date"`
}

// CandidateStatusChangedPayload payload.
type CandidateStatusChangedPayload struct {
	Name      string                 `json:"name"`
	OldStatus domain.CandidateStatus `json:"old_status"`
	NewStatus domain.CandidateStatus `json:"new_status"`
}

// DepartmentUpdatedPayload payload.
type DepartmentUpdatedPayload struct {
	Head           string `json:"head"`
	RecruiterCount int    `json:"recruiter_count"`
	Performance    int    `json:"performance"`
}

// JobPostingCreatedPayload payload.
type JobPostingCreatedPayload struct {
	Title      string                  `json:"title"`
	Department string                  `json:"department"`
	Status     domain.JobPostingStatus `json:"status"`
}

// JobApplicationSubmittedPayload payload.
type JobApplicationSubmittedPayload struct {
	JobID     string `json:"job_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	HasResume bool   `json:"has_resume"`
}

// DailyReportGeneratedPayload payload.
type DailyReportGeneratedPayload struct {
	Report domain.DailyReport `json:"report"`
}

// RoomStatusChangedPayload payload.
type RoomStatusChangedPayload struct {
	Number    string            `json:"number"`
	OldStatus domain.RoomStatus `json:"old_status"`
	NewStatus domain.RoomStatus `json:"new_status"`
}

// GuestRequestUpdatedPayload payload.
type GuestRequestUpdatedPayload struct {
	GuestName  string                    `json:"guest_name"`
	RoomNumber string                    `json:"room_number"`
	Department string                    `json:"department"`
	OldStatus  domain.GuestRequestStatus `json:"old_status"`
	NewStatus  domain.GuestRequestStatus `json:"new_status"`
}

// InventoryLowStockPayload payload.
type InventoryLowStockPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"min_stock"`
}
