package domain

import "time"

// ApplicationStatus enumerates lifecycle states for internal applications.
type ApplicationStatus string

const (
	ApplicationStatusPending    ApplicationStatus = "PENDING"
	ApplicationStatusInProgress ApplicationStatus = "IN_PROGRESS"
	ApplicationStatusCompleted  ApplicationStatus = "COMPLETED"
	ApplicationStatusRejected   ApplicationStatus = "REJECTED"
)

// Valid reports whether the status is known.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusInProgress, ApplicationStatusCompleted, ApplicationStatusRejected:
		return true
	}
	return false
}

// CandidateStatus maps an application state onto the candidate funnel.
// The second value is false when the application state has no candidate
// counterpart.
func (s ApplicationStatus) CandidateStatus() (CandidateStatus, bool) {
	switch s {
	case ApplicationStatusCompleted:
		return CandidateStatusHired, true
	case ApplicationStatusPending:
		return CandidateStatusApplied, true
	case ApplicationStatusInProgress:
		return CandidateStatusUnderReview, true
	case ApplicationStatusRejected:
		return CandidateStatusRejected, true
	}
	return "", false
}

// Priority enumerates application urgency.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Valid reports whether the priority is known.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Application links a candidate to a position.
type Application struct {
	ID            int               `json:"id"`
	CandidateID   int               `json:"candidateId,omitempty"`
	CandidateName string            `json:"candidateName"`
	PositionID    int               `json:"positionId"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Department    string            `json:"department"`
	Priority      Priority          `json:"priority"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
}
