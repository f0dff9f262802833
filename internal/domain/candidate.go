package domain

import "time"

// CandidateStatus tracks where a candidate is in the hiring funnel.
type CandidateStatus string

const (
	CandidateStatusApplied            CandidateStatus = "Applied"
	CandidateStatusUnderReview        CandidateStatus = "Under Review"
	CandidateStatusInterviewScheduled CandidateStatus = "Interview Scheduled"
	CandidateStatusHired              CandidateStatus = "Hired"
	CandidateStatusRejected           CandidateStatus = "Rejected"
	CandidateStatusAvailable          CandidateStatus = "Available"
)

// Valid reports whether the status is known.
func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusApplied, CandidateStatusUnderReview, CandidateStatusInterviewScheduled,
		CandidateStatusHired, CandidateStatusRejected, CandidateStatusAvailable:
		return true
	}
	return false
}

// Active reports whether the candidate still counts toward the open pipeline.
func (s CandidateStatus) Active() bool {
	return s == CandidateStatusApplied || s == CandidateStatusUnderReview || s == CandidateStatusInterviewScheduled
}

// Candidate is a person in the recruiting pipeline.
type Candidate struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Title           string            `json:"title,omitempty"`
	PositionApplied string            `json:"positionApplied,omitempty"`
	Status          CandidateStatus   `json:"status"`
	Skills          []string          `json:"skills"`
	Experience      string            `json:"experience"`
	Resume          string            `json:"resume"`
	Location        string            `json:"location,omitempty"`
	Rating          float64           `json:"rating,omitempty"`
	AppliedDate     time.Time         `json:"appliedDate"`
	Extra           map[string]string `json:"extra,omitempty"`
}
