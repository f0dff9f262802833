package domain

import "time"

// JobApplicationStatus tracks a public application.
type JobApplicationStatus string

const (
	JobApplicationStatusSubmitted JobApplicationStatus = "submitted"
	JobApplicationStatusReviewed  JobApplicationStatus = "reviewed"
	JobApplicationStatusRejected  JobApplicationStatus = "rejected"
	JobApplicationStatusHired     JobApplicationStatus = "hired"
)

// JobApplication is a submission against a public job posting.
type JobApplication struct {
	ID          string
	JobID       string
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	ResumeKey   *string
	Status      JobApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
