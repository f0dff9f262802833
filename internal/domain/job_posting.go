package domain

import "time"

// JobPostingStatus controls public visibility of a posting.
type JobPostingStatus string

const (
	JobPostingStatusDraft     JobPostingStatus = "draft"
	JobPostingStatusPublished JobPostingStatus = "published"
	JobPostingStatusClosed    JobPostingStatus = "closed"
)

// Valid reports whether the status is known.
func (s JobPostingStatus) Valid() bool {
	switch s {
	case JobPostingStatusDraft, JobPostingStatusPublished, JobPostingStatusClosed:
		return true
	}
	return false
}

// JobPosting is a public job advertisement.
type JobPosting struct {
	ID                  string
	Title               string
	Department          string
	Description         string
	Requirements        string
	Responsibilities    string
	Experience          string
	Location            string
	EmploymentType      string
	SalaryMin           *float64
	SalaryMax           *float64
	Benefits            string
	StartDate           string
	ApplicationDeadline string
	Status              JobPostingStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
