package dto

import (
	"time"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// CreateJobPostingRequest payload.
type CreateJobPostingRequest struct {
	Title               string                  `json:"title"`
	Department          string                  `json:"department"`
	Description         string                  `json:"description"`
	Requirements        string                  `json:"requirements"`
	Responsibilities    string                  `json:"responsibilities"`
	Experience          string                  `json:"experience"`
	Location            string                  `json:"location"`
	EmploymentType      string                  `json:"employmentType"`
	SalaryMin           *float64                `json:"salaryMin"`
	SalaryMax           *float64                `json:"salaryMax"`
	Benefits            string                  `json:"benefits"`
	StartDate           string                  `json:"startDate"`
	ApplicationDeadline string                  `json:"applicationDeadline"`
	Status              domain.JobPostingStatus `json:"status"`
}

// JobPostingResponse response.
type JobPostingResponse struct {
	ID                  string                  `json:"id"`
	Title               string                  `json:"title"`
	Department          string                  `json:"department"`
	Description         string                  `json:"description"`
	Requirements        string                  `json:"requirements"`
	Responsibilities    string                  `json:"responsibilities,omitempty"`
	Experience          string                  `json:"experience"`
	Location            string                  `json:"location"`
	EmploymentType      string                  `json:"employmentType"`
	SalaryMin           *float64                `json:"salaryMin,omitempty"`
	SalaryMax           *float64                `json:"salaryMax,omitempty"`
	Benefits            string                  `json:"benefits,omitempty"`
	StartDate           string                  `json:"startDate,omitempty"`
	ApplicationDeadline string                  `json:"applicationDeadline,omitempty"`
	Status              domain.JobPostingStatus `json:"status"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

// NewJobPostingResponse maps a posting.
func NewJobPostingResponse(p *domain.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:                  p.ID,
		Title:               p.Title,
		Department:          p.Department,
		Description:         p.Description,
		Requirements:        p.Requirements,
		Responsibilities:    p.Responsibilities,
		Experience:          p.Experience,
		Location:            p.Location,
		EmploymentType:      p.EmploymentType,
		SalaryMin:           p.SalaryMin,
		SalaryMax:           p.SalaryMax,
		Benefits:            p.Benefits,
		StartDate:           p.StartDate,
		ApplicationDeadline: p.ApplicationDeadline,
		Status:              p.Status,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// JobApplicationResponse response. The resume key stays internal; clients
// fetch a signed link from the resume endpoint.
type JobApplicationResponse struct {
	ID          string                      `json:"id"`
	JobID       string                      `json:"jobId"`
	FullName    string                      `json:"fullName"`
	Email       string                      `json:"email"`
	Phone       string                      `json:"phone"`
	CoverLetter string                      `json:"coverLetter,omitempty"`
	HasResume   bool                        `json:"hasResume"`
	Status      domain.JobApplicationStatus `json:"status"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

// NewJobApplicationResponse maps an application.
func NewJobApplicationResponse(a *domain.JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		CoverLetter: a.CoverLetter,
		HasResume:   a.ResumeKey != nil,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// ResumeLinkResponse response.
type ResumeLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
