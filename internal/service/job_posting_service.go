package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/repository"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

const defaultEmploymentType = "Full-time"

// JobPostingService manages public job advertisements.
type JobPostingService struct {
	postings   repository.JobPostingRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// JobPostingDependencies bundles collaborators for the service.
type JobPostingDependencies struct {
	Repo       repository.JobPostingRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewJobPostingService constructs the service.
func NewJobPostingService(deps JobPostingDependencies) *JobPostingService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobPostingService{
		postings:   deps.Repo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// JobPostingInput carries the fields of a new posting.
type JobPostingInput struct {
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
	Status              domain.JobPostingStatus
}

// ListPublished returns the postings visible on the public job board.
func (s *JobPostingService) ListPublished(ctx context.Context, limit, offset int) ([]domain.JobPosting, error) {
	published := domain.JobPostingStatusPublished
	return s.postings.List(ctx, repository.JobPostingFilter{Status: &published, Limit: limit, Offset: offset})
}

// List returns postings matching the filter, newest first.
func (s *JobPostingService) List(ctx context.Context, filter repository.JobPostingFilter) ([]domain.JobPosting, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid job posting status", map[string]any{"status": *filter.Status})
	}
	return s.postings.List(ctx, filter)
}

// Create validates and stores a posting. New postings are drafts unless a
// status is given.
func (s *JobPostingService) Create(ctx context.Context, input JobPostingInput) (*domain.JobPosting, error) {
	required := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"department", input.Department},
		{"description", input.Description},
		{"requirements", input.Requirements},
		{"experience", input.Experience},
		{"location", input.Location},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, apperrors.NewValidationError("Missing required field: "+field.name, map[string]any{"field": field.name})
		}
	}

	if err := validateSalary(input.SalaryMin, input.SalaryMax); err != nil {
		return nil, err
	}
	for name, value := range map[string]string{"startDate": input.StartDate, "applicationDeadline": input.ApplicationDeadline} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return nil, apperrors.NewValidationError("dates must use YYYY-MM-DD", map[string]any{"field": name})
		}
	}

	status := input.Status
	if status == "" {
		status = domain.JobPostingStatusDraft
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid job posting status", map[string]any{"status": status})
	}

	posting := &domain.JobPosting{
		Title:               strings.TrimSpace(input.Title),
		Department:          strings.TrimSpace(input.Department),
		Description:         input.Description,
		Requirements:        input.Requirements,
		Responsibilities:    input.Responsibilities,
		Experience:          input.Experience,
		Location:            input.Location,
		EmploymentType:      defaultString(input.EmploymentType, defaultEmploymentType),
		SalaryMin:           input.SalaryMin,
		SalaryMax:           input.SalaryMax,
		Benefits:            input.Benefits,
		StartDate:           input.StartDate,
		ApplicationDeadline: input.ApplicationDeadline,
		Status:              status,
	}
	if err := s.postings.Create(ctx, posting); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, s.now().UTC(), events.Event{
		Type:     events.EventJobPostingCreated,
		EntityID: posting.ID,
		Payload: events.JobPostingCreatedPayload{
			Title:      posting.Title,
			Department: posting.Department,
			Status:     posting.Status,
		},
	})
	return posting, nil
}

// Get returns a posting by id.
func (s *JobPostingService) Get(ctx context.Context, id string) (*domain.JobPosting, error) {
	posting, err := s.postings.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("job posting", map[string]any{"id": id})
		}
		return nil, err
	}
	return posting, nil
}

// UpdateStatus publishes, closes or drafts a posting.
func (s *JobPostingService) UpdateStatus(ctx context.Context, id string, status domain.JobPostingStatus) (*domain.JobPosting, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid job posting status", map[string]any{"status": status})
	}
	posting, err := s.postings.UpdateStatus(ctx, id, status)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("job posting", map[string]any{"id": id})
		}
		return nil, err
	}
	s.logger.Info("job posting status updated", zap.String("job_id", id), zap.String("status", string(status)))
	return posting, nil
}

func validateSalary(minSalary, maxSalary *float64) error {
	if minSalary != nil && *minSalary < 0 {
		return apperrors.NewValidationError("salaryMin must not be negative", nil)
	}
	if maxSalary != nil && *maxSalary < 0 {
		return apperrors.NewValidationError("salaryMax must not be negative", nil)
	}
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return apperrors.NewValidationError("salaryMin must not exceed salaryMax",
			map[string]any{"salaryMin": *minSalary, "salaryMax": *maxSalary})
	}
	return nil
}
