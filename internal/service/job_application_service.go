package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/repository"
	"github.com/spec-kit/recruit-ops/internal/storage"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^[0-9]{10}$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

const defaultPresignTTL = 15 * time.Minute

// JobApplicationService accepts applications from the public careers page.
type JobApplicationService struct {
	apps       repository.JobApplicationRepository
	postings   repository.JobPostingRepository
	store      storage.Storage
	dispatcher events.Dispatcher
	logger     *zap.Logger
	presignTTL time.Duration
	now        func() time.Time
}

// JobApplicationDependencies bundles collaborators for the service. Postings
// and Storage are optional.
type JobApplicationDependencies struct {
	Repo       repository.JobApplicationRepository
	Postings   repository.JobPostingRepository
	Storage    storage.Storage
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	PresignTTL time.Duration
}

// NewJobApplicationService constructs the service.
func NewJobApplicationService(deps JobApplicationDependencies) *JobApplicationService {
	svc := &JobApplicationService{
		apps:       deps.Repo,
		postings:   deps.Postings,
		store:      deps.Storage,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		presignTTL: deps.PresignTTL,
		now:        time.Now,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.presignTTL <= 0 {
		svc.presignTTL = defaultPresignTTL
	}
	return svc
}

// JobApplicationInput carries the form fields of a submission.
type JobApplicationInput struct {
	JobID       string
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
}

// ResumeUpload is an optional attachment. Size is -1 when unknown.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Submit validates and stores an application. A failed resume upload is
// logged and the application is saved without one.
func (s *JobApplicationService) Submit(ctx context.Context, input JobApplicationInput, resume *ResumeUpload) (*domain.JobApplication, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.JobID = strings.TrimSpace(input.JobID)

	if missing := missingFields(map[string]string{
		"fullName": input.FullName,
		"email":    input.Email,
		"phone":    input.Phone,
		"jobId":    input.JobID,
	}); len(missing) > 0 {
		return nil, apperrors.NewValidationError("Missing required fields", map[string]any{"fields": missing})
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, apperrors.NewValidationError("Invalid email format", map[string]any{"field": "email"})
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, apperrors.NewValidationError("Phone number must be 10 digits", map[string]any{"field": "phone"})
	}
	if err := s.checkPosting(ctx, input.JobID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	app := &domain.JobApplication{
		JobID:       input.JobID,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		CoverLetter: input.CoverLetter,
		Status:      domain.JobApplicationStatusSubmitted,
	}
	if resume != nil && resume.Body != nil && resume.Size != 0 {
		app.ResumeKey = s.uploadResume(ctx, input.FullName, resume, now)
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, now, events.Event{
		Type:     events.EventJobApplicationSubmitted,
		EntityID: app.ID,
		Payload: events.JobApplicationSubmittedPayload{
			JobID:     app.JobID,
			FullName:  app.FullName,
			Email:     app.Email,
			HasResume: app.ResumeKey != nil,
		},
	})
	return app, nil
}

// List returns applications, newest first.
func (s *JobApplicationService) List(ctx context.Context, filter repository.JobApplicationFilter) ([]domain.JobApplication, error) {
	return s.apps.List(ctx, filter)
}

// Get returns one application.
func (s *JobApplicationService) Get(ctx context.Context, id string) (*domain.JobApplication, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("job application", map[string]any{"id": id})
		}
		return nil, err
	}
	return app, nil
}

// ResumeURL returns a time-limited download link for an application's resume.
func (s *JobApplicationService) ResumeURL(ctx context.Context, id string) (string, time.Time, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return "", time.Time{}, err
	}
	if app.ResumeKey == nil {
		return "", time.Time{}, apperrors.NewNotFound("resume", map[string]any{"applicationId": id})
	}
	if s.store == nil {
		return "", time.Time{}, apperrors.NewDomainError("STORAGE_UNAVAILABLE", "resume storage is not configured", http.StatusServiceUnavailable, nil)
	}
	url, err := s.store.PresignGet(ctx, *app.ResumeKey, s.presignTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign resume: %w", err)
	}
	return url, s.now().UTC().Add(s.presignTTL), nil
}

func (s *JobApplicationService) checkPosting(ctx context.Context, jobID string) error {
	if s.postings == nil {
		return nil
	}
	posting, err := s.postings.GetByID(ctx, jobID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("job posting", map[string]any{"id": jobID})
		}
		return err
	}
	if posting.Status != domain.JobPostingStatusPublished {
		return apperrors.NewConflict("job posting is not accepting applications", map[string]any{"status": posting.Status})
	}
	return nil
}

func (s *JobApplicationService) uploadResume(ctx context.Context, fullName string, resume *ResumeUpload, now time.Time) *string {
	if s.store == nil {
		s.logger.Warn("resume dropped, storage not configured", zap.String("filename", resume.Filename))
		return nil
	}

	key := resumeKey(fullName, resume.Filename, now)
	size := resume.Size
	if size <= 0 {
		size = -1
	}
	_, err := s.store.Put(ctx, key, resume.Body, storage.PutObjectOptions{
		Size:        size,
		ContentType: defaultString(resume.ContentType, "application/octet-stream"),
		Metadata:    map[string]string{"original-filename": resume.Filename},
	})
	if err != nil {
		s.logger.Warn("resume upload failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &key
}

// resumeKey builds "<unix-ms>_<name_with_underscores>.<ext>".
func resumeKey(fullName, filename string, now time.Time) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%d_%s.%s", now.UnixMilli(), whitespacePattern.ReplaceAllString(fullName, "_"), strings.ToLower(ext))
}
