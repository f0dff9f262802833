package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	"github.com/spec-kit/recruit-ops/internal/storage"
	"github.com/spec-kit/recruit-ops/internal/storage/mocks"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

func validApplicationInput() JobApplicationInput {
	return JobApplicationInput{
		JobID:    "1",
		FullName: "Maria  de Souza",
		Email:    "maria@example.com",
		Phone:    "5551234567",
	}
}

func newApplicationTestService(store storage.Storage) *JobApplicationService {
	svc := NewJobApplicationService(JobApplicationDependencies{
		Repo:     repository.NewMemoryJobApplicationRepository(),
		Postings: repository.NewMemoryJobPostingRepository(repository.SeedJobPostings()...),
		Storage:  store,
	})
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestSubmitStoresResume(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("Put", mock.Anything, "1700000000000_Maria_de_Souza.pdf", mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
		return opt.ContentType == "application/pdf" && opt.Size == 4
	})).Return(storage.ObjectInfo{Key: "1700000000000_Maria_de_Souza.pdf"}, nil)
	store.On("PresignGet", mock.Anything, "1700000000000_Maria_de_Souza.pdf", defaultPresignTTL).
		Return("https://minio.local/resumes/signed", nil)

	svc := newApplicationTestService(store)
	ctx := context.Background()

	app, err := svc.Submit(ctx, validApplicationInput(), &ResumeUpload{
		Filename:    "CV.PDF",
		ContentType: "application/pdf",
		Size:        4,
		Body:        strings.NewReader("%PDF"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.JobApplicationStatusSubmitted, app.Status)
	require.NotNil(t, app.ResumeKey)

	url, expires, err := svc.ResumeURL(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/resumes/signed", url)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC().Add(defaultPresignTTL), expires)
	store.AssertExpectations(t)
}

func TestSubmitSurvivesUploadFailure(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, errors.New("bucket unavailable"))

	svc := newApplicationTestService(store)
	app, err := svc.Submit(context.Background(), validApplicationInput(), &ResumeUpload{
		Filename: "resume.docx",
		Size:     10,
		Body:     strings.NewReader("0123456789"),
	})
	require.NoError(t, err)
	assert.Nil(t, app.ResumeKey)

	_, _, err = svc.ResumeURL(context.Background(), app.ID)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestSubmitValidation(t *testing.T) {
	svc := newApplicationTestService(nil)

	tests := []struct {
		name    string
		mutate  func(*JobApplicationInput)
		code    string
		message string
	}{
		{name: "missing phone", mutate: func(in *JobApplicationInput) { in.Phone = "" }, code: "VALIDATION_FAILED", message: "Missing required fields"},
		{name: "bad email", mutate: func(in *JobApplicationInput) { in.Email = "maria@example" }, code: "VALIDATION_FAILED", message: "Invalid email format"},
		{name: "short phone", mutate: func(in *JobApplicationInput) { in.Phone = "555-1234" }, code: "VALIDATION_FAILED", message: "Phone number must be 10 digits"},
		{name: "unknown job", mutate: func(in *JobApplicationInput) { in.JobID = "404" }, code: "NOT_FOUND", message: "job posting not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validApplicationInput()
			tt.mutate(&input)
			_, err := svc.Submit(context.Background(), input, nil)
			require.Error(t, err)
			derr := apperrors.ToDomainError(err)
			assert.Equal(t, tt.code, derr.Code)
			assert.Equal(t, tt.message, derr.Message)
		})
	}
}

func TestSubmitRejectsClosedPosting(t *testing.T) {
	postings := repository.NewMemoryJobPostingRepository(repository.SeedJobPostings()...)
	_, err := postings.UpdateStatus(context.Background(), "2", domain.JobPostingStatusClosed)
	require.NoError(t, err)

	svc := NewJobApplicationService(JobApplicationDependencies{
		Repo:     repository.NewMemoryJobApplicationRepository(),
		Postings: postings,
	})
	input := validApplicationInput()
	input.JobID = "2"
	_, err = svc.Submit(context.Background(), input, nil)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestResumeURLWithoutStorage(t *testing.T) {
	svc := newApplicationTestService(nil)
	app, err := svc.Submit(context.Background(), validApplicationInput(), &ResumeUpload{
		Filename: "cv.pdf", Size: 3, Body: strings.NewReader("pdf"),
	})
	require.NoError(t, err)
	assert.Nil(t, app.ResumeKey)

	list, err := svc.List(context.Background(), repository.JobApplicationFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestResumeKey(t *testing.T) {
	at := time.UnixMilli(42)
	assert.Equal(t, "42_Ann_Lee.pdf", resumeKey("Ann Lee", "resume.pdf", at))
	assert.Equal(t, "42_Ann_Lee.bin", resumeKey("Ann Lee", "resume", at))
}
