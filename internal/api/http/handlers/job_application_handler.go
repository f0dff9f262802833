package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/api/dto"
	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	"github.com/spec-kit/recruit-ops/internal/service"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// JobApplicationHandler accepts public applications and lists them for
// operators.
type JobApplicationHandler struct {
	service *service.JobApplicationService
}

// NewJobApplicationHandler constructs handler.
func NewJobApplicationHandler(applications *service.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{service: applications}
}

// Submit POST /api/job-application (multipart/form-data). The resume file is
// optional.
func (h *JobApplicationHandler) Submit(c *fiber.Ctx) error {
	input := service.JobApplicationInput{
		JobID:       c.FormValue("jobId"),
		FullName:    c.FormValue("fullName"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		CoverLetter: c.FormValue("coverLetter"),
	}

	var resume *service.ResumeUpload
	if fh, err := c.FormFile("resume"); err == nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			return apperrors.NewValidationError("cannot open uploaded file", nil)
		}
		defer f.Close()
		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}
		resume = &service.ResumeUpload{Filename: fh.Filename, ContentType: ct, Size: fh.Size, Body: f}
	}

	app, err := h.service.Submit(c.UserContext(), input, resume)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    dto.NewJobApplicationResponse(app),
		"message": "Application submitted successfully",
	})
}

// List GET /api/job-application.
func (h *JobApplicationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.JobApplicationFilter{
		Status: optionalQuery[domain.JobApplicationStatus](c, "status"),
		Limit:  limit,
		Offset: offset,
	}
	if jobID := c.Query("jobId"); jobID != "" {
		filter.JobID = &jobID
	}
	items, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	out := make([]dto.JobApplicationResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewJobApplicationResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Resume GET /api/job-application/:id/resume.
func (h *JobApplicationHandler) Resume(c *fiber.Ctx) error {
	url, expiresAt, err := h.service.ResumeURL(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ResumeLinkResponse{URL: url, ExpiresAt: expiresAt}})
}
