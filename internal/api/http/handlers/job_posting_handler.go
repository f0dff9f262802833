package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/api/dto"
	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/repository"
	"github.com/spec-kit/recruit-ops/internal/service"
)

// JobPostingHandler manages job postings and the public job board.
type JobPostingHandler struct {
	service *service.JobPostingService
}

// NewJobPostingHandler constructs handler.
func NewJobPostingHandler(postings *service.JobPostingService) *JobPostingHandler {
	return &JobPostingHandler{service: postings}
}

// PublicJobs GET /api/public-jobs.
func (h *JobPostingHandler) PublicJobs(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, err := h.service.ListPublished(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponses(items)})
}

// List GET /api/job-postings.
func (h *JobPostingHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.JobPostingFilter{
		Status: optionalQuery[domain.JobPostingStatus](c, "status"),
		Limit:  limit,
		Offset: offset,
	}
	if dept := c.Query("department"); dept != "" {
		filter.Department = &dept
	}
	items, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponses(items)})
}

// Get GET /api/job-postings/:id.
func (h *JobPostingHandler) Get(c *fiber.Ctx) error {
	posting, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobPostingResponse(posting)})
}

// Create POST /api/job-postings.
func (h *JobPostingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobPostingRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	posting, err := h.service.Create(c.UserContext(), service.JobPostingInput{
		Title:               req.Title,
		Department:          req.Department,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Experience:          req.Experience,
		Location:            req.Location,
		EmploymentType:      req.EmploymentType,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Benefits:            req.Benefits,
		StartDate:           req.StartDate,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewJobPostingResponse(posting)})
}

// UpdateStatus PUT /api/job-postings/:id/status.
func (h *JobPostingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	posting, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), domain.JobPostingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobPostingResponse(posting)})
}

func postingResponses(items []domain.JobPosting) []dto.JobPostingResponse {
	out := make([]dto.JobPostingResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewJobPostingResponse(&items[i]))
	}
	return out
}

func pageParams(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 50)
	if pageSize > 200 {
		pageSize = 200
	}
	return pageSize, (page - 1) * pageSize
}
