package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/api/dto"
	"github.com/spec-kit/recruit-ops/internal/domain"
	"github.com/spec-kit/recruit-ops/internal/service"
	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// HRHandler manages candidates, positions, recruiters, applications,
// departments and onboarding.
type HRHandler struct {
	hr *service.HROperationsService
}

// NewHRHandler constructs handler.
func NewHRHandler(hr *service.HROperationsService) *HRHandler {
	return &HRHandler{hr: hr}
}

// ListCandidates GET /api/candidates.
func (h *HRHandler) ListCandidates(c *fiber.Ctx) error {
	items, err := h.hr.ListCandidates(c.UserContext(), service.CandidateFilter{
		Status: optionalQuery[domain.CandidateStatus](c, "status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetCandidate GET /api/candidates/:id.
func (h *HRHandler) GetCandidate(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	candidate, err := h.hr.GetCandidate(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": candidate})
}

// UpdateCandidateStatus PUT /api/candidates/:id/status.
func (h *HRHandler) UpdateCandidateStatus(c *fiber.Ctx) error {
	id, status, err := statusUpdate(c)
	if err != nil {
		return err
	}
	candidate, err := h.hr.UpdateCandidateStatus(c.UserContext(), id, domain.CandidateStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": candidate})
}

// ListPositions GET /api/positions.
func (h *HRHandler) ListPositions(c *fiber.Ctx) error {
	items, err := h.hr.ListPositions(c.UserContext(), service.PositionFilter{
		Status:     optionalQuery[domain.PositionStatus](c, "status"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetPosition GET /api/positions/:id.
func (h *HRHandler) GetPosition(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	position, err := h.hr.GetPosition(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": position})
}

// UpdatePositionStatus PUT /api/positions/:id/status.
func (h *HRHandler) UpdatePositionStatus(c *fiber.Ctx) error {
	id, status, err := statusUpdate(c)
	if err != nil {
		return err
	}
	position, err := h.hr.UpdatePositionStatus(c.UserContext(), id, domain.PositionStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": position})
}

// ListRecruiters GET /api/recruiters.
func (h *HRHandler) ListRecruiters(c *fiber.Ctx) error {
	items, err := h.hr.ListRecruiters(c.UserContext(), service.RecruiterFilter{
		Status:     optionalQuery[domain.RecruiterStatus](c, "status"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetRecruiter GET /api/recruiters/:id.
func (h *HRHandler) GetRecruiter(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	recruiter, err := h.hr.GetRecruiter(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recruiter})
}

// UpdateRecruiterStatus PUT /api/recruiters/:id/status.
func (h *HRHandler) UpdateRecruiterStatus(c *fiber.Ctx) error {
	id, status, err := statusUpdate(c)
	if err != nil {
		return err
	}
	recruiter, err := h.hr.UpdateRecruiterStatus(c.UserContext(), id, domain.RecruiterStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": recruiter})
}

// ListApplications GET /api/applications.
func (h *HRHandler) ListApplications(c *fiber.Ctx) error {
	items, err := h.hr.ListApplications(c.UserContext(), service.ApplicationFilter{
		Status:     optionalQuery[domain.ApplicationStatus](c, "status"),
		Priority:   optionalQuery[domain.Priority](c, "priority"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetApplication GET /api/applications/:id.
func (h *HRHandler) GetApplication(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	app, err := h.hr.GetApplication(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": app})
}

// SubmitApplication POST /api/applications.
func (h *HRHandler) SubmitApplication(c *fiber.Ctx) error {
	var req dto.CandidateApplicationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	result, err := h.hr.ProcessCandidateApplication(c.UserContext(), service.CandidateApplicationInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		PositionApplied: req.PositionApplied,
		PositionID:      req.PositionID,
		Skills:          req.Skills,
		Experience:      req.Experience,
		Resume:          req.Resume,
		Description:     req.Description,
		Department:      req.Department,
		Priority:        req.Priority,
		AdditionalInfo:  req.AdditionalInfo,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.CandidateApplicationResponse{
		Candidate:   result.Candidate,
		Application: result.Application,
	}})
}

// UpdateApplicationStatus PUT /api/applications/:id/status.
func (h *HRHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, status, err := statusUpdate(c)
	if err != nil {
		return err
	}
	app, err := h.hr.UpdateApplicationStatus(c.UserContext(), id, domain.ApplicationStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": app})
}

// Hire POST /api/applications/:id/hire.
func (h *HRHandler) Hire(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	record, err := h.hr.ProcessNewHire(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": record})
}

// ListDepartments GET /api/departments.
func (h *HRHandler) ListDepartments(c *fiber.Ctx) error {
	items, err := h.hr.ListDepartments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateDepartmentHead PUT /api/departments/:name/head.
func (h *HRHandler) UpdateDepartmentHead(c *fiber.Ctx) error {
	var req dto.DepartmentHeadRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.hr.UpdateDepartmentHead(c.UserContext(), departmentParam(c), req.Head)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dept})
}

// RefreshDepartment POST /api/departments/:name/refresh.
func (h *HRHandler) RefreshDepartment(c *fiber.Ctx) error {
	dept, err := h.hr.UpdateDepartmentStats(c.UserContext(), departmentParam(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dept})
}

// ListOnboarding GET /api/onboarding.
func (h *HRHandler) ListOnboarding(c *fiber.Ctx) error {
	items, err := h.hr.ListOnboarding(c.UserContext(), optionalQuery[domain.OnboardingStatus](c, "status"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetOnboarding GET /api/onboarding/:id.
func (h *HRHandler) GetOnboarding(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	record, err := h.hr.GetOnboarding(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": record})
}

// UpdateOnboardingTask PUT /api/onboarding/:id/tasks/:taskId.
func (h *HRHandler) UpdateOnboardingTask(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	taskID, err := intParam(c, "taskId")
	if err != nil {
		return err
	}
	var req dto.OnboardingTaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	record, err := h.hr.UpdateOnboardingTask(c.UserContext(), id, taskID, req.Completed)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": record})
}

// RunDailyOperations POST /api/operations/daily.
func (h *HRHandler) RunDailyOperations(c *fiber.Ctx) error {
	report, err := h.hr.RunDailyOperations(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

func statusUpdate(c *fiber.Ctx) (int, string, error) {
	id, err := intParam(c, "id")
	if err != nil {
		return 0, "", err
	}
	var req dto.StatusUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return 0, "", err
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return 0, "", apperrors.NewValidationError("status required", nil)
	}
	return id, status, nil
}

// departmentParam decodes names such as "Human%20Resources".
func departmentParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		raw = name
	}
	return strings.TrimSpace(raw)
}
