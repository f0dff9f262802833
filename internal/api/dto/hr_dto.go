package dto

import "github.com/spec-kit/recruit-ops/internal/domain"

// CandidateApplicationRequest is the internal application form.
type CandidateApplicationRequest struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	PositionApplied string            `json:"positionApplied"`
	PositionID      int               `json:"positionId"`
	Skills          []string          `json:"skills"`
	Experience      string            `json:"experience"`
	Resume          string            `json:"resume"`
	Description     string            `json:"description"`
	Department      string            `json:"department"`
	Priority        domain.Priority   `json:"priority"`
	AdditionalInfo  map[string]string `json:"additionalInfo"`
}

// CandidateApplicationResponse returns both records created by an application.
type CandidateApplicationResponse struct {
	Candidate   domain.Candidate   `json:"candidate"`
	Application domain.Application `json:"application"`
}

// StatusUpdateRequest carries a new status value for any HR entity.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// DepartmentHeadRequest payload.
type DepartmentHeadRequest struct {
	Head string `json:"head"`
}

// OnboardingTaskRequest toggles a checklist item.
type OnboardingTaskRequest struct {
	Completed bool `json:"completed"`
}

// QuantityUpdateRequest sets the on-hand quantity of an inventory line.
type QuantityUpdateRequest struct {
	Quantity *int `json:"quantity"`
}
