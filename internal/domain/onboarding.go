package domain

import "time"

// OnboardingStatus is derived from task completion.
type OnboardingStatus string

const (
	OnboardingStatusInProgress OnboardingStatus = "IN_PROGRESS"
	OnboardingStatusCompleted  OnboardingStatus = "COMPLETED"
)

// OnboardingTask is a single checklist item.
type OnboardingTask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Onboarding tracks a new hire's first-week checklist.
type Onboarding struct {
	ID            int              `json:"id"`
	ApplicationID int              `json:"applicationId"`
	CandidateID   int              `json:"candidateId,omitempty"`
	PositionID    int              `json:"positionId"`
	HireDate      string           `json:"hireDate"`
	Status        OnboardingStatus `json:"status"`
	Tasks         []OnboardingTask `json:"tasks"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// DefaultOnboardingTasks returns the checklist every new hire starts with.
func DefaultOnboardingTasks() []OnboardingTask {
	return []OnboardingTask{
		{ID: 1, Title: "Complete paperwork"},
		{ID: 2, Title: "IT setup"},
		{ID: 3, Title: "Orientation"},
		{ID: 4, Title: "Meet team"},
	}
}

// RefreshStatus recomputes Status from the task list.
func (o *Onboarding) RefreshStatus() {
	for _, task := range o.Tasks {
		if !task.Completed {
			o.Status = OnboardingStatusInProgress
			return
		}
	}
	o.Status = OnboardingStatusCompleted
}
