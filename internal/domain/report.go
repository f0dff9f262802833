package domain

import "time"

// DashboardStats summarizes the HR operations dataset and the property
// side of it.
type DashboardStats struct {
	PendingApplications  int `json:"pendingApplications"`
	ActiveCandidates     int `json:"activeCandidates"`
	AvailablePositions   int `json:"availablePositions"`
	CompletedHires       int `json:"completedHires"`
	ActiveRecruiters     int `json:"activeRecruiters"`
	OnboardingInProgress int `json:"onboardingInProgress"`
	TotalDepartments     int `json:"totalDepartments"`
	PendingRequests      int `json:"pendingRequests"`
	MaintenanceRequests  int `json:"maintenanceRequests"`
	OccupiedRooms        int `json:"occupiedRooms"`
	AvailableRooms       int `json:"availableRooms"`
	LowStockItems        int `json:"lowStockItems"`
}

// StaleApplicationAlert flags a pending application nobody has acted on.
type StaleApplicationAlert struct {
	ApplicationID int       `json:"applicationId"`
	CandidateName string    `json:"candidateName"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
	DaysPending   int       `json:"daysPending"`
}

// DailyReport is produced by the daily operations run.
type DailyReport struct {
	Date              string                  `json:"date"`
	Summary           DashboardStats          `json:"summary"`
	NewApplications   int                     `json:"newApplications"`
	ActivitiesLogged  int                     `json:"activitiesLogged"`
	StaleApplications []StaleApplicationAlert `json:"staleApplications"`
	GeneratedAt       time.Time               `json:"generatedAt"`
}
