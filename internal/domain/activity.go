package domain

import "time"

// ActivityType groups activity log entries.
type ActivityType string

const (
	ActivityApplication ActivityType = "application"
	ActivityPosition    ActivityType = "position"
	ActivityOnboarding  ActivityType = "onboarding"
	ActivityDepartment  ActivityType = "department"
	ActivityCandidate   ActivityType = "candidate"
	ActivityRecruiter   ActivityType = "recruiter"
	ActivityReport      ActivityType = "report"
	ActivityRoom        ActivityType = "room"
	ActivityRequest     ActivityType = "request"
	ActivityInventory   ActivityType = "inventory"
)

// ActivityStatusLogged is stamped on entries written by operations.
const ActivityStatusLogged = "LOGGED"

// Activity is an append-only dashboard feed entry.
type Activity struct {
	ID          int          `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      string       `json:"status"`
}
