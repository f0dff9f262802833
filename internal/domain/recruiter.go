package domain

// RecruiterStatus is the recruiter's presence state.
type RecruiterStatus string

const (
	RecruiterStatusActive  RecruiterStatus = "Active"
	RecruiterStatusBreak   RecruiterStatus = "Break"
	RecruiterStatusOffline RecruiterStatus = "Offline"
)

// Valid reports whether the status is known.
func (s RecruiterStatus) Valid() bool {
	switch s {
	case RecruiterStatusActive, RecruiterStatusBreak, RecruiterStatusOffline:
		return true
	}
	return false
}

// Recruiter is a member of the recruiting staff.
type Recruiter struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Department  string          `json:"department"`
	Position    string          `json:"position"`
	Status      RecruiterStatus `json:"status"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	HireDate    string          `json:"hireDate"`
	Performance int             `json:"performance"`
	Schedule    string          `json:"schedule"`
}
