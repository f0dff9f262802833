package domain

import "time"

// BenchEntry is an available consultant advertised on the bench list.
type BenchEntry struct {
	ID          string
	Name        string
	Title       string
	Experience  string
	Skills      []string
	MonthlyRate string
	ResumeLink  string
	MarketRate  string
	CreatedAt   time.Time
}

// DefaultMonthlyRate is used when a bench entry omits its rate.
const DefaultMonthlyRate = "On Request"
