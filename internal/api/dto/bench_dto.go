package dto

import (
	"time"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// CreateBenchEntryRequest payload.
type CreateBenchEntryRequest struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	MonthlyRate string   `json:"monthly_rate"`
	ResumeLink  string   `json:"resume_link"`
	MarketRate  string   `json:"market_rate"`
}

// BenchEntryResponse response.
type BenchEntryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Experience  string    `json:"experience"`
	Skills      []string  `json:"skills"`
	MonthlyRate string    `json:"monthly_rate"`
	ResumeLink  string    `json:"resume_link,omitempty"`
	MarketRate  string    `json:"market_rate,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBenchEntryResponse maps a bench entry.
func NewBenchEntryResponse(e *domain.BenchEntry) BenchEntryResponse {
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return BenchEntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Title:       e.Title,
		Experience:  e.Experience,
		Skills:      skills,
		MonthlyRate: e.MonthlyRate,
		ResumeLink:  e.ResumeLink,
		MarketRate:  e.MarketRate,
		CreatedAt:   e.CreatedAt,
	}
}
