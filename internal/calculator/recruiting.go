package calculator

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalid(field, field+" must be YYYY-MM-DD")
	}
	return t, nil
}

// daysBetween counts started days from a to b. b must not precede a.
func daysBetween(aField string, a time.Time, bField string, b time.Time) (int, error) {
	if b.Before(a) {
		return 0, invalid(bField, bField+" must not be before "+aField)
	}
	return int(math.Ceil(b.Sub(a).Hours() / 24)), nil
}

type TimeToHireInput struct {
	RequisitionOpen     string `json:"requisitionOpen"`
	ApplicationReceived string `json:"applicationReceived"`
	OfferAccepted       string `json:"offerAccepted"`
	StartDate           string `json:"startDate"`
}

type TimeToHireResult struct {
	TimeToHireDays  int `json:"timeToHireDays"`
	TimeToStartDays int `json:"timeToStartDays"`
}

// TimeToHire measures first application to accepted offer, and requisition
// to first day.
func TimeToHire(in TimeToHireInput) (TimeToHireResult, error) {
	open, err := parseDate("requisitionOpen", in.RequisitionOpen)
	if err != nil {
		return TimeToHireResult{}, err
	}
	received, err := parseDate("applicationReceived", in.ApplicationReceived)
	if err != nil {
		return TimeToHireResult{}, err
	}
	accepted, err := parseDate("offerAccepted", in.OfferAccepted)
	if err != nil {
		return TimeToHireResult{}, err
	}
	start, err := parseDate("startDate", in.StartDate)
	if err != nil {
		return TimeToHireResult{}, err
	}

	hire, err := daysBetween("applicationReceived", received, "offerAccepted", accepted)
	if err != nil {
		return TimeToHireResult{}, err
	}
	toStart, err := daysBetween("requisitionOpen", open, "startDate", start)
	if err != nil {
		return TimeToHireResult{}, err
	}
	return TimeToHireResult{TimeToHireDays: hire, TimeToStartDays: toStart}, nil
}

type TimeToFillInput struct {
	RequisitionApproved string `json:"requisitionApproved"`
	OfferAccepted       string `json:"offerAccepted"`
}

type TimeToFillResult struct {
	TimeToFillDays int `json:"timeToFillDays"`
}

func TimeToFill(in TimeToFillInput) (TimeToFillResult, error) {
	approved, err := parseDate("requisitionApproved", in.RequisitionApproved)
	if err != nil {
		return TimeToFillResult{}, err
	}
	accepted, err := parseDate("offerAccepted", in.OfferAccepted)
	if err != nil {
		return TimeToFillResult{}, err
	}
	days, err := daysBetween("requisitionApproved", approved, "offerAccepted", accepted)
	if err != nil {
		return TimeToFillResult{}, err
	}
	return TimeToFillResult{TimeToFillDays: days}, nil
}

type InterviewCriterion struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
}

type InterviewScoreInput struct {
	Criteria []InterviewCriterion `json:"criteria"`
}

type InterviewScoreResult struct {
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation"`
}

// InterviewScore is the weight-averaged 1-5 score across criteria.
func InterviewScore(in InterviewScoreInput) (InterviewScoreResult, error) {
	var weighted, totalWeight float64
	for _, c := range in.Criteria {
		if c.Score < 1 || c.Score > 5 {
			return InterviewScoreResult{}, invalid("criteria", "scores must be between 1 and 5")
		}
		if c.Weight < 0 {
			return InterviewScoreResult{}, invalid("criteria", "weights must not be negative")
		}
		weighted += c.Score * c.Weight
		totalWeight += c.Weight
	}
	if totalWeight == 0 {
		return InterviewScoreResult{}, invalid("criteria", "at least one weighted criterion is required")
	}

	score := weighted / totalWeight
	var rec string
	switch {
	case score >= 4.5:
		rec = "Highly Recommended"
	case score >= 3.5:
		rec = "Recommended"
	case score >= 2.5:
		rec = "Consider with Reservations"
	default:
		rec = "Not Recommended"
	}
	return InterviewScoreResult{Score: round2(score), Recommendation: rec}, nil
}

type TurnoverCostInput struct {
	CostItems []float64 `json:"costItems"`
	Turnovers float64   `json:"turnovers"`
}

type TurnoverCostResult struct {
	CostPerTurnover float64 `json:"costPerTurnover"`
	TotalAnnualCost float64 `json:"totalAnnualCost"`
}

// TurnoverCost sums the cost of replacing one leaver and scales it by the
// number of leavers.
func TurnoverCost(in TurnoverCostInput) (TurnoverCostResult, error) {
	if in.Turnovers < 0 {
		return TurnoverCostResult{}, invalid("turnovers", "number of turnovers must not be negative")
	}
	per := 0.0
	for _, amount := range in.CostItems {
		if amount < 0 {
			return TurnoverCostResult{}, invalid("costItems", "costs must not be negative")
		}
		per += amount
	}
	return TurnoverCostResult{
		CostPerTurnover: round2(per),
		TotalAnnualCost: round2(per * in.Turnovers),
	}, nil
}

type FTEInput struct {
	FullTimeEmployees     float64   `json:"fullTimeEmployees"`
	StandardFullTimeHours float64   `json:"standardFullTimeHours"`
	PartTimeHours         []float64 `json:"partTimeHours"`
}

type FTEResult struct {
	PartTimeFTE float64 `json:"partTimeFte"`
	TotalFTE    float64 `json:"totalFte"`
}

// FTE converts part-time weekly hours into full-time equivalents.
func FTE(in FTEInput) (FTEResult, error) {
	if in.FullTimeEmployees < 0 {
		return FTEResult{}, invalid("fullTimeEmployees", "employees must not be negative")
	}
	if in.StandardFullTimeHours <= 0 {
		return FTEResult{}, invalid("standardFullTimeHours", "standard hours must be greater than zero")
	}
	part := 0.0
	for _, h := range in.PartTimeHours {
		if h < 0 {
			return FTEResult{}, invalid("partTimeHours", "hours must not be negative")
		}
		part += h / in.StandardFullTimeHours
	}
	return FTEResult{PartTimeFTE: round2(part), TotalFTE: round2(in.FullTimeEmployees + part)}, nil
}

type ENPSInput struct {
	Promoters  int `json:"promoters"`
	Passives   int `json:"passives"`
	Detractors int `json:"detractors"`
}

type ENPSResult struct {
	Respondents    int     `json:"respondents"`
	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`
}

// ENPS is promoters minus detractors as a share of respondents.
func ENPS(in ENPSInput) (ENPSResult, error) {
	if in.Promoters < 0 || in.Passives < 0 || in.Detractors < 0 {
		return ENPSResult{}, invalid("promoters", "response counts must not be negative")
	}
	total := in.Promoters + in.Passives + in.Detractors
	if total == 0 {
		return ENPSResult{}, invalid("promoters", "at least one response is required")
	}
	score := math.Round(float64(in.Promoters-in.Detractors) / float64(total) * 100)
	interpretation := "Poor"
	switch {
	case score >= 50:
		interpretation = "Excellent"
	case score >= 0:
		interpretation = "Good"
	}
	return ENPSResult{Respondents: total, Score: score, Interpretation: interpretation}, nil
}
