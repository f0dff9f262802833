package calculator

type PerformanceRatingInput struct {
	GoalAchievement float64 `json:"goalAchievement"`
	Competency      float64 `json:"competency"`
	Contribution    float64 `json:"contribution"`
}

type PerformanceRatingResult struct {
	Average float64 `json:"average"`
	Rating  string  `json:"rating"`
}

func PerformanceRating(in PerformanceRatingInput) (PerformanceRatingResult, error) {
	scores := map[string]float64{
		"goalAchievement": in.GoalAchievement,
		"competency":      in.Competency,
		"contribution":    in.Contribution,
	}
	for field, v := range scores {
		if v < 1 || v > 5 {
			return PerformanceRatingResult{}, invalid(field, "scores must be between 1 and 5")
		}
	}

	avg := (in.GoalAchievement + in.Competency + in.Contribution) / 3
	var rating string
	switch {
	case avg >= 4.5:
		rating = "Outstanding"
	case avg >= 3.5:
		rating = "Exceeds Expectations"
	case avg >= 2.5:
		rating = "Meets Expectations"
	case avg >= 1.5:
		rating = "Needs Improvement"
	default:
		rating = "Unsatisfactory"
	}
	return PerformanceRatingResult{Average: round2(avg), Rating: rating}, nil
}

const (
	fmlaMinWeeks       = 52
	fmlaMinHours       = 1250
	fmlaEntitlementWks = 12
)

type FMLAEligibilityInput struct {
	HoursWorked float64 `json:"hoursWorked"`
	WeeksWorked float64 `json:"weeksWorked"`
}

type FMLAEligibilityResult struct {
	Eligible         bool     `json:"eligible"`
	EntitlementWeeks int      `json:"entitlementWeeks"`
	Reasons          []string `json:"reasons"`
}

// FMLAEligibility checks the tenure and hours tests only; employer coverage
// and worksite size are assumed.
func FMLAEligibility(in FMLAEligibilityInput) (FMLAEligibilityResult, error) {
	if in.HoursWorked < 0 || in.WeeksWorked < 0 {
		return FMLAEligibilityResult{}, invalid("hoursWorked", "hours and weeks must not be negative")
	}
	reasons := []string{}
	if in.WeeksWorked < fmlaMinWeeks {
		reasons = append(reasons, "has not worked for the employer for at least 12 months")
	}
	if in.HoursWorked < fmlaMinHours {
		reasons = append(reasons, "has not worked at least 1,250 hours during the 12 months prior to the start of leave")
	}
	if len(reasons) > 0 {
		return FMLAEligibilityResult{Reasons: reasons}, nil
	}
	return FMLAEligibilityResult{Eligible: true, EntitlementWeeks: fmlaEntitlementWks, Reasons: reasons}, nil
}
