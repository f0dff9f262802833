package calculator

import "sort"

type CostPerHireInput struct {
	ExternalCosts float64 `json:"externalCosts"`
	InternalCosts float64 `json:"internalCosts"`
	Hires         int     `json:"hires"`
}

type CostPerHireResult struct {
	TotalCosts  float64 `json:"totalCosts"`
	CostPerHire float64 `json:"costPerHire"`
}

// CostPerHire divides total recruiting spend by the number of hires.
func CostPerHire(in CostPerHireInput) (CostPerHireResult, error) {
	if in.ExternalCosts < 0 || in.InternalCosts < 0 {
		return CostPerHireResult{}, invalid("externalCosts", "costs must not be negative")
	}
	if in.Hires <= 0 {
		return CostPerHireResult{}, invalid("hires", "hires must be greater than zero")
	}
	total := in.ExternalCosts + in.InternalCosts
	return CostPerHireResult{
		TotalCosts:  round2(total),
		CostPerHire: round2(total / float64(in.Hires)),
	}, nil
}

type TurnoverRateInput struct {
	Separations      float64 `json:"separations"`
	AverageEmployees float64 `json:"averageEmployees"`
}

type TurnoverRateResult struct {
	TurnoverRate float64 `json:"turnoverRate"`
}

// TurnoverRate is separations as a percentage of average headcount.
func TurnoverRate(in TurnoverRateInput) (TurnoverRateResult, error) {
	if in.AverageEmployees <= 0 {
		return TurnoverRateResult{}, invalid("averageEmployees", "average number of employees must be greater than zero")
	}
	if in.Separations < 0 {
		return TurnoverRateResult{}, invalid("separations", "number of separations cannot be negative")
	}
	return TurnoverRateResult{TurnoverRate: round2(in.Separations / in.AverageEmployees * 100)}, nil
}

type BenefitsCostInput struct {
	HealthInsurance float64 `json:"healthInsurance"`
	DentalVision    float64 `json:"dentalVision"`
	Retirement      float64 `json:"retirement"`
	PaidTimeOff     float64 `json:"paidTimeOff"`
	Other           float64 `json:"other"`
	Employees       int     `json:"employees"`
}

type BenefitsCostResult struct {
	PerEmployeeMonthly float64 `json:"perEmployeeMonthly"`
	MonthlyTotal       float64 `json:"monthlyTotal"`
	AnnualTotal        float64 `json:"annualTotal"`
}

// BenefitsCost sums monthly per-head benefit lines and scales them to the
// workforce and the year.
func BenefitsCost(in BenefitsCostInput) (BenefitsCostResult, error) {
	if in.Employees <= 0 {
		return BenefitsCostResult{}, invalid("employees", "employees must be greater than zero")
	}
	perHead, err := sumNonNegative(map[string]float64{
		"healthInsurance": in.HealthInsurance,
		"dentalVision":    in.DentalVision,
		"retirement":      in.Retirement,
		"paidTimeOff":     in.PaidTimeOff,
		"other":           in.Other,
	})
	if err != nil {
		return BenefitsCostResult{}, err
	}
	monthly := perHead * float64(in.Employees)
	return BenefitsCostResult{
		PerEmployeeMonthly: round2(perHead),
		MonthlyTotal:       round2(monthly),
		AnnualTotal:        round2(monthly * 12),
	}, nil
}

type TrainingBudgetInput struct {
	CourseFees          float64 `json:"courseFees"`
	Materials           float64 `json:"materials"`
	InstructorFees      float64 `json:"instructorFees"`
	TravelAccommodation float64 `json:"travelAccommodation"`
	LostProductivity    float64 `json:"lostProductivity"`
	Miscellaneous       float64 `json:"miscellaneous"`
}

type TrainingBudgetResult struct {
	Total float64 `json:"total"`
}

func TrainingBudget(in TrainingBudgetInput) (TrainingBudgetResult, error) {
	total, err := sumNonNegative(map[string]float64{
		"courseFees":          in.CourseFees,
		"materials":           in.Materials,
		"instructorFees":      in.InstructorFees,
		"travelAccommodation": in.TravelAccommodation,
		"lostProductivity":    in.LostProductivity,
		"miscellaneous":       in.Miscellaneous,
	})
	if err != nil {
		return TrainingBudgetResult{}, err
	}
	return TrainingBudgetResult{Total: round2(total)}, nil
}

// sumNonNegative adds cost lines, rejecting the first negative one in field
// name order.
func sumNonNegative(lines map[string]float64) (float64, error) {
	fields := make([]string, 0, len(lines))
	for field := range lines {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	total := 0.0
	for _, field := range fields {
		v := lines[field]
		if v < 0 {
			return 0, invalid(field, "costs must not be negative")
		}
		total += v
	}
	return total, nil
}
