package calculator

import "time"

// salaryIncreaseByRating is the merit increase percentage per rating.
var salaryIncreaseByRating = map[int]float64{1: 0, 2: 1, 3: 2.5, 4: 4, 5: 6}

type SalaryIncreaseInput struct {
	CurrentSalary     float64 `json:"currentSalary"`
	PerformanceRating int     `json:"performanceRating"`
	MarketAdjustment  float64 `json:"marketAdjustment"`
	BudgetConstraint  float64 `json:"budgetConstraint"`
}

type SalaryIncreaseResult struct {
	IncreasePercent float64 `json:"increasePercent"`
	IncreaseAmount  float64 `json:"increaseAmount"`
	NewSalary       float64 `json:"newSalary"`
}

// SalaryIncrease adds the merit and market percentages, capped at the budget.
func SalaryIncrease(in SalaryIncreaseInput) (SalaryIncreaseResult, error) {
	merit, ok := salaryIncreaseByRating[in.PerformanceRating]
	if !ok {
		return SalaryIncreaseResult{}, invalid("performanceRating", "performance rating must be between 1 and 5")
	}
	if in.CurrentSalary < 0 {
		return SalaryIncreaseResult{}, invalid("currentSalary", "salary must not be negative")
	}
	if in.BudgetConstraint < 0 {
		return SalaryIncreaseResult{}, invalid("budgetConstraint", "budget must not be negative")
	}
	pct := min(merit+in.MarketAdjustment, in.BudgetConstraint)
	amount := in.CurrentSalary * pct / 100
	return SalaryIncreaseResult{
		IncreasePercent: round2(pct),
		IncreaseAmount:  round2(amount),
		NewSalary:       round2(in.CurrentSalary + amount),
	}, nil
}

type ShiftDifferentialInput struct {
	HourlyRate             float64 `json:"hourlyRate"`
	ShiftHours             float64 `json:"shiftHours"`
	DifferentialPercentage float64 `json:"differentialPercentage"`
}

type ShiftDifferentialResult struct {
	RegularPay      float64 `json:"regularPay"`
	DifferentialPay float64 `json:"differentialPay"`
	TotalPay        float64 `json:"totalPay"`
}

func ShiftDifferential(in ShiftDifferentialInput) (ShiftDifferentialResult, error) {
	if in.HourlyRate < 0 || in.ShiftHours < 0 || in.DifferentialPercentage < 0 {
		return ShiftDifferentialResult{}, invalid("hourlyRate", "rate, hours and differential must not be negative")
	}
	regular := in.HourlyRate * in.ShiftHours
	diff := regular * in.DifferentialPercentage / 100
	return ShiftDifferentialResult{
		RegularPay:      round2(regular),
		DifferentialPay: round2(diff),
		TotalPay:        round2(regular + diff),
	}, nil
}

type GrossToNetInput struct {
	GrossPay          float64 `json:"grossPay"`
	PreTaxDeductions  float64 `json:"preTaxDeductions"`
	FederalTaxRate    float64 `json:"federalTaxRate"`
	StateTaxRate      float64 `json:"stateTaxRate"`
	PostTaxDeductions float64 `json:"postTaxDeductions"`
}

type GrossToNetResult struct {
	TaxableIncome float64 `json:"taxableIncome"`
	TotalTaxes    float64 `json:"totalTaxes"`
	NetPay        float64 `json:"netPay"`
}

// GrossToNet applies flat percentage tax rates to pay after pre-tax
// deductions.
func GrossToNet(in GrossToNetInput) (GrossToNetResult, error) {
	if _, err := sumNonNegative(map[string]float64{
		"grossPay":          in.GrossPay,
		"preTaxDeductions":  in.PreTaxDeductions,
		"federalTaxRate":    in.FederalTaxRate,
		"stateTaxRate":      in.StateTaxRate,
		"postTaxDeductions": in.PostTaxDeductions,
	}); err != nil {
		return GrossToNetResult{}, err
	}
	if in.PreTaxDeductions > in.GrossPay {
		return GrossToNetResult{}, invalid("preTaxDeductions", "pre-tax deductions exceed gross pay")
	}
	taxable := in.GrossPay - in.PreTaxDeductions
	taxes := taxable * (in.FederalTaxRate + in.StateTaxRate) / 100
	return GrossToNetResult{
		TaxableIncome: round2(taxable),
		TotalTaxes:    round2(taxes),
		NetPay:        round2(taxable - taxes - in.PostTaxDeductions),
	}, nil
}

type COBRAPremiumInput struct {
	MonthlyPremium     float64 `json:"monthlyPremium"`
	AdminFeePercentage float64 `json:"adminFeePercentage"`
}

type COBRAPremiumResult struct {
	AdminFee     float64 `json:"adminFee"`
	COBRAPremium float64 `json:"cobraPremium"`
}

func COBRAPremium(in COBRAPremiumInput) (COBRAPremiumResult, error) {
	if in.MonthlyPremium < 0 || in.AdminFeePercentage < 0 {
		return COBRAPremiumResult{}, invalid("monthlyPremium", "premium and fee must not be negative")
	}
	fee := in.MonthlyPremium * in.AdminFeePercentage / 100
	return COBRAPremiumResult{AdminFee: round2(fee), COBRAPremium: round2(in.MonthlyPremium + fee)}, nil
}

type TrainingROIInput struct {
	TrainingCost     float64 `json:"trainingCost"`
	MonetaryBenefits float64 `json:"monetaryBenefits"`
}

type TrainingROIResult struct {
	NetBenefit float64 `json:"netBenefit"`
	ROI        float64 `json:"roi"`
}

func TrainingROI(in TrainingROIInput) (TrainingROIResult, error) {
	if in.TrainingCost <= 0 {
		return TrainingROIResult{}, invalid("trainingCost", "training cost must be greater than zero")
	}
	if in.MonetaryBenefits < 0 {
		return TrainingROIResult{}, invalid("monetaryBenefits", "benefits must not be negative")
	}
	net := in.MonetaryBenefits - in.TrainingCost
	return TrainingROIResult{NetBenefit: round2(net), ROI: round2(net / in.TrainingCost * 100)}, nil
}

type LeaveEntitlementInput struct {
	StartDate   string  `json:"startDate"`
	AsOfDate    string  `json:"asOfDate"`
	AccrualRate float64 `json:"accrualRate"`
	MaxAccrual  float64 `json:"maxAccrual"`
	LeaveTaken  float64 `json:"leaveTaken"`
}

type LeaveEntitlementResult struct {
	MonthsWorked     int     `json:"monthsWorked"`
	TotalAccrued     float64 `json:"totalAccrued"`
	CurrentBalance   float64 `json:"currentBalance"`
	ProjectedBalance float64 `json:"projectedBalance"`
}

// leaveProjectionMonths is how far ahead the projected balance looks.
const leaveProjectionMonths = 6

// LeaveEntitlement accrues leave per calendar month since the start date.
// A zero max accrual means no cap. AsOfDate defaults to today.
func LeaveEntitlement(in LeaveEntitlementInput) (LeaveEntitlementResult, error) {
	start, err := parseDate("startDate", in.StartDate)
	if err != nil {
		return LeaveEntitlementResult{}, err
	}
	asOf := time.Now().UTC()
	if in.AsOfDate != "" {
		if asOf, err = parseDate("asOfDate", in.AsOfDate); err != nil {
			return LeaveEntitlementResult{}, err
		}
	}
	if asOf.Before(start) {
		return LeaveEntitlementResult{}, invalid("startDate", "startDate must not be in the future")
	}
	if _, err := sumNonNegative(map[string]float64{
		"accrualRate": in.AccrualRate,
		"maxAccrual":  in.MaxAccrual,
		"leaveTaken":  in.LeaveTaken,
	}); err != nil {
		return LeaveEntitlementResult{}, err
	}

	months := (asOf.Year()-start.Year())*12 + int(asOf.Month()-start.Month())
	accrue := func(m int) float64 {
		v := float64(m) * in.AccrualRate
		if in.MaxAccrual > 0 && v > in.MaxAccrual {
			v = in.MaxAccrual
		}
		return v
	}
	total := accrue(months)
	projected := accrue(months + leaveProjectionMonths)
	return LeaveEntitlementResult{
		MonthsWorked:     months,
		TotalAccrued:     round2(total),
		CurrentBalance:   round2(total - in.LeaveTaken),
		ProjectedBalance: round2(projected - in.LeaveTaken),
	}, nil
}
