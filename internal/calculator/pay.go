package calculator

import (
	"fmt"
	"math"
	"time"
)

const (
	redundancyMaxWeeklyPay = 700
	redundancyMaxYears     = 20
	regularDayHours        = 8
	defaultOvertimeFactor  = 1.5
)

type UKRedundancyPayInput struct {
	Age          int     `json:"age"`
	YearsService int     `json:"yearsService"`
	WeeklyPay    float64 `json:"weeklyPay"`
}

type UKRedundancyPayResult struct {
	Eligible        bool    `json:"eligible"`
	WeeksPay        float64 `json:"weeksPay"`
	CappedWeeklyPay float64 `json:"cappedWeeklyPay"`
	CountedYears    int     `json:"countedYears"`
	TotalPay        float64 `json:"totalPay"`
}

// UKRedundancyPay applies the statutory scheme: each counted year of
// service, walking back from the current age, is worth 1.5 weeks at 41 and
// over, 1 week from 22 and half a week below that.
func UKRedundancyPay(in UKRedundancyPayInput) (UKRedundancyPayResult, error) {
	if in.Age <= 0 {
		return UKRedundancyPayResult{}, invalid("age", "age must be greater than zero")
	}
	if in.YearsService < 0 || in.WeeklyPay < 0 {
		return UKRedundancyPayResult{}, invalid("yearsService", "service and pay must not be negative")
	}
	if in.YearsService < 2 {
		return UKRedundancyPayResult{}, nil
	}

	weekly := math.Min(in.WeeklyPay, redundancyMaxWeeklyPay)
	years := min(in.YearsService, redundancyMaxYears)
	weeks := 0.0
	for i := 0; i < years; i++ {
		switch age := in.Age - i; {
		case age >= 41:
			weeks += 1.5
		case age >= 22:
			weeks += 1
		default:
			weeks += 0.5
		}
	}
	return UKRedundancyPayResult{
		Eligible:        true,
		WeeksPay:        weeks,
		CappedWeeklyPay: round2(weekly),
		CountedYears:    years,
		TotalPay:        round2(weeks * weekly),
	}, nil
}

type OvertimeInput struct {
	HourlyRate    float64 `json:"hourlyRate"`
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Multiplier    float64 `json:"multiplier"`
}

type OvertimeResult struct {
	RegularPay   float64 `json:"regularPay"`
	OvertimeRate float64 `json:"overtimeRate"`
	OvertimePay  float64 `json:"overtimePay"`
	TotalPay     float64 `json:"totalPay"`
}

// Overtime prices regular and overtime hours. A zero multiplier means 1.5.
func Overtime(in OvertimeInput) (OvertimeResult, error) {
	if in.HourlyRate <= 0 {
		return OvertimeResult{}, invalid("hourlyRate", "hourly rate must be greater than zero")
	}
	if in.RegularHours < 0 || in.OvertimeHours < 0 {
		return OvertimeResult{}, invalid("regularHours", "hours must not be negative")
	}
	if in.Multiplier < 0 {
		return OvertimeResult{}, invalid("multiplier", "multiplier must not be negative")
	}
	if in.Multiplier == 0 {
		in.Multiplier = defaultOvertimeFactor
	}
	regular := in.HourlyRate * in.RegularHours
	rate := in.HourlyRate * in.Multiplier
	overtime := rate * in.OvertimeHours
	return OvertimeResult{
		RegularPay:   round2(regular),
		OvertimeRate: round2(rate),
		OvertimePay:  round2(overtime),
		TotalPay:     round2(regular + overtime),
	}, nil
}

type TimesheetInput struct {
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	BreakMinutes       float64 `json:"breakMinutes"`
	HourlyRate         float64 `json:"hourlyRate"`
	OvertimeMultiplier float64 `json:"overtimeMultiplier"`
}

type TimesheetResult struct {
	TotalHours    float64 `json:"totalHours"`
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	RegularPay    float64 `json:"regularPay"`
	OvertimePay   float64 `json:"overtimePay"`
	TotalPay      float64 `json:"totalPay"`
}

// Timesheet computes a single shift. An end time before the start time is
// an overnight shift; hours past 8 are paid at the overtime multiplier.
func Timesheet(in TimesheetInput) (TimesheetResult, error) {
	start, err := time.Parse("15:04", in.StartTime)
	if err != nil {
		return TimesheetResult{}, invalid("startTime", "startTime must be HH:MM")
	}
	end, err := time.Parse("15:04", in.EndTime)
	if err != nil {
		return TimesheetResult{}, invalid("endTime", "endTime must be HH:MM")
	}
	if in.HourlyRate <= 0 {
		return TimesheetResult{}, invalid("hourlyRate", "hourly rate must be greater than zero")
	}
	if in.BreakMinutes < 0 {
		return TimesheetResult{}, invalid("breakMinutes", "break must not be negative")
	}
	if in.OvertimeMultiplier == 0 {
		in.OvertimeMultiplier = defaultOvertimeFactor
	}

	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	total := end.Sub(start).Hours() - in.BreakMinutes/60
	if total < 0 {
		return TimesheetResult{}, invalid("breakMinutes", fmt.Sprintf("break of %.0f minutes exceeds the shift", in.BreakMinutes))
	}

	regular := math.Min(total, regularDayHours)
	overtime := math.Max(0, total-regularDayHours)
	regularPay := regular * in.HourlyRate
	overtimePay := overtime * in.HourlyRate * in.OvertimeMultiplier
	return TimesheetResult{
		TotalHours:    round2(total),
		RegularHours:  round2(regular),
		OvertimeHours: round2(overtime),
		RegularPay:    round2(regularPay),
		OvertimePay:   round2(overtimePay),
		TotalPay:      round2(regularPay + overtimePay),
	}, nil
}

type BonusInput struct {
	BaseSalary        float64 `json:"baseSalary"`
	PerformanceRating int     `json:"performanceRating"`
	ProfitFactor      float64 `json:"profitFactor"`
}

type BonusResult struct {
	PerformanceFactor float64 `json:"performanceFactor"`
	Bonus             float64 `json:"bonus"`
}

var bonusFactors = map[int]float64{1: 0.02, 2: 0.05, 3: 0.10, 4: 0.15, 5: 0.20}

// Bonus is salary times the rating factor, scaled by the company profit
// factor as a percentage.
func Bonus(in BonusInput) (BonusResult, error) {
	factor, ok := bonusFactors[in.PerformanceRating]
	if !ok {
		return BonusResult{}, invalid("performanceRating", "performance rating must be between 1 and 5")
	}
	if in.BaseSalary < 0 || in.ProfitFactor < 0 {
		return BonusResult{}, invalid("baseSalary", "salary and profit factor must not be negative")
	}
	return BonusResult{
		PerformanceFactor: factor,
		Bonus:             round2(in.BaseSalary * factor * in.ProfitFactor / 100),
	}, nil
}
