// Package calculator implements the HR calculator widgets as pure functions
// and exposes them through a name-keyed registry.
package calculator

import (
	"math"
	"sort"

	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// Decoder fills v from a request payload.
type Decoder func(v any) error

// Tool is a registered calculator.
type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	run         func(Decoder) (any, error)
}

// Run decodes the input and evaluates the calculator.
func (t Tool) Run(decode Decoder) (any, error) {
	return t.run(decode)
}

func newTool[In any, Out any](name, description string, fields []string, fn func(In) (Out, error)) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Fields:      fields,
		run: func(decode Decoder) (any, error) {
			var in In
			if err := decode(&in); err != nil {
				return nil, apperrors.NewValidationError("invalid calculator input", map[string]any{"reason": err.Error()})
			}
			return fn(in)
		},
	}
}

var registry = func() map[string]Tool {
	tools := []Tool{
		newTool("cost-per-hire", "Recruitment cost per hire",
			[]string{"externalCosts", "internalCosts", "hires"}, CostPerHire),
		newTool("turnover-rate", "Employee turnover rate",
			[]string{"separations", "averageEmployees"}, TurnoverRate),
		newTool("uk-redundancy-pay", "UK statutory redundancy pay",
			[]string{"age", "yearsService", "weeklyPay"}, UKRedundancyPay),
		newTool("overtime", "Overtime pay",
			[]string{"hourlyRate", "regularHours", "overtimeHours", "multiplier"}, Overtime),
		newTool("timesheet", "Daily timesheet with overtime after 8 hours",
			[]string{"startTime", "endTime", "breakMinutes", "hourlyRate", "overtimeMultiplier"}, Timesheet),
		newTool("bonus", "Performance bonus estimate",
			[]string{"baseSalary", "performanceRating", "profitFactor"}, Bonus),
		newTool("benefits-cost", "Employee benefits cost",
			[]string{"healthInsurance", "dentalVision", "retirement", "paidTimeOff", "other", "employees"}, BenefitsCost),
		newTool("training-budget", "Training budget total",
			[]string{"courseFees", "materials", "instructorFees", "travelAccommodation", "lostProductivity", "miscellaneous"}, TrainingBudget),
		newTool("performance-rating", "Performance review rating",
			[]string{"goalAchievement", "competency", "contribution"}, PerformanceRating),
		newTool("fmla-eligibility", "FMLA leave eligibility",
			[]string{"hoursWorked", "weeksWorked"}, FMLAEligibility),
		newTool("time-to-hire", "Days from application to accepted offer",
			[]string{"requisitionOpen", "applicationReceived", "offerAccepted", "startDate"}, TimeToHire),
		newTool("time-to-fill", "Days from requisition approval to accepted offer",
			[]string{"requisitionApproved", "offerAccepted"}, TimeToFill),
		newTool("candidate-interview-score", "Weighted interview score",
			[]string{"criteria"}, InterviewScore),
		newTool("turnover-cost", "Cost of employee turnover",
			[]string{"costItems", "turnovers"}, TurnoverCost),
		newTool("fte", "Full-time equivalent headcount",
			[]string{"fullTimeEmployees", "standardFullTimeHours", "partTimeHours"}, FTE),
		newTool("enps", "Employee net promoter score",
			[]string{"promoters", "passives", "detractors"}, ENPS),
		newTool("salary-increase", "Recommended salary increase",
			[]string{"currentSalary", "performanceRating", "marketAdjustment", "budgetConstraint"}, SalaryIncrease),
		newTool("shift-differential-pay", "Shift differential pay",
			[]string{"hourlyRate", "shiftHours", "differentialPercentage"}, ShiftDifferential),
		newTool("gross-to-net-pay", "Net pay after deductions and flat taxes",
			[]string{"grossPay", "preTaxDeductions", "federalTaxRate", "stateTaxRate", "postTaxDeductions"}, GrossToNet),
		newTool("cobra-premium", "COBRA continuation premium",
			[]string{"monthlyPremium", "adminFeePercentage"}, COBRAPremium),
		newTool("training-roi", "Training return on investment",
			[]string{"trainingCost", "monetaryBenefits"}, TrainingROI),
		newTool("leave-entitlement", "Accrued leave balance",
			[]string{"startDate", "asOfDate", "accrualRate", "maxAccrual", "leaveTaken"}, LeaveEntitlement),
	}
	out := make(map[string]Tool, len(tools))
	for _, t := range tools {
		out[t.Name] = t
	}
	return out
}()

// Lookup returns the calculator registered under name.
func Lookup(name string) (Tool, bool) {
	t, ok := registry[name]
	return t, ok
}

// Tools lists every calculator ordered by name.
func Tools() []Tool {
	out := make([]Tool, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func invalid(field, message string) error {
	return apperrors.NewValidationError(message, map[string]any{"field": field})
}
