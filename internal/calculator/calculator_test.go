package calculator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

func TestCostPerHire(t *testing.T) {
	res, err := CostPerHire(CostPerHireInput{ExternalCosts: 10000, InternalCosts: 5000, Hires: 4})
	require.NoError(t, err)
	assert.Equal(t, 15000.0, res.TotalCosts)
	assert.Equal(t, 3750.0, res.CostPerHire)

	_, err = CostPerHire(CostPerHireInput{ExternalCosts: 1, Hires: 0})
	assert.Error(t, err)
	_, err = CostPerHire(CostPerHireInput{ExternalCosts: -1, Hires: 1})
	assert.Error(t, err)
}

func TestTurnoverRate(t *testing.T) {
	res, err := TurnoverRate(TurnoverRateInput{Separations: 12, AverageEmployees: 150})
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.TurnoverRate)

	_, err = TurnoverRate(TurnoverRateInput{Separations: 1})
	assert.Error(t, err)
}

func TestUKRedundancyPay(t *testing.T) {
	tests := []struct {
		name  string
		in    UKRedundancyPayInput
		weeks float64
		total float64
	}{
		{name: "under two years", in: UKRedundancyPayInput{Age: 30, YearsService: 1, WeeklyPay: 500}},
		{name: "age bands", in: UKRedundancyPayInput{Age: 43, YearsService: 4, WeeklyPay: 500}, weeks: 5.5, total: 2750},
		{name: "young worker", in: UKRedundancyPayInput{Age: 23, YearsService: 3, WeeklyPay: 300}, weeks: 2.5, total: 750},
		{name: "caps applied", in: UKRedundancyPayInput{Age: 64, YearsService: 30, WeeklyPay: 1000}, weeks: 30, total: 21000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := UKRedundancyPay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.weeks, res.WeeksPay)
			assert.Equal(t, tt.total, res.TotalPay)
			assert.Equal(t, tt.weeks > 0, res.Eligible)
		})
	}
}

func TestOvertime(t *testing.T) {
	res, err := Overtime(OvertimeInput{HourlyRate: 20, RegularHours: 40, OvertimeHours: 5})
	require.NoError(t, err)
	assert.Equal(t, 800.0, res.RegularPay)
	assert.Equal(t, 30.0, res.OvertimeRate)
	assert.Equal(t, 150.0, res.OvertimePay)
	assert.Equal(t, 950.0, res.TotalPay)

	_, err = Overtime(OvertimeInput{HourlyRate: 0, RegularHours: 1})
	assert.Error(t, err)
}

func TestTimesheet(t *testing.T) {
	res, err := Timesheet(TimesheetInput{StartTime: "08:00", EndTime: "18:30", BreakMinutes: 30, HourlyRate: 20, OvertimeMultiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.TotalHours)
	assert.Equal(t, 8.0, res.RegularHours)
	assert.Equal(t, 2.0, res.OvertimeHours)
	assert.Equal(t, 160.0, res.RegularPay)
	assert.Equal(t, 80.0, res.OvertimePay)
	assert.Equal(t, 240.0, res.TotalPay)

	overnight, err := Timesheet(TimesheetInput{StartTime: "22:00", EndTime: "04:00", HourlyRate: 10})
	require.NoError(t, err)
	assert.Equal(t, 6.0, overnight.TotalHours)
	assert.Equal(t, 0.0, overnight.OvertimeHours)

	_, err = Timesheet(TimesheetInput{StartTime: "9am", EndTime: "17:00", HourlyRate: 10})
	assert.Error(t, err)
	_, err = Timesheet(TimesheetInput{StartTime: "09:00", EndTime: "09:30", BreakMinutes: 60, HourlyRate: 10})
	assert.Error(t, err)
}

func TestBonus(t *testing.T) {
	res, err := Bonus(BonusInput{BaseSalary: 80000, PerformanceRating: 4, ProfitFactor: 50})
	require.NoError(t, err)
	assert.Equal(t, 0.15, res.PerformanceFactor)
	assert.Equal(t, 6000.0, res.Bonus)

	_, err = Bonus(BonusInput{BaseSalary: 80000, PerformanceRating: 6, ProfitFactor: 50})
	assert.Error(t, err)
}

func TestBenefitsAndTraining(t *testing.T) {
	benefits, err := BenefitsCost(BenefitsCostInput{HealthInsurance: 400, DentalVision: 50, Retirement: 200, PaidTimeOff: 100, Other: 25, Employees: 10})
	require.NoError(t, err)
	assert.Equal(t, 775.0, benefits.PerEmployeeMonthly)
	assert.Equal(t, 7750.0, benefits.MonthlyTotal)
	assert.Equal(t, 93000.0, benefits.AnnualTotal)

	_, err = BenefitsCost(BenefitsCostInput{HealthInsurance: 1})
	assert.Error(t, err)

	_, err = BenefitsCost(BenefitsCostInput{HealthInsurance: -400, DentalVision: 500, Employees: 10})
	require.Error(t, err)
	assert.Equal(t, "healthInsurance", apperrors.ToDomainError(err).Details["field"])

	training, err := TrainingBudget(TrainingBudgetInput{CourseFees: 1000, Materials: 200.5, InstructorFees: 300, TravelAccommodation: 400, LostProductivity: 500, Miscellaneous: 0.25})
	require.NoError(t, err)
	assert.Equal(t, 2400.75, training.Total)

	_, err = TrainingBudget(TrainingBudgetInput{Materials: -5})
	assert.Error(t, err)
}

func TestPerformanceRating(t *testing.T) {
	tests := []struct {
		in     PerformanceRatingInput
		rating string
	}{
		{PerformanceRatingInput{5, 5, 4}, "Outstanding"},
		{PerformanceRatingInput{4, 4, 3}, "Exceeds Expectations"},
		{PerformanceRatingInput{3, 3, 2}, "Meets Expectations"},
		{PerformanceRatingInput{2, 2, 1}, "Needs Improvement"},
		{PerformanceRatingInput{1, 1, 1}, "Unsatisfactory"},
	}
	for _, tt := range tests {
		res, err := PerformanceRating(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.rating, res.Rating)
	}

	_, err := PerformanceRating(PerformanceRatingInput{0, 3, 3})
	assert.Error(t, err)
}

func TestFMLAEligibility(t *testing.T) {
	res, err := FMLAEligibility(FMLAEligibilityInput{HoursWorked: 1300, WeeksWorked: 60})
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, 12, res.EntitlementWeeks)
	assert.Empty(t, res.Reasons)

	res, err = FMLAEligibility(FMLAEligibilityInput{HoursWorked: 1000, WeeksWorked: 20})
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Len(t, res.Reasons, 2)
}

func TestRegistry(t *testing.T) {
	tools := Tools()
	require.Len(t, tools, 22)
	assert.Equal(t, "benefits-cost", tools[0].Name)

	tool, ok := Lookup("cost-per-hire")
	require.True(t, ok)
	out, err := tool.Run(func(v any) error {
		return json.Unmarshal([]byte(`{"externalCosts":900,"internalCosts":100,"hires":4}`), v)
	})
	require.NoError(t, err)
	assert.Equal(t, CostPerHireResult{TotalCosts: 1000, CostPerHire: 250}, out)

	_, err = tool.Run(func(v any) error { return json.Unmarshal([]byte(`{"hires":"many"}`), v) })
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, ok = Lookup("astrology")
	assert.False(t, ok)
}

func TestHiringTimelines(t *testing.T) {
	hire, err := TimeToHire(TimeToHireInput{
		RequisitionOpen: "2024-01-01", ApplicationReceived: "2024-01-10",
		OfferAccepted: "2024-02-09", StartDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, hire.TimeToHireDays)
	assert.Equal(t, 60, hire.TimeToStartDays)

	_, err = TimeToHire(TimeToHireInput{
		RequisitionOpen: "2024-01-01", ApplicationReceived: "2024-02-10",
		OfferAccepted: "2024-02-01", StartDate: "2024-03-01",
	})
	assert.Equal(t, "offerAccepted", apperrors.ToDomainError(err).Details["field"])

	fill, err := TimeToFill(TimeToFillInput{RequisitionApproved: "2024-05-01", OfferAccepted: "2024-05-15"})
	require.NoError(t, err)
	assert.Equal(t, 14, fill.TimeToFillDays)

	_, err = TimeToFill(TimeToFillInput{RequisitionApproved: "05/01/2024", OfferAccepted: "2024-05-15"})
	assert.Error(t, err)
}

func TestInterviewScore(t *testing.T) {
	res, err := InterviewScore(InterviewScoreInput{Criteria: []InterviewCriterion{
		{Description: "Technical", Score: 5, Weight: 3},
		{Description: "Communication", Score: 3, Weight: 1},
	}})
	require.NoError(t, err)
	assert.Equal(t, 4.5, res.Score)
	assert.Equal(t, "Highly Recommended", res.Recommendation)

	_, err = InterviewScore(InterviewScoreInput{Criteria: []InterviewCriterion{{Score: 6, Weight: 1}}})
	assert.Error(t, err)
	_, err = InterviewScore(InterviewScoreInput{})
	assert.Error(t, err)
}

func TestWorkforceMetrics(t *testing.T) {
	cost, err := TurnoverCost(TurnoverCostInput{CostItems: []float64{2500, 1500.5}, Turnovers: 4})
	require.NoError(t, err)
	assert.Equal(t, 4000.5, cost.CostPerTurnover)
	assert.Equal(t, 16002.0, cost.TotalAnnualCost)
	_, err = TurnoverCost(TurnoverCostInput{CostItems: []float64{-1}, Turnovers: 1})
	assert.Error(t, err)

	fte, err := FTE(FTEInput{FullTimeEmployees: 10, StandardFullTimeHours: 40, PartTimeHours: []float64{20, 10}})
	require.NoError(t, err)
	assert.Equal(t, 0.75, fte.PartTimeFTE)
	assert.Equal(t, 10.75, fte.TotalFTE)
	_, err = FTE(FTEInput{FullTimeEmployees: 1})
	assert.Error(t, err)

	enps, err := ENPS(ENPSInput{Promoters: 60, Passives: 25, Detractors: 15})
	require.NoError(t, err)
	assert.Equal(t, 100, enps.Respondents)
	assert.Equal(t, 45.0, enps.Score)
	assert.Equal(t, "Good", enps.Interpretation)
	enps, err = ENPS(ENPSInput{Promoters: 1, Detractors: 3})
	require.NoError(t, err)
	assert.Equal(t, -50.0, enps.Score)
	assert.Equal(t, "Poor", enps.Interpretation)
	_, err = ENPS(ENPSInput{})
	assert.Error(t, err)
}

func TestCompensationCalculators(t *testing.T) {
	inc, err := SalaryIncrease(SalaryIncreaseInput{CurrentSalary: 50000, PerformanceRating: 4, MarketAdjustment: 2, BudgetConstraint: 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, inc.IncreasePercent)
	assert.Equal(t, 2500.0, inc.IncreaseAmount)
	assert.Equal(t, 52500.0, inc.NewSalary)
	_, err = SalaryIncrease(SalaryIncreaseInput{CurrentSalary: 1, PerformanceRating: 0})
	assert.Error(t, err)

	shift, err := ShiftDifferential(ShiftDifferentialInput{HourlyRate: 20, ShiftHours: 8, DifferentialPercentage: 15})
	require.NoError(t, err)
	assert.Equal(t, ShiftDifferentialResult{RegularPay: 160, DifferentialPay: 24, TotalPay: 184}, shift)

	net, err := GrossToNet(GrossToNetInput{GrossPay: 5000, PreTaxDeductions: 500, FederalTaxRate: 12, StateTaxRate: 5, PostTaxDeductions: 100})
	require.NoError(t, err)
	assert.Equal(t, 4500.0, net.TaxableIncome)
	assert.Equal(t, 765.0, net.TotalTaxes)
	assert.Equal(t, 3635.0, net.NetPay)
	_, err = GrossToNet(GrossToNetInput{GrossPay: 100, PreTaxDeductions: 200})
	assert.Error(t, err)

	cobra, err := COBRAPremium(COBRAPremiumInput{MonthlyPremium: 500, AdminFeePercentage: 2})
	require.NoError(t, err)
	assert.Equal(t, COBRAPremiumResult{AdminFee: 10, COBRAPremium: 510}, cobra)

	roi, err := TrainingROI(TrainingROIInput{TrainingCost: 10000, MonetaryBenefits: 15000})
	require.NoError(t, err)
	assert.Equal(t, TrainingROIResult{NetBenefit: 5000, ROI: 50}, roi)
	_, err = TrainingROI(TrainingROIInput{MonetaryBenefits: 1})
	assert.Error(t, err)
}

func TestLeaveEntitlement(t *testing.T) {
	res, err := LeaveEntitlement(LeaveEntitlementInput{
		StartDate: "2023-01-15", AsOfDate: "2024-01-20", AccrualRate: 1.5, MaxAccrual: 20, LeaveTaken: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, res.MonthsWorked)
	assert.Equal(t, 18.0, res.TotalAccrued)
	assert.Equal(t, 14.0, res.CurrentBalance)
	assert.Equal(t, 16.0, res.ProjectedBalance)

	uncapped, err := LeaveEntitlement(LeaveEntitlementInput{StartDate: "2024-01-01", AsOfDate: "2024-04-01", AccrualRate: 2})
	require.NoError(t, err)
	assert.Equal(t, 6.0, uncapped.TotalAccrued)
	assert.Equal(t, 18.0, uncapped.ProjectedBalance)

	_, err = LeaveEntitlement(LeaveEntitlementInput{StartDate: "2025-01-01", AsOfDate: "2024-01-01", AccrualRate: 1})
	assert.Error(t, err)
}
