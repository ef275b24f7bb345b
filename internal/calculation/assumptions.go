package calculation

import (
	"github.com/shopspring/decimal"
)

// Hard bounds guaranteeing termination of the stepwise simulators.
const (
	// PayoffStepCap caps the amortization simulation at 10 years of monthly
	// steps. Debts still open at the cap are reported as unresolved.
	PayoffStepCap = 120

	// RetirementRunwayYears extends the life projection past retirement.
	RetirementRunwayYears = 10

	// TrailingTraceYears is the charting window taken from the end of the
	// growth projector's base-scenario trace.
	TrailingTraceYears = 5
)

// Growth projector scenario parameters. The spread is applied symmetrically
// around the assumed return rate and every scenario, including the base one,
// is floored so that worst <= base <= best holds for any input rate.
var (
	ScenarioRateSpread  = decimal.NewFromInt(4) // percentage points
	MinimumScenarioRate = decimal.NewFromInt(6) // percent
)

// Life projector assumptions.
var (
	// ExpenseInflationRate compounds annual expenses from the starting value
	// by elapsed years, never from the prior year's rounded figure.
	ExpenseInflationRate = decimal.NewFromFloat(0.025)

	// RetirementWithdrawalRate converts net worth at the retirement
	// transition into a fixed annual income, computed once.
	RetirementWithdrawalRate = decimal.NewFromFloat(0.04)

	// SupplementalRetirementIncome is the flat annual amount assumed on top
	// of withdrawals after retirement (pension or social benefits proxy).
	SupplementalRetirementIncome = decimal.NewFromInt(18000)

	// OptimisticBandMultiplier and PessimisticBandMultiplier produce the
	// reported scenario bands. They scale the base run's retirement-year net
	// worth; they are presentation bands, not re-simulated trajectories.
	OptimisticBandMultiplier  = decimal.NewFromFloat(1.3)
	PessimisticBandMultiplier = decimal.NewFromFloat(0.6)
)

// ageBand applies its rate to ages strictly below UnderAge. The final band
// uses UnderAge 0 as a catch-all.
type ageBand struct {
	UnderAge int
	Rate     decimal.Decimal
}

// IncomeRaiseBands: higher raises early career, tapering late career.
var IncomeRaiseBands = []ageBand{
	{UnderAge: 40, Rate: decimal.NewFromFloat(0.04)},
	{UnderAge: 55, Rate: decimal.NewFromFloat(0.03)},
	{Rate: decimal.NewFromFloat(0.02)},
}

// InvestmentReturnBands: aggressive before 40, moderating through 55,
// conservative after.
var InvestmentReturnBands = []ageBand{
	{UnderAge: 40, Rate: decimal.NewFromFloat(0.08)},
	{UnderAge: 55, Rate: decimal.NewFromFloat(0.065)},
	{Rate: decimal.NewFromFloat(0.05)},
}

func rateForAge(bands []ageBand, age int) decimal.Decimal {
	for _, b := range bands {
		if b.UnderAge == 0 || age < b.UnderAge {
			return b.Rate
		}
	}
	return bands[len(bands)-1].Rate
}
