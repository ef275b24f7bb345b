package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/financial-simulator/internal/domain"
)

// ProjectLife simulates net worth year by year from the current age through
// RetirementRunwayYears past retirement, applying age-banded raises and
// returns, geometric expense inflation, and one-time life events.
//
// A retirement age at or below the current age is an infeasible snapshot and
// comes back as a flagged result, not an error.
func (e *Engine) ProjectLife(snapshot domain.LifeSnapshot, events []domain.LifeEvent) (*domain.LifeProjection, error) {
	if snapshot.CurrentAge <= 0 {
		return nil, fmt.Errorf("current age must be positive")
	}
	if snapshot.AnnualIncome.IsNegative() {
		return nil, fmt.Errorf("annual income cannot be negative")
	}
	if snapshot.MonthlyExpenses.IsNegative() {
		return nil, fmt.Errorf("monthly expenses cannot be negative")
	}
	if snapshot.StartYear == 0 {
		snapshot.StartYear = time.Now().Year()
	}

	if snapshot.RetirementAge <= snapshot.CurrentAge {
		return &domain.LifeProjection{
			Feasible: false,
			Reason: fmt.Sprintf("retirement age %d must be after current age %d",
				snapshot.RetirementAge, snapshot.CurrentAge),
		}, nil
	}

	lastAge := snapshot.RetirementAge + RetirementRunwayYears
	// Events match by exact age equality and the horizon is inclusive of its
	// last year, so any trigger inside the range is applied exactly once.
	// Triggers outside the range could never fire; reject them up front.
	for _, ev := range events {
		if ev.TriggerAge < snapshot.CurrentAge || ev.TriggerAge > lastAge {
			return nil, fmt.Errorf("life event %q: trigger age %d is outside the simulated range %d..%d",
				ev.Name, ev.TriggerAge, snapshot.CurrentAge, lastAge)
		}
	}

	projection := &domain.LifeProjection{Feasible: true}

	startingAnnualExpenses := snapshot.MonthlyExpenses.Mul(decimal.NewFromInt(12))
	income := snapshot.AnnualIncome
	netWorth := snapshot.CurrentSavings

	var retirementIncome decimal.Decimal
	retirementIncomeSet := false

	totalEventCosts := decimal.Zero
	eventsApplied := 0
	peakSet := false
	var peak decimal.Decimal
	peakYear := 0
	var firstNegativeYear *int

	for age := snapshot.CurrentAge; age <= lastAge; age++ {
		elapsed := age - snapshot.CurrentAge
		year := snapshot.StartYear + elapsed

		eventCosts := decimal.Zero
		var eventNames []string
		for _, ev := range events {
			if ev.TriggerAge == age {
				eventCosts = eventCosts.Add(ev.Cost)
				eventNames = append(eventNames, ev.Name)
				totalEventCosts = totalEventCosts.Add(ev.Cost)
				eventsApplied++
			}
		}

		if age < snapshot.RetirementAge {
			income = income.Mul(one.Add(rateForAge(IncomeRaiseBands, age)))
		} else {
			if !retirementIncomeSet {
				// Fixed at the transition: withdrawals on the net worth
				// carried into retirement plus the flat supplement.
				retirementIncome = netWorth.Mul(RetirementWithdrawalRate).Add(SupplementalRetirementIncome)
				retirementIncomeSet = true
				if e.Debug {
					e.Logger.Debugf("retirement transition at age %d: income fixed at %s",
						age, retirementIncome.StringFixed(2))
				}
			}
			income = retirementIncome
		}

		// Inflate from the starting value by elapsed years, not from the
		// prior year's figure, so rounding never drifts.
		expenses := startingAnnualExpenses.Mul(one.Add(ExpenseInflationRate).Pow(decimal.NewFromInt(int64(elapsed))))

		netSavings := income.Sub(expenses).Sub(eventCosts)
		netWorth = netWorth.Mul(one.Add(rateForAge(InvestmentReturnBands, age))).Add(netSavings)

		status := domain.StatusPositive
		if netWorth.IsNegative() {
			status = domain.StatusNegative
		} else if netSavings.IsNegative() {
			status = domain.StatusWarning
		}

		if !peakSet || netWorth.GreaterThan(peak) {
			peak = netWorth
			peakYear = year
			peakSet = true
		}
		if netWorth.IsNegative() && firstNegativeYear == nil {
			y := year
			firstNegativeYear = &y
		}

		projection.Years = append(projection.Years, domain.LifeYear{
			Year:       year,
			Age:        age,
			NetWorth:   netWorth,
			Income:     income,
			Expenses:   expenses,
			EventCosts: eventCosts,
			NetSavings: netSavings,
			Events:     eventNames,
			Status:     status,
		})
	}

	retirementRecord := projection.Years[snapshot.RetirementAge-snapshot.CurrentAge]
	onTrack := true
	for _, y := range projection.Years {
		if y.Status == domain.StatusNegative {
			onTrack = false
			break
		}
	}

	yearsOfExpenses := decimal.Zero
	if retirementRecord.Expenses.IsPositive() {
		yearsOfExpenses = retirementRecord.NetWorth.Div(retirementRecord.Expenses)
	}

	projection.Summary = domain.LifeSummary{
		RetirementNetWorth: retirementRecord.NetWorth,
		TotalEventCosts:    totalEventCosts,
		EventsApplied:      eventsApplied,
		OnTrack:            onTrack,
		YearsOfExpenses:    yearsOfExpenses,
		PeakNetWorth:       peak,
		PeakYear:           peakYear,
		FirstNegativeYear:  firstNegativeYear,
	}
	projection.Optimistic = domain.ScenarioBand{
		Multiplier:         OptimisticBandMultiplier,
		RetirementNetWorth: retirementRecord.NetWorth.Mul(OptimisticBandMultiplier),
	}
	projection.Pessimistic = domain.ScenarioBand{
		Multiplier:         PessimisticBandMultiplier,
		RetirementNetWorth: retirementRecord.NetWorth.Mul(PessimisticBandMultiplier),
	}

	return projection, nil
}
