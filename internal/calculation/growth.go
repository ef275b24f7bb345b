package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finplan/financial-simulator/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ProjectGrowth evaluates a contribution plan in closed form at three return
// rates: the assumed rate and the rates one ScenarioRateSpread below and
// above it, each floored at MinimumScenarioRate so the scenarios stay
// ordered. The base scenario also gets a year-indexed trace.
func (e *Engine) ProjectGrowth(plan domain.ContributionPlan) (*domain.GrowthProjection, error) {
	if plan.MonthlyContribution.IsNegative() {
		return nil, fmt.Errorf("monthly contribution cannot be negative")
	}
	if plan.Years <= 0 {
		return nil, fmt.Errorf("horizon must be at least one year")
	}
	if plan.InitialLumpSum.IsNegative() {
		return nil, fmt.Errorf("initial lump sum cannot be negative")
	}

	months := decimal.NewFromInt(int64(plan.Years) * 12)
	totalInvested := plan.InitialLumpSum.Add(plan.MonthlyContribution.Mul(months))

	worstRate := decimal.Max(MinimumScenarioRate, plan.AnnualRate.Sub(ScenarioRateSpread))
	baseRate := decimal.Max(MinimumScenarioRate, plan.AnnualRate)
	bestRate := decimal.Max(MinimumScenarioRate, plan.AnnualRate.Add(ScenarioRateSpread))

	projection := &domain.GrowthProjection{
		Plan:          plan,
		TotalInvested: totalInvested,
		WorstCase:     growthScenario(plan, worstRate, totalInvested),
		BaseCase:      growthScenario(plan, baseRate, totalInvested),
		BestCase:      growthScenario(plan, bestRate, totalInvested),
	}

	for year := 1; year <= plan.Years; year++ {
		value := contributionFutureValue(plan.MonthlyContribution, year, baseRate, plan.InitialLumpSum)
		invested := plan.InitialLumpSum.Add(plan.MonthlyContribution.Mul(decimal.NewFromInt(int64(year) * 12)))
		projection.YearlyProjection = append(projection.YearlyProjection, domain.GrowthYear{
			Year:     year,
			Value:    value,
			Invested: invested,
			Gain:     value.Sub(invested),
		})
	}

	if e.Debug {
		e.Logger.Debugf("growth projection over %d years: invested %s, base final %s (rate %s%%)",
			plan.Years, totalInvested.StringFixed(2), projection.BaseCase.FinalValue.StringFixed(2), baseRate.StringFixed(2))
	}

	return projection, nil
}

func growthScenario(plan domain.ContributionPlan, annualRate, totalInvested decimal.Decimal) domain.GrowthScenario {
	final := contributionFutureValue(plan.MonthlyContribution, plan.Years, annualRate, plan.InitialLumpSum)
	scenario := domain.GrowthScenario{
		ReturnRate:  annualRate,
		FinalValue:  final,
		TotalGain:   final.Sub(totalInvested),
		GainPercent: decimal.Zero,
	}
	if totalInvested.IsPositive() {
		scenario.GainPercent = final.Div(totalInvested).Sub(one).Mul(hundred)
	}
	return scenario
}

// contributionFutureValue is the annuity-due future value of the monthly
// contribution plus the lump sum compounding independently at the annual
// rate. A zero rate degenerates to linear accumulation.
func contributionFutureValue(contribution decimal.Decimal, years int, annualRatePct, lumpSum decimal.Decimal) decimal.Decimal {
	periods := decimal.NewFromInt(int64(years) * 12)
	monthlyRate := annualRatePct.Div(hundred).Div(decimal.NewFromInt(12))

	var contributed decimal.Decimal
	if monthlyRate.IsZero() {
		contributed = contribution.Mul(periods)
	} else {
		onePlus := one.Add(monthlyRate)
		contributed = contribution.Mul(onePlus.Pow(periods).Sub(one)).Div(monthlyRate).Mul(onePlus)
	}

	lumpGrowth := lumpSum.Mul(one.Add(annualRatePct.Div(hundred)).Pow(decimal.NewFromInt(int64(years))))
	return contributed.Add(lumpGrowth)
}
