package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finplan/financial-simulator/internal/domain"
)

// monthsPerYearTimesHundred converts an annual percent rate to a monthly
// fraction: rate / 12 / 100.
var monthsPerYearTimesHundred = decimal.NewFromInt(1200)

// PlanDebtPayoff simulates scheduled debt balances month by month under the
// given strategy until every debt is retired or PayoffStepCap is reached.
//
// Each month, every active debt pays its minimum and then accrues interest on
// the remaining balance at annual_rate/12; the budget surplus over the
// minimum-payment sum goes entirely to the first debt in strategy order.
// A budget below the minimum-payment sum is an infeasible plan, reported
// with its shortfall rather than simulated.
func (e *Engine) PlanDebtPayoff(debts []domain.Debt, monthlyBudget decimal.Decimal, strategy domain.PayoffStrategy) (*domain.PayoffPlan, error) {
	if len(debts) == 0 {
		return nil, fmt.Errorf("no debts provided")
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("unknown payoff strategy %q", strategy)
	}
	if monthlyBudget.IsNegative() {
		return nil, fmt.Errorf("monthly budget cannot be negative")
	}
	for _, d := range debts {
		if err := validateDebt(d); err != nil {
			return nil, err
		}
	}

	minimumSum := decimal.Zero
	totalDebt := decimal.Zero
	for _, d := range debts {
		minimumSum = minimumSum.Add(d.MinPayment)
		totalDebt = totalDebt.Add(d.Balance)
	}

	plan := &domain.PayoffPlan{
		Strategy:        strategy,
		TotalDebt:       totalDebt,
		MonthlyBudget:   monthlyBudget,
		MinimumPayments: minimumSum,
		Shortfall:       decimal.Zero,
		ExtraPayment:    decimal.Zero,
	}

	if monthlyBudget.LessThan(minimumSum) {
		plan.Shortfall = minimumSum.Sub(monthlyBudget)
		e.Logger.Warnf("debt budget %s is below minimum payments %s (shortfall %s)",
			monthlyBudget.StringFixed(2), minimumSum.StringFixed(2), plan.Shortfall.StringFixed(2))
		return plan, nil
	}
	plan.Feasible = true
	plan.ExtraPayment = monthlyBudget.Sub(minimumSum)

	active := orderDebts(debts, strategy)
	plan.PaymentPriority = make([]string, len(active))
	for i, d := range active {
		plan.PaymentPriority[i] = d.Name
	}

	totalInterest := decimal.Zero
	month := 0
	for len(active) > 0 && month < PayoffStepCap {
		month++
		monthly := domain.MonthlyPlan{Month: month, TotalPaid: decimal.Zero}

		// Minimum payment, then interest on what remains.
		for i := range active {
			d := active[i]
			payment := decimal.Min(d.Balance, d.MinPayment)
			d.Balance = d.Balance.Sub(payment)
			interest := d.Balance.Mul(d.AnnualRate.Div(monthsPerYearTimesHundred))
			d.Balance = d.Balance.Add(interest)
			d.interestAccrued = d.interestAccrued.Add(interest)
			d.totalPaid = d.totalPaid.Add(payment)
			d.paymentThisMonth = payment
			d.interestThisMonth = interest
			totalInterest = totalInterest.Add(interest)
		}

		// The surplus goes to the single focus debt: first in current order.
		if plan.ExtraPayment.IsPositive() {
			focus := active[0]
			extra := decimal.Min(focus.Balance, plan.ExtraPayment)
			focus.Balance = focus.Balance.Sub(extra)
			focus.totalPaid = focus.totalPaid.Add(extra)
			focus.paymentThisMonth = focus.paymentThisMonth.Add(extra)
		}

		for _, d := range active {
			monthly.Payments = append(monthly.Payments, domain.DebtPayment{
				DebtName:         d.Name,
				Payment:          d.paymentThisMonth,
				InterestAccrued:  d.interestThisMonth,
				RemainingBalance: d.Balance,
			})
			monthly.TotalPaid = monthly.TotalPaid.Add(d.paymentThisMonth)
		}
		plan.MonthlyPlan = append(plan.MonthlyPlan, monthly)

		// Retire debts whose balance reached zero, keeping order.
		remaining := active[:0]
		for _, d := range active {
			if d.Balance.IsPositive() {
				remaining = append(remaining, d)
				continue
			}
			plan.Payoffs = append(plan.Payoffs, domain.DebtPayoff{
				Name:            d.Name,
				PayoffMonth:     month,
				OriginalBalance: d.originalBalance,
				InterestPaid:    d.interestAccrued,
				TotalPaid:       d.totalPaid,
			})
			if e.Debug {
				e.Logger.Debugf("debt %q retired in month %d (paid %s, interest %s)",
					d.Name, month, d.totalPaid.StringFixed(2), d.interestAccrued.StringFixed(2))
			}
		}
		active = remaining
	}

	plan.TotalMonths = month
	plan.TotalInterestPaid = totalInterest
	if len(active) > 0 {
		plan.CapReached = true
		for _, d := range active {
			plan.Unresolved = append(plan.Unresolved, domain.UnresolvedDebt{
				Name:             d.Name,
				RemainingBalance: d.Balance,
			})
		}
		e.Logger.Warnf("payoff step cap of %d months reached with %d debts unresolved", PayoffStepCap, len(active))
	}

	return plan, nil
}

// ComparePayoffStrategies runs both orderings over the same inputs and
// reports the interest and months saved by the cheaper one. Ties on interest
// fall back to months, then to avalanche.
func (e *Engine) ComparePayoffStrategies(debts []domain.Debt, monthlyBudget decimal.Decimal) (*domain.StrategyComparison, error) {
	avalanche, err := e.PlanDebtPayoff(debts, monthlyBudget, domain.StrategyAvalanche)
	if err != nil {
		return nil, err
	}
	snowball, err := e.PlanDebtPayoff(debts, monthlyBudget, domain.StrategySnowball)
	if err != nil {
		return nil, err
	}

	comparison := &domain.StrategyComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: decimal.Zero,
	}
	if !avalanche.Feasible {
		// Minimum payments are strategy independent, so both runs are
		// infeasible together and there is nothing to recommend.
		return comparison, nil
	}

	diff := snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid)
	switch {
	case diff.IsPositive():
		comparison.Recommended = domain.StrategyAvalanche
	case diff.IsNegative():
		comparison.Recommended = domain.StrategySnowball
	case snowball.TotalMonths < avalanche.TotalMonths:
		comparison.Recommended = domain.StrategySnowball
	default:
		comparison.Recommended = domain.StrategyAvalanche
	}
	comparison.InterestSaved = diff.Abs()
	comparison.MonthsSaved = avalanche.TotalMonths - snowball.TotalMonths
	if comparison.MonthsSaved < 0 {
		comparison.MonthsSaved = -comparison.MonthsSaved
	}
	return comparison, nil
}

// trackedDebt is a Debt being amortized, with running totals.
type trackedDebt struct {
	domain.Debt
	originalBalance   decimal.Decimal
	interestAccrued   decimal.Decimal
	totalPaid         decimal.Decimal
	paymentThisMonth  decimal.Decimal
	interestThisMonth decimal.Decimal
}

// orderDebts copies and sorts debts per the strategy. The sort is stable so
// ties keep original input order and results stay deterministic.
func orderDebts(debts []domain.Debt, strategy domain.PayoffStrategy) []*trackedDebt {
	ordered := make([]*trackedDebt, len(debts))
	for i, d := range debts {
		ordered[i] = &trackedDebt{
			Debt:            d,
			originalBalance: d.Balance,
			interestAccrued: decimal.Zero,
			totalPaid:       decimal.Zero,
		}
	}
	if strategy == domain.StrategyAvalanche {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate.GreaterThan(ordered[j].AnnualRate)
		})
	} else {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance.LessThan(ordered[j].Balance)
		})
	}
	return ordered
}

func validateDebt(d domain.Debt) error {
	if d.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if !d.Balance.IsPositive() {
		return fmt.Errorf("debt %q: balance must be positive", d.Name)
	}
	if d.AnnualRate.IsNegative() {
		return fmt.Errorf("debt %q: annual rate cannot be negative", d.Name)
	}
	if d.MinPayment.IsNegative() {
		return fmt.Errorf("debt %q: minimum payment cannot be negative", d.Name)
	}
	return nil
}
