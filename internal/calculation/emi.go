package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finplan/financial-simulator/internal/domain"
)

var (
	highExpenseRatio   = decimal.NewFromFloat(0.8)
	mediumExpenseRatio = decimal.NewFromFloat(0.7)
)

// SimulateEMIPurchase computes the reducing-balance installment for a
// financed purchase and its impact on monthly savings.
func (e *Engine) SimulateEMIPurchase(purchase domain.EMIPurchase) (*domain.EMIResult, error) {
	if !purchase.Cost.IsPositive() {
		return nil, fmt.Errorf("item cost must be positive")
	}
	if purchase.DownPayment.IsNegative() {
		return nil, fmt.Errorf("down payment cannot be negative")
	}
	if purchase.DownPayment.GreaterThan(purchase.Cost) {
		return nil, fmt.Errorf("down payment cannot exceed the item cost")
	}
	if purchase.Months <= 0 {
		return nil, fmt.Errorf("tenure must be at least one month")
	}
	if purchase.AnnualRate.IsNegative() {
		return nil, fmt.Errorf("interest rate cannot be negative")
	}
	if !purchase.MonthlyIncome.IsPositive() {
		return nil, fmt.Errorf("monthly income must be positive")
	}
	if purchase.MonthlyExpenses.IsNegative() {
		return nil, fmt.Errorf("monthly expenses cannot be negative")
	}

	loan := purchase.Cost.Sub(purchase.DownPayment)
	months := decimal.NewFromInt(int64(purchase.Months))
	monthlyRate := purchase.AnnualRate.Div(hundred).Div(decimal.NewFromInt(12))

	var emi decimal.Decimal
	if monthlyRate.IsZero() {
		emi = loan.Div(months)
	} else {
		compounded := one.Add(monthlyRate).Pow(months)
		emi = loan.Mul(monthlyRate).Mul(compounded).Div(compounded.Sub(one))
	}

	totalPayment := emi.Mul(months)
	newExpenses := purchase.MonthlyExpenses.Add(emi)
	currentSavings := purchase.MonthlyIncome.Sub(purchase.MonthlyExpenses)
	newSavings := purchase.MonthlyIncome.Sub(newExpenses)
	expenseRatio := newExpenses.Div(purchase.MonthlyIncome)

	result := &domain.EMIResult{
		Item:                  purchase.Item,
		LoanAmount:            loan,
		MonthlyEMI:            emi,
		TotalPayment:          totalPayment,
		TotalInterest:         totalPayment.Sub(loan),
		CurrentMonthlySavings: currentSavings,
		NewMonthlySavings:     newSavings,
		SavingsReduction:      currentSavings.Sub(newSavings),
		ExpenseRatio:          expenseRatio.Mul(hundred),
	}

	switch {
	case expenseRatio.GreaterThan(highExpenseRatio):
		result.Risk = domain.RiskHigh
		result.Recommendation = "Not recommended: this installment leaves very little room for savings"
	case expenseRatio.GreaterThan(mediumExpenseRatio):
		result.Risk = domain.RiskMedium
		result.Recommendation = "Caution: consider a longer tenure or a larger down payment"
	default:
		result.Risk = domain.RiskLow
		result.Recommendation = "Acceptable: the installment fits within the budget"
	}

	if e.Debug {
		e.Logger.Debugf("emi for %q: loan %s over %d months at %s%% is %s per month",
			purchase.Item, loan.StringFixed(2), purchase.Months, purchase.AnnualRate.StringFixed(2), emi.StringFixed(2))
	}

	return result, nil
}
