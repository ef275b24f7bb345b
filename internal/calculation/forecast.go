package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finplan/financial-simulator/internal/domain"
)

var two = decimal.NewFromInt(2)

// ForecastCashFlow projects a flat monthly budget forward, grading each
// month's ending balance against the monthly expense total.
func (e *Engine) ForecastCashFlow(input domain.ForecastInput) (*domain.CashFlowForecast, error) {
	if input.Months <= 0 {
		return nil, fmt.Errorf("forecast horizon must be at least one month")
	}
	if input.StartingBalance.IsNegative() {
		return nil, fmt.Errorf("starting balance cannot be negative")
	}
	for source, amount := range input.Income {
		if amount.IsNegative() {
			return nil, fmt.Errorf("income %q: amount cannot be negative", source)
		}
	}
	for category, amount := range input.Expenses {
		if amount.IsNegative() {
			return nil, fmt.Errorf("expense %q: amount cannot be negative", category)
		}
	}

	totalIncome := decimal.Zero
	for _, amount := range input.Income {
		totalIncome = totalIncome.Add(amount)
	}
	totalExpenses := decimal.Zero
	for _, amount := range input.Expenses {
		totalExpenses = totalExpenses.Add(amount)
	}
	net := totalIncome.Sub(totalExpenses)

	forecast := &domain.CashFlowForecast{
		StartingBalance:    input.StartingBalance,
		MonthlyIncome:      totalIncome,
		MonthlyExpenses:    totalExpenses,
		NetMonthly:         net,
		MonthsUntilDeficit: decimal.Zero,
	}

	switch {
	case net.IsPositive():
		forecast.Trend = "positive"
	case net.IsNegative():
		forecast.Trend = "negative"
	default:
		forecast.Trend = "neutral"
	}
	if net.IsNegative() {
		forecast.DeficitExpected = true
		forecast.MonthsUntilDeficit = input.StartingBalance.Div(net.Abs()).Round(1)
	}

	balance := input.StartingBalance
	for month := 1; month <= input.Months; month++ {
		balance = balance.Add(net)

		status := domain.ForecastHealthy
		switch {
		case balance.IsNegative():
			status = domain.ForecastDeficit
		case balance.LessThan(totalExpenses):
			status = domain.ForecastLow
		case balance.LessThan(totalExpenses.Mul(two)):
			status = domain.ForecastAdequate
		}

		forecast.Months = append(forecast.Months, domain.ForecastMonth{
			Month:         month,
			Income:        totalIncome,
			Expenses:      totalExpenses,
			NetFlow:       net,
			EndingBalance: balance,
			Status:        status,
		})
	}

	return forecast, nil
}
