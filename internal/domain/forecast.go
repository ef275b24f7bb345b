package domain

import (
	"github.com/shopspring/decimal"
)

// ForecastInput is a flat monthly budget projected forward.
type ForecastInput struct {
	Income          map[string]decimal.Decimal `yaml:"income" json:"income"`
	Expenses        map[string]decimal.Decimal `yaml:"expenses" json:"expenses"`
	StartingBalance decimal.Decimal            `yaml:"starting_balance" json:"starting_balance"`
	Months          int                        `yaml:"months" json:"months"`
}

// ForecastStatus grades a forecast month by its ending balance.
type ForecastStatus string

const (
	ForecastDeficit  ForecastStatus = "DEFICIT"  // ending balance below zero
	ForecastLow      ForecastStatus = "LOW"      // below one month of expenses
	ForecastAdequate ForecastStatus = "ADEQUATE" // below two months of expenses
	ForecastHealthy  ForecastStatus = "HEALTHY"
)

// ForecastMonth is one projected month.
type ForecastMonth struct {
	Month         int             `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	NetFlow       decimal.Decimal `json:"net_flow"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
	Status        ForecastStatus  `json:"status"`
}

// CashFlowForecast is the monthly forecast trace plus its trend summary.
type CashFlowForecast struct {
	StartingBalance decimal.Decimal `json:"starting_balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	NetMonthly      decimal.Decimal `json:"net_monthly"`
	Months          []ForecastMonth `json:"months"`

	Trend string `json:"trend"` // "positive", "negative" or "neutral"

	// MonthsUntilDeficit is set only when DeficitExpected: how many months of
	// the current burn the starting balance covers.
	DeficitExpected    bool            `json:"deficit_expected"`
	MonthsUntilDeficit decimal.Decimal `json:"months_until_deficit"`
}
