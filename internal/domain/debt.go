package domain

import (
	"github.com/shopspring/decimal"
)

// PayoffStrategy selects the ordering used when directing extra payments.
type PayoffStrategy string

const (
	// StrategyAvalanche orders debts by descending interest rate.
	StrategyAvalanche PayoffStrategy = "avalanche"
	// StrategySnowball orders debts by ascending balance.
	StrategySnowball PayoffStrategy = "snowball"
)

// Valid reports whether the strategy is one of the supported orderings.
func (s PayoffStrategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// Debt is a single outstanding balance accruing interest monthly.
type Debt struct {
	Name       string          `yaml:"name" json:"name"`
	Balance    decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // percent, e.g. 36 for 36%
	MinPayment decimal.Decimal `yaml:"min_payment" json:"min_payment"` // per month
}

// DebtPayoff records when a debt was retired during the simulation.
type DebtPayoff struct {
	Name            string          `json:"name"`
	PayoffMonth     int             `json:"payoff_month"`
	OriginalBalance decimal.Decimal `json:"original_balance"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
}

// DebtPayment is one debt's slice of a single month's payments.
type DebtPayment struct {
	DebtName         string          `json:"debt_name"`
	Payment          decimal.Decimal `json:"payment"`
	InterestAccrued  decimal.Decimal `json:"interest_accrued"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// MonthlyPlan is the full payment breakdown for one simulated month.
type MonthlyPlan struct {
	Month     int             `json:"month"`
	Payments  []DebtPayment   `json:"payments"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// UnresolvedDebt marks a debt still carrying a balance when the step cap hit.
type UnresolvedDebt struct {
	Name             string          `json:"name"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// PayoffPlan is the structured outcome of the amortization simulation.
// Infeasibility (budget below the minimum-payment sum) is a reported
// outcome, not an error: Feasible is false and Shortfall carries the gap.
type PayoffPlan struct {
	Strategy        PayoffStrategy  `json:"strategy"`
	Feasible        bool            `json:"feasible"`
	Shortfall       decimal.Decimal `json:"shortfall"`
	TotalDebt       decimal.Decimal `json:"total_debt"`
	MonthlyBudget   decimal.Decimal `json:"monthly_budget"`
	MinimumPayments decimal.Decimal `json:"minimum_payments"`
	ExtraPayment    decimal.Decimal `json:"extra_payment"`

	// PaymentPriority is the strategy ordering actually used, ties broken
	// by original input order.
	PaymentPriority []string `json:"payment_priority"`

	Payoffs           []DebtPayoff     `json:"payoffs"`
	MonthlyPlan       []MonthlyPlan    `json:"monthly_plan"`
	TotalMonths       int              `json:"total_months"`
	TotalInterestPaid decimal.Decimal  `json:"total_interest_paid"`
	CapReached        bool             `json:"cap_reached"`
	Unresolved        []UnresolvedDebt `json:"unresolved,omitempty"`
}

// DebtFree reports whether every debt was retired within the step cap.
func (p *PayoffPlan) DebtFree() bool {
	return p.Feasible && !p.CapReached && len(p.Unresolved) == 0
}

// StrategyComparison holds both strategy runs over the same inputs.
type StrategyComparison struct {
	Avalanche     *PayoffPlan     `json:"avalanche"`
	Snowball      *PayoffPlan     `json:"snowball"`
	Recommended   PayoffStrategy  `json:"recommended"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
	MonthsSaved   int             `json:"months_saved"`
}
