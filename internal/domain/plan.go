package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtPayoffInput is the amortization section of a plan file.
type DebtPayoffInput struct {
	Strategy      PayoffStrategy  `yaml:"strategy" json:"strategy"`
	MonthlyBudget decimal.Decimal `yaml:"monthly_budget" json:"monthly_budget"`
	Debts         []Debt          `yaml:"debts" json:"debts"`

	// Compare additionally runs the opposite strategy and reports savings.
	Compare bool `yaml:"compare" json:"compare"`
}

// ScheduleInput is the cash-flow scheduling section of a plan file.
type ScheduleInput struct {
	StartingBalance decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	MinimumBalance  decimal.Decimal `yaml:"minimum_balance" json:"minimum_balance"`
	Obligations     []Obligation    `yaml:"obligations" json:"obligations"`
	Inflows         []Inflow        `yaml:"inflows" json:"inflows"`
}

// LifeInput is the multi-decade projection section of a plan file.
type LifeInput struct {
	Snapshot LifeSnapshot `yaml:"snapshot" json:"snapshot"`
	Events   []LifeEvent  `yaml:"events" json:"events"`
}

// Plan is a full plan file. Every section is optional; the engine runs
// whichever sections are present.
type Plan struct {
	DebtPayoff      *DebtPayoffInput  `yaml:"debt_payoff,omitempty" json:"debt_payoff,omitempty"`
	PaymentSchedule *ScheduleInput    `yaml:"payment_schedule,omitempty" json:"payment_schedule,omitempty"`
	Growth          *ContributionPlan `yaml:"growth,omitempty" json:"growth,omitempty"`
	Life            *LifeInput        `yaml:"life,omitempty" json:"life,omitempty"`
	Forecast        *ForecastInput    `yaml:"forecast,omitempty" json:"forecast,omitempty"`
	EMI             *EMIPurchase      `yaml:"emi,omitempty" json:"emi,omitempty"`
}

// PlanReport aggregates the results of every section the plan carried.
type PlanReport struct {
	GeneratedAt time.Time `json:"generated_at"`

	DebtPayoff         *PayoffPlan         `json:"debt_payoff,omitempty"`
	StrategyComparison *StrategyComparison `json:"strategy_comparison,omitempty"`
	PaymentSchedule    *PaymentSchedule    `json:"payment_schedule,omitempty"`
	Growth             *GrowthProjection   `json:"growth,omitempty"`
	Life               *LifeProjection     `json:"life,omitempty"`
	Forecast           *CashFlowForecast   `json:"forecast,omitempty"`
	EMI                *EMIResult          `json:"emi,omitempty"`
}
