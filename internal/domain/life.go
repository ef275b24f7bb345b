package domain

import (
	"github.com/shopspring/decimal"
)

// LifeSnapshot is the starting point of a multi-decade projection.
type LifeSnapshot struct {
	CurrentAge      int             `yaml:"current_age" json:"current_age"`
	RetirementAge   int             `yaml:"retirement_age" json:"retirement_age"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	CurrentSavings  decimal.Decimal `yaml:"current_savings" json:"current_savings"` // net worth, may be negative
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`

	// StartYear anchors the calendar labels of the trace. Zero means the
	// projector fills in the current year.
	StartYear int `yaml:"start_year" json:"start_year"`
}

// LifeEvent is a one-time cost (or windfall, when Cost is negative) applied
// exactly once, at the year whose age equals TriggerAge.
type LifeEvent struct {
	Name       string          `yaml:"name" json:"name"`
	TriggerAge int             `yaml:"trigger_age" json:"trigger_age"`
	Cost       decimal.Decimal `yaml:"cost" json:"cost"`
}

// YearStatus tags a simulated year. It is recomputed fresh from that year's
// numbers, not carried forward.
type YearStatus string

const (
	// StatusPositive: net worth and the year's savings are both non-negative.
	StatusPositive YearStatus = "positive"
	// StatusWarning: net worth is non-negative but the year ran a deficit.
	StatusWarning YearStatus = "warning"
	// StatusNegative: net worth is below zero.
	StatusNegative YearStatus = "negative"
)

// LifeYear is one simulated year of the projection.
type LifeYear struct {
	Year       int             `json:"year"`
	Age        int             `json:"age"`
	NetWorth   decimal.Decimal `json:"net_worth"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"` // inflation-adjusted, excludes events
	EventCosts decimal.Decimal `json:"event_costs"`
	NetSavings decimal.Decimal `json:"net_savings"`
	Events     []string        `json:"events,omitempty"`
	Status     YearStatus      `json:"status"`
}

// ScenarioBand is a presentation band: a fixed multiplier applied to the base
// run's retirement-year net worth. It is not an independently simulated
// trajectory and must not be read as one.
type ScenarioBand struct {
	Multiplier         decimal.Decimal `json:"multiplier"`
	RetirementNetWorth decimal.Decimal `json:"retirement_net_worth"`
}

// LifeSummary condenses the projection for rendering.
type LifeSummary struct {
	RetirementNetWorth decimal.Decimal `json:"retirement_net_worth"`
	TotalEventCosts    decimal.Decimal `json:"total_event_costs"`
	EventsApplied      int             `json:"events_applied"`
	OnTrack            bool            `json:"on_track"` // no simulated year went negative
	YearsOfExpenses    decimal.Decimal `json:"years_of_expenses"`
	PeakNetWorth       decimal.Decimal `json:"peak_net_worth"`
	PeakYear           int             `json:"peak_year"`
	FirstNegativeYear  *int            `json:"first_negative_year,omitempty"`
}

// LifeProjection is the full result of the multi-decade simulation.
// Feasible is false when the snapshot cannot be simulated at all
// (retirement age at or below current age); Reason explains why.
type LifeProjection struct {
	Feasible    bool         `json:"feasible"`
	Reason      string       `json:"reason,omitempty"`
	Years       []LifeYear   `json:"years,omitempty"`
	Summary     LifeSummary  `json:"summary"`
	Optimistic  ScenarioBand `json:"optimistic"`
	Pessimistic ScenarioBand `json:"pessimistic"`
}
