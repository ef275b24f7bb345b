package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Obligation is a bill with a fixed amount and due date.
type Obligation struct {
	Name    string          `yaml:"name" json:"name"`
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
	DueDate time.Time       `yaml:"due_date" json:"due_date"`
}

// Inflow is an expected deposit. Once matched against the running balance it
// is consumed and never counted again.
type Inflow struct {
	Source string          `yaml:"source" json:"source"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Date   time.Time       `yaml:"date" json:"date"`
}

// PaymentStatus classifies a scheduled obligation.
type PaymentStatus string

const (
	// PayOnTime: paying leaves the balance at or above the minimum floor.
	PayOnTime PaymentStatus = "PAY_ON_TIME"
	// PayWithCaution: paying dips below the floor but stays non-negative.
	PayWithCaution PaymentStatus = "PAY_WITH_CAUTION"
	// DelayNeeded: paying would drive the balance negative.
	DelayNeeded PaymentStatus = "DELAY_NEEDED"
)

// ScheduledPayment is the decision for a single obligation.
type ScheduledPayment struct {
	Obligation      string          `json:"obligation"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         time.Time       `json:"due_date"`
	RecommendedDate time.Time       `json:"recommended_date"`
	Status          PaymentStatus   `json:"status"`

	// BalanceAfter is balance-before minus the obligation amount and may be
	// negative; RunningBalance is the clamped balance carried forward.
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// PaymentSchedule is the scheduler's full decision trace.
//
// Known limitation, preserved for compatibility: after a shortfall the
// running balance clamps at zero rather than carrying a true negative
// balance, so later decisions do not compound an unrealized overdraft.
// Callers that need real overdraft modeling must post-process CrunchAlerts.
type PaymentSchedule struct {
	StartingBalance  decimal.Decimal    `json:"starting_balance"`
	MinimumBalance   decimal.Decimal    `json:"minimum_balance"`
	TotalObligations decimal.Decimal    `json:"total_obligations"`
	TotalInflows     decimal.Decimal    `json:"total_inflows"`
	Payments         []ScheduledPayment `json:"payments"`
	CrunchAlerts     []ScheduledPayment `json:"crunch_alerts,omitempty"`
}
