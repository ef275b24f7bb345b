package domain

import (
	"github.com/shopspring/decimal"
)

// EMIPurchase describes a financed purchase to evaluate against a budget.
type EMIPurchase struct {
	Item            string          `yaml:"item" json:"item"`
	Cost            decimal.Decimal `yaml:"cost" json:"cost"`
	DownPayment     decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	Months          int             `yaml:"months" json:"months"`
	AnnualRate      decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // percent
	MonthlyIncome   decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
}

// RiskLevel grades the post-purchase expense ratio.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// EMIResult is the reducing-balance installment simulation outcome.
type EMIResult struct {
	Item          string          `json:"item"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	MonthlyEMI    decimal.Decimal `json:"monthly_emi"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	TotalInterest decimal.Decimal `json:"total_interest"`

	CurrentMonthlySavings decimal.Decimal `json:"current_monthly_savings"`
	NewMonthlySavings     decimal.Decimal `json:"new_monthly_savings"`
	SavingsReduction      decimal.Decimal `json:"savings_reduction"`
	ExpenseRatio          decimal.Decimal `json:"expense_ratio"` // percent of income after purchase

	Risk           RiskLevel `json:"risk"`
	Recommendation string    `json:"recommendation"`
}
