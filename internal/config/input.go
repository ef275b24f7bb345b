package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finplan/financial-simulator/internal/domain"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan performs structural checks on a loaded plan. Numeric range
// checks live with the engine; this layer rejects plans that are empty or
// malformed in ways the engine never sees.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.DebtPayoff == nil && plan.PaymentSchedule == nil && plan.Growth == nil &&
		plan.Life == nil && plan.Forecast == nil && plan.EMI == nil {
		return fmt.Errorf("plan has no sections")
	}

	if plan.DebtPayoff != nil {
		if err := ip.validateDebtPayoff(plan.DebtPayoff); err != nil {
			return fmt.Errorf("debt_payoff validation failed: %w", err)
		}
	}
	if plan.PaymentSchedule != nil {
		if err := ip.validateSchedule(plan.PaymentSchedule); err != nil {
			return fmt.Errorf("payment_schedule validation failed: %w", err)
		}
	}
	if plan.Growth != nil {
		if err := ip.validateGrowth(plan.Growth); err != nil {
			return fmt.Errorf("growth validation failed: %w", err)
		}
	}
	if plan.Life != nil {
		if err := ip.validateLife(plan.Life); err != nil {
			return fmt.Errorf("life validation failed: %w", err)
		}
	}
	if plan.Forecast != nil {
		if err := ip.validateForecast(plan.Forecast); err != nil {
			return fmt.Errorf("forecast validation failed: %w", err)
		}
	}
	if plan.EMI != nil {
		if err := ip.validateEMI(plan.EMI); err != nil {
			return fmt.Errorf("emi validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateDebtPayoff(input *domain.DebtPayoffInput) error {
	if !input.Strategy.Valid() {
		return fmt.Errorf("strategy must be 'avalanche' or 'snowball'")
	}
	if len(input.Debts) == 0 {
		return fmt.Errorf("at least one debt is required")
	}
	if input.MonthlyBudget.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly budget must be positive")
	}
	for i, d := range input.Debts {
		if d.Name == "" {
			return fmt.Errorf("debt %d: name is required", i)
		}
		if d.Balance.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("debt %q: balance must be positive", d.Name)
		}
		if d.AnnualRate.LessThan(decimal.Zero) {
			return fmt.Errorf("debt %q: annual rate cannot be negative", d.Name)
		}
		if d.MinPayment.LessThan(decimal.Zero) {
			return fmt.Errorf("debt %q: minimum payment cannot be negative", d.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateSchedule(input *domain.ScheduleInput) error {
	if input.StartingBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("starting balance cannot be negative")
	}
	if input.MinimumBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("minimum balance cannot be negative")
	}
	if len(input.Obligations) == 0 {
		return fmt.Errorf("at least one obligation is required")
	}
	for i, ob := range input.Obligations {
		if ob.Name == "" {
			return fmt.Errorf("obligation %d: name is required", i)
		}
		if ob.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("obligation %q: amount cannot be negative", ob.Name)
		}
		if ob.DueDate.IsZero() {
			return fmt.Errorf("obligation %q: due date is required", ob.Name)
		}
	}
	for i, in := range input.Inflows {
		if in.Source == "" {
			return fmt.Errorf("inflow %d: source is required", i)
		}
		if in.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("inflow %q: amount cannot be negative", in.Source)
		}
		if in.Date.IsZero() {
			return fmt.Errorf("inflow %q: date is required", in.Source)
		}
	}
	return nil
}

func (ip *InputParser) validateGrowth(plan *domain.ContributionPlan) error {
	if plan.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if plan.Years <= 0 || plan.Years > 60 {
		return fmt.Errorf("years must be between 1 and 60")
	}
	if plan.AnnualRate.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if plan.InitialLumpSum.LessThan(decimal.Zero) {
		return fmt.Errorf("initial lump sum cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateLife(input *domain.LifeInput) error {
	s := input.Snapshot
	if s.CurrentAge <= 0 || s.CurrentAge > 100 {
		return fmt.Errorf("current age must be between 1 and 100")
	}
	if s.RetirementAge > 100 {
		return fmt.Errorf("retirement age must be at most 100")
	}
	if s.AnnualIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("annual income cannot be negative")
	}
	if s.MonthlyExpenses.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	// CurrentSavings may be negative (starting in debt) and an event cost may
	// be negative (a windfall); both are simulated as signed values.
	for i, ev := range input.Events {
		if ev.Name == "" {
			return fmt.Errorf("event %d: name is required", i)
		}
		if ev.TriggerAge <= 0 {
			return fmt.Errorf("event %q: trigger age must be positive", ev.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateForecast(input *domain.ForecastInput) error {
	if input.Months <= 0 || input.Months > 120 {
		return fmt.Errorf("months must be between 1 and 120")
	}
	if input.StartingBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("starting balance cannot be negative")
	}
	for source, amount := range input.Income {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("income %q: amount cannot be negative", source)
		}
	}
	for category, amount := range input.Expenses {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("expense %q: amount cannot be negative", category)
		}
	}
	return nil
}

func (ip *InputParser) validateEMI(purchase *domain.EMIPurchase) error {
	if purchase.Item == "" {
		return fmt.Errorf("item is required")
	}
	if purchase.Cost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("cost must be positive")
	}
	if purchase.DownPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("down payment cannot be negative")
	}
	if purchase.DownPayment.GreaterThan(purchase.Cost) {
		return fmt.Errorf("down payment cannot exceed cost")
	}
	if purchase.Months <= 0 || purchase.Months > 360 {
		return fmt.Errorf("months must be between 1 and 360")
	}
	if purchase.AnnualRate.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if purchase.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly income must be positive")
	}
	if purchase.MonthlyExpenses.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	return nil
}

// CreateExamplePlan creates an example plan exercising every section
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	rentDue, _ := time.Parse("2006-01-02", "2026-10-01")
	tuitionDue, _ := time.Parse("2006-01-02", "2026-10-15")
	insuranceDue, _ := time.Parse("2006-01-02", "2026-10-20")
	salaryDate, _ := time.Parse("2006-01-02", "2026-09-28")
	bonusDate, _ := time.Parse("2006-01-02", "2026-10-18")

	return &domain.Plan{
		DebtPayoff: &domain.DebtPayoffInput{
			Strategy:      domain.StrategyAvalanche,
			MonthlyBudget: decimal.NewFromInt(5000),
			Compare:       true,
			Debts: []domain.Debt{
				{
					Name:       "Credit Card",
					Balance:    decimal.NewFromInt(50000),
					AnnualRate: decimal.NewFromInt(36),
					MinPayment: decimal.NewFromInt(2500),
				},
				{
					Name:       "Personal Loan",
					Balance:    decimal.NewFromInt(20000),
					AnnualRate: decimal.NewFromInt(12),
					MinPayment: decimal.NewFromInt(800),
				},
			},
		},
		PaymentSchedule: &domain.ScheduleInput{
			StartingBalance: decimal.NewFromInt(15000),
			MinimumBalance:  decimal.NewFromInt(10000),
			Obligations: []domain.Obligation{
				{Name: "Rent", Amount: decimal.NewFromInt(18000), DueDate: rentDue},
				{Name: "Tuition", Amount: decimal.NewFromInt(25000), DueDate: tuitionDue},
				{Name: "Insurance Premium", Amount: decimal.NewFromInt(8000), DueDate: insuranceDue},
			},
			Inflows: []domain.Inflow{
				{Source: "Salary", Amount: decimal.NewFromInt(100000), Date: salaryDate},
				{Source: "Freelance Bonus", Amount: decimal.NewFromInt(15000), Date: bonusDate},
			},
		},
		Growth: &domain.ContributionPlan{
			MonthlyContribution: decimal.NewFromInt(5000),
			Years:               10,
			AnnualRate:          decimal.NewFromInt(12),
			InitialLumpSum:      decimal.NewFromInt(25000),
		},
		Life: &domain.LifeInput{
			Snapshot: domain.LifeSnapshot{
				CurrentAge:      30,
				RetirementAge:   60,
				AnnualIncome:    decimal.NewFromInt(95000),
				CurrentSavings:  decimal.NewFromInt(40000),
				MonthlyExpenses: decimal.NewFromInt(3200),
			},
			Events: []domain.LifeEvent{
				{Name: "Wedding", TriggerAge: 32, Cost: decimal.NewFromInt(25000)},
				{Name: "House Down Payment", TriggerAge: 36, Cost: decimal.NewFromInt(80000)},
				{Name: "College Fund", TriggerAge: 48, Cost: decimal.NewFromInt(60000)},
			},
		},
		Forecast: &domain.ForecastInput{
			Income: map[string]decimal.Decimal{
				"salary":    decimal.NewFromInt(7900),
				"freelance": decimal.NewFromInt(600),
			},
			Expenses: map[string]decimal.Decimal{
				"rent":      decimal.NewFromInt(1800),
				"groceries": decimal.NewFromInt(700),
				"transport": decimal.NewFromInt(300),
				"utilities": decimal.NewFromInt(250),
				"leisure":   decimal.NewFromInt(450),
			},
			StartingBalance: decimal.NewFromInt(12000),
			Months:          12,
		},
		EMI: &domain.EMIPurchase{
			Item:            "Car",
			Cost:            decimal.NewFromInt(28000),
			DownPayment:     decimal.NewFromInt(6000),
			Months:          48,
			AnnualRate:      decimal.NewFromFloat(7.5),
			MonthlyIncome:   decimal.NewFromInt(8500),
			MonthlyExpenses: decimal.NewFromInt(3500),
		},
	}
}
