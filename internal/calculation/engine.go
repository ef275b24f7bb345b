package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/finplan/financial-simulator/internal/domain"
)

// Engine runs the temporal financial simulations. Every method is a pure
// computation over its inputs: no I/O, no shared mutable state, so a single
// Engine may be used from concurrent goroutines.
type Engine struct {
	Debug  bool // Enable debug output of per-step state
	Logger Logger
}

// NewEngine creates a new simulation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunPlan runs every section present in the plan and assembles the report.
// A validation failure in any section aborts the whole run.
func (e *Engine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanReport, error) {
	if plan == nil {
		return nil, fmt.Errorf("no plan provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.PlanReport{GeneratedAt: time.Now().UTC()}

	if plan.DebtPayoff != nil {
		payoff, err := e.PlanDebtPayoff(plan.DebtPayoff.Debts, plan.DebtPayoff.MonthlyBudget, plan.DebtPayoff.Strategy)
		if err != nil {
			return nil, fmt.Errorf("debt payoff: %w", err)
		}
		report.DebtPayoff = payoff

		if plan.DebtPayoff.Compare {
			comparison, err := e.ComparePayoffStrategies(plan.DebtPayoff.Debts, plan.DebtPayoff.MonthlyBudget)
			if err != nil {
				return nil, fmt.Errorf("strategy comparison: %w", err)
			}
			report.StrategyComparison = comparison
		}
	}

	if plan.PaymentSchedule != nil {
		schedule, err := e.ScheduleObligations(plan.PaymentSchedule.Obligations, plan.PaymentSchedule.Inflows,
			plan.PaymentSchedule.StartingBalance, plan.PaymentSchedule.MinimumBalance)
		if err != nil {
			return nil, fmt.Errorf("payment schedule: %w", err)
		}
		report.PaymentSchedule = schedule
	}

	if plan.Growth != nil {
		growth, err := e.ProjectGrowth(*plan.Growth)
		if err != nil {
			return nil, fmt.Errorf("growth projection: %w", err)
		}
		report.Growth = growth
	}

	if plan.Life != nil {
		life, err := e.ProjectLife(plan.Life.Snapshot, plan.Life.Events)
		if err != nil {
			return nil, fmt.Errorf("life projection: %w", err)
		}
		report.Life = life
	}

	if plan.Forecast != nil {
		forecast, err := e.ForecastCashFlow(*plan.Forecast)
		if err != nil {
			return nil, fmt.Errorf("cash flow forecast: %w", err)
		}
		report.Forecast = forecast
	}

	if plan.EMI != nil {
		emi, err := e.SimulateEMIPurchase(*plan.EMI)
		if err != nil {
			return nil, fmt.Errorf("emi purchase: %w", err)
		}
		report.EMI = emi
	}

	return report, nil
}
