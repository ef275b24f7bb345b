package output

import (
	"bytes"
	"fmt"

	"github.com/finplan/financial-simulator/internal/calculation"
	"github.com/finplan/financial-simulator/internal/domain"
	"github.com/finplan/financial-simulator/pkg/dateutil"
)

// ConsoleFormatter renders the plan report as a readable text summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL SIMULATION REPORT")
	fmt.Fprintln(&buf, "================================")

	if report.DebtPayoff != nil {
		c.writeDebtPayoff(&buf, report.DebtPayoff)
	}
	if report.StrategyComparison != nil {
		c.writeComparison(&buf, report.StrategyComparison)
	}
	if report.PaymentSchedule != nil {
		c.writeSchedule(&buf, report.PaymentSchedule)
	}
	if report.Growth != nil {
		c.writeGrowth(&buf, report.Growth)
	}
	if report.Life != nil {
		c.writeLife(&buf, report.Life)
	}
	if report.Forecast != nil {
		c.writeForecast(&buf, report.Forecast)
	}
	if report.EMI != nil {
		c.writeEMI(&buf, report.EMI)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeDebtPayoff(buf *bytes.Buffer, plan *domain.PayoffPlan) {
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "DEBT PAYOFF (%s)\n", plan.Strategy)
	fmt.Fprintln(buf, "--------------------------------")
	if !plan.Feasible {
		fmt.Fprintf(buf, "INFEASIBLE: budget %s does not cover minimum payments %s (shortfall %s)\n",
			FormatCurrency(plan.MonthlyBudget), FormatCurrency(plan.MinimumPayments), FormatCurrency(plan.Shortfall))
		return
	}
	fmt.Fprintf(buf, "Total Debt: %s  Budget: %s  Extra: %s\n",
		FormatCurrency(plan.TotalDebt), FormatCurrency(plan.MonthlyBudget), FormatCurrency(plan.ExtraPayment))
	for _, p := range plan.Payoffs {
		fmt.Fprintf(buf, "  %s: paid off in month %d (interest %s, total paid %s)\n",
			p.Name, p.PayoffMonth, FormatCurrency(p.InterestPaid), FormatCurrency(p.TotalPaid))
	}
	if plan.CapReached {
		fmt.Fprintf(buf, "  Step cap reached after %d months with %d debts unresolved:\n", plan.TotalMonths, len(plan.Unresolved))
		for _, u := range plan.Unresolved {
			fmt.Fprintf(buf, "    %s: %s remaining\n", u.Name, FormatCurrency(u.RemainingBalance))
		}
	} else {
		fmt.Fprintf(buf, "Debt free in %d months, total interest %s\n",
			plan.TotalMonths, FormatCurrency(plan.TotalInterestPaid))
	}
}

func (c ConsoleFormatter) writeComparison(buf *bytes.Buffer, comparison *domain.StrategyComparison) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "STRATEGY COMPARISON")
	fmt.Fprintln(buf, "--------------------------------")
	if comparison.Recommended == "" {
		fmt.Fprintln(buf, "No recommendation: plan is infeasible under both strategies")
		return
	}
	fmt.Fprintf(buf, "Avalanche: %d months, %s interest\n",
		comparison.Avalanche.TotalMonths, FormatCurrency(comparison.Avalanche.TotalInterestPaid))
	fmt.Fprintf(buf, "Snowball:  %d months, %s interest\n",
		comparison.Snowball.TotalMonths, FormatCurrency(comparison.Snowball.TotalInterestPaid))
	fmt.Fprintf(buf, "Recommended: %s (saves %s in interest, %d months)\n",
		comparison.Recommended, FormatCurrency(comparison.InterestSaved), comparison.MonthsSaved)
}

func (c ConsoleFormatter) writeSchedule(buf *bytes.Buffer, schedule *domain.PaymentSchedule) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "PAYMENT SCHEDULE")
	fmt.Fprintln(buf, "--------------------------------")
	fmt.Fprintf(buf, "Starting Balance: %s  Floor: %s\n",
		FormatCurrency(schedule.StartingBalance), FormatCurrency(schedule.MinimumBalance))
	fmt.Fprintf(buf, "Obligations: %s  Expected Inflows: %s\n",
		FormatCurrency(schedule.TotalObligations), FormatCurrency(schedule.TotalInflows))
	for _, p := range schedule.Payments {
		fmt.Fprintf(buf, "  %s  %-18s %-16s balance %s",
			dateutil.FormatDate(p.DueDate), p.Obligation, p.Status, FormatCurrency(p.RunningBalance))
		if p.Status == domain.DelayNeeded && !p.RecommendedDate.Equal(p.DueDate) {
			fmt.Fprintf(buf, "  (delay until %s)", dateutil.FormatDate(p.RecommendedDate))
		}
		fmt.Fprintln(buf)
	}
	if len(schedule.CrunchAlerts) > 0 {
		fmt.Fprintf(buf, "CASH CRUNCH: %d obligation(s) cannot be paid on time\n", len(schedule.CrunchAlerts))
	}
}

func (c ConsoleFormatter) writeGrowth(buf *bytes.Buffer, growth *domain.GrowthProjection) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "GROWTH PROJECTION")
	fmt.Fprintln(buf, "--------------------------------")
	fmt.Fprintf(buf, "%s/month for %d years (invested %s)\n",
		FormatCurrency(growth.Plan.MonthlyContribution), growth.Plan.Years, FormatCurrency(growth.TotalInvested))
	fmt.Fprintf(buf, "  Worst (%s): %s\n", FormatPercentage(growth.WorstCase.ReturnRate), FormatCurrency(growth.WorstCase.FinalValue))
	fmt.Fprintf(buf, "  Base  (%s): %s  (gain %s)\n",
		FormatPercentage(growth.BaseCase.ReturnRate), FormatCurrency(growth.BaseCase.FinalValue), FormatPercentage(growth.BaseCase.GainPercent))
	fmt.Fprintf(buf, "  Best  (%s): %s\n", FormatPercentage(growth.BestCase.ReturnRate), FormatCurrency(growth.BestCase.FinalValue))
	fmt.Fprintln(buf, "Recent trajectory:")
	for _, y := range growth.TrailingYears(calculation.TrailingTraceYears) {
		fmt.Fprintf(buf, "  Year %2d: %s (gain %s)\n", y.Year, FormatCurrency(y.Value), FormatCurrency(y.Gain))
	}
}

func (c ConsoleFormatter) writeLife(buf *bytes.Buffer, life *domain.LifeProjection) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "LIFE PROJECTION")
	fmt.Fprintln(buf, "--------------------------------")
	if !life.Feasible {
		fmt.Fprintf(buf, "INFEASIBLE: %s\n", life.Reason)
		return
	}
	summary := life.Summary
	fmt.Fprintf(buf, "Net worth at retirement: %s (%s years of expenses)\n",
		FormatCurrency(summary.RetirementNetWorth), summary.YearsOfExpenses.StringFixed(1))
	fmt.Fprintf(buf, "Optimistic: %s  Pessimistic: %s\n",
		FormatCurrency(life.Optimistic.RetirementNetWorth), FormatCurrency(life.Pessimistic.RetirementNetWorth))
	fmt.Fprintf(buf, "Peak net worth %s in %d\n", FormatCurrency(summary.PeakNetWorth), summary.PeakYear)
	if summary.EventsApplied > 0 {
		fmt.Fprintf(buf, "Life events applied: %d totaling %s\n", summary.EventsApplied, FormatCurrency(summary.TotalEventCosts))
	}
	if summary.OnTrack {
		fmt.Fprintln(buf, "On track: no simulated year goes negative")
	} else if summary.FirstNegativeYear != nil {
		fmt.Fprintf(buf, "WARNING: net worth first goes negative in %d\n", *summary.FirstNegativeYear)
	}
}

func (c ConsoleFormatter) writeForecast(buf *bytes.Buffer, forecast *domain.CashFlowForecast) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "CASH FLOW FORECAST")
	fmt.Fprintln(buf, "--------------------------------")
	fmt.Fprintf(buf, "Income %s/month, expenses %s/month, net %s (%s trend)\n",
		FormatCurrency(forecast.MonthlyIncome), FormatCurrency(forecast.MonthlyExpenses),
		FormatCurrency(forecast.NetMonthly), forecast.Trend)
	if forecast.DeficitExpected {
		fmt.Fprintf(buf, "DEFICIT expected: roughly %s months of runway left\n", forecast.MonthsUntilDeficit.StringFixed(1))
	}
	for _, m := range forecast.Months {
		fmt.Fprintf(buf, "  Month %2d: %s (%s)\n", m.Month, FormatCurrency(m.EndingBalance), m.Status)
	}
}

func (c ConsoleFormatter) writeEMI(buf *bytes.Buffer, emi *domain.EMIResult) {
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "PURCHASE SIMULATION: %s\n", emi.Item)
	fmt.Fprintln(buf, "--------------------------------")
	fmt.Fprintf(buf, "Loan %s, installment %s/month, total interest %s\n",
		FormatCurrency(emi.LoanAmount), FormatCurrency(emi.MonthlyEMI), FormatCurrency(emi.TotalInterest))
	fmt.Fprintf(buf, "Monthly savings: %s now, %s after purchase\n",
		FormatCurrency(emi.CurrentMonthlySavings), FormatCurrency(emi.NewMonthlySavings))
	fmt.Fprintf(buf, "Expense ratio %s  Risk: %s\n", FormatPercentage(emi.ExpenseRatio), emi.Risk)
	fmt.Fprintf(buf, "%s\n", emi.Recommendation)
}
