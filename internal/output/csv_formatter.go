package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finplan/financial-simulator/internal/domain"
	"github.com/finplan/financial-simulator/pkg/dateutil"
)

// CSVSummarizer emits one section per block: the debt payment trace, the
// payment schedule, the growth trace, the life years, and the forecast months.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if report.DebtPayoff != nil && report.DebtPayoff.Feasible {
		if err := w.Write([]string{"section", "month", "debt", "payment", "interest", "remaining_balance"}); err != nil {
			return nil, err
		}
		for _, month := range report.DebtPayoff.MonthlyPlan {
			for _, p := range month.Payments {
				row := []string{
					"debt_payoff",
					strconv.Itoa(month.Month),
					p.DebtName,
					p.Payment.StringFixed(2),
					p.InterestAccrued.StringFixed(2),
					p.RemainingBalance.StringFixed(2),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}

	if report.PaymentSchedule != nil {
		if err := w.Write([]string{"section", "due_date", "obligation", "amount", "status", "recommended_date", "running_balance"}); err != nil {
			return nil, err
		}
		for _, p := range report.PaymentSchedule.Payments {
			row := []string{
				"payment_schedule",
				dateutil.FormatDate(p.DueDate),
				p.Obligation,
				p.Amount.StringFixed(2),
				string(p.Status),
				dateutil.FormatDate(p.RecommendedDate),
				p.RunningBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if report.Growth != nil {
		if err := w.Write([]string{"section", "year", "value", "invested", "gain"}); err != nil {
			return nil, err
		}
		for _, y := range report.Growth.YearlyProjection {
			row := []string{
				"growth",
				strconv.Itoa(y.Year),
				y.Value.StringFixed(2),
				y.Invested.StringFixed(2),
				y.Gain.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if report.Life != nil && report.Life.Feasible {
		if err := w.Write([]string{"section", "year", "age", "net_worth", "income", "expenses", "net_savings", "status"}); err != nil {
			return nil, err
		}
		for _, y := range report.Life.Years {
			row := []string{
				"life",
				strconv.Itoa(y.Year),
				strconv.Itoa(y.Age),
				y.NetWorth.StringFixed(2),
				y.Income.StringFixed(2),
				y.Expenses.StringFixed(2),
				y.NetSavings.StringFixed(2),
				string(y.Status),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if report.Forecast != nil {
		if err := w.Write([]string{"section", "month", "ending_balance", "status"}); err != nil {
			return nil, err
		}
		for _, m := range report.Forecast.Months {
			row := []string{
				"forecast",
				strconv.Itoa(m.Month),
				m.EndingBalance.StringFixed(2),
				string(m.Status),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
