package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/financial-simulator/internal/domain"
	"github.com/finplan/financial-simulator/pkg/dateutil"
)

// ScheduleObligations walks the obligations chronologically, applying each
// expected inflow at most once, and classifies every obligation as pay on
// time, pay with caution, or delay needed against the minimum balance floor.
//
// The running balance clamps at zero after a shortfall instead of carrying a
// true negative balance. See domain.PaymentSchedule for the rationale.
func (e *Engine) ScheduleObligations(obligations []domain.Obligation, inflows []domain.Inflow, startingBalance, minimumBalance decimal.Decimal) (*domain.PaymentSchedule, error) {
	if startingBalance.IsNegative() {
		return nil, fmt.Errorf("starting balance cannot be negative")
	}
	if minimumBalance.IsNegative() {
		return nil, fmt.Errorf("minimum balance cannot be negative")
	}
	for _, ob := range obligations {
		if ob.Amount.IsNegative() {
			return nil, fmt.Errorf("obligation %q: amount cannot be negative", ob.Name)
		}
		if ob.DueDate.IsZero() {
			return nil, fmt.Errorf("obligation %q: due date is required", ob.Name)
		}
	}
	for _, in := range inflows {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("inflow %q: amount cannot be negative", in.Source)
		}
		if in.Date.IsZero() {
			return nil, fmt.Errorf("inflow %q: date is required", in.Source)
		}
	}

	// Stable chronological order keeps same-day entries deterministic.
	sortedObligations := make([]domain.Obligation, len(obligations))
	copy(sortedObligations, obligations)
	sort.SliceStable(sortedObligations, func(i, j int) bool {
		return sortedObligations[i].DueDate.Before(sortedObligations[j].DueDate)
	})
	sortedInflows := make([]domain.Inflow, len(inflows))
	copy(sortedInflows, inflows)
	sort.SliceStable(sortedInflows, func(i, j int) bool {
		return sortedInflows[i].Date.Before(sortedInflows[j].Date)
	})

	schedule := &domain.PaymentSchedule{
		StartingBalance: startingBalance,
		MinimumBalance:  minimumBalance,
	}
	totalObligations := decimal.Zero
	for _, ob := range sortedObligations {
		totalObligations = totalObligations.Add(ob.Amount)
	}
	totalInflows := decimal.Zero
	for _, in := range sortedInflows {
		totalInflows = totalInflows.Add(in.Amount)
	}
	schedule.TotalObligations = totalObligations
	schedule.TotalInflows = totalInflows

	// remaining tracks each inflow's unconsumed amount; zeroed on use so an
	// inflow is never double counted.
	remaining := make([]decimal.Decimal, len(sortedInflows))
	for i, in := range sortedInflows {
		remaining[i] = in.Amount
	}

	balance := startingBalance
	for _, ob := range sortedObligations {
		for i := range sortedInflows {
			if remaining[i].IsZero() {
				continue
			}
			if dateutil.SameOrBefore(sortedInflows[i].Date, ob.DueDate) {
				balance = balance.Add(remaining[i])
				remaining[i] = decimal.Zero
			}
		}

		balanceAfter := balance.Sub(ob.Amount)
		payment := domain.ScheduledPayment{
			Obligation:      ob.Name,
			Amount:          ob.Amount,
			DueDate:         ob.DueDate,
			RecommendedDate: ob.DueDate,
			BalanceAfter:    balanceAfter,
		}

		switch {
		case balanceAfter.GreaterThanOrEqual(minimumBalance):
			payment.Status = domain.PayOnTime
		case !balanceAfter.IsNegative():
			payment.Status = domain.PayWithCaution
		default:
			payment.Status = domain.DelayNeeded
			// Suggest the next unconsumed inflow strictly after the due date,
			// or keep the due date when none exists.
			var candidates []time.Time
			for i, in := range sortedInflows {
				if remaining[i].IsPositive() {
					candidates = append(candidates, in.Date)
				}
			}
			if next, ok := dateutil.NextAfter(candidates, ob.DueDate); ok {
				payment.RecommendedDate = next
			}
		}

		if balanceAfter.IsNegative() {
			balance = decimal.Zero
		} else {
			balance = balanceAfter
		}
		payment.RunningBalance = balance

		if e.Debug {
			e.Logger.Debugf("obligation %q due %s: %s, balance after %s",
				ob.Name, dateutil.FormatDate(ob.DueDate), payment.Status, balanceAfter.StringFixed(2))
		}

		schedule.Payments = append(schedule.Payments, payment)
		if payment.Status == domain.DelayNeeded {
			schedule.CrunchAlerts = append(schedule.CrunchAlerts, payment)
		}
	}

	return schedule, nil
}
