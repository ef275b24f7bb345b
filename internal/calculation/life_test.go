package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/financial-simulator/internal/domain"
)

func baseSnapshot() domain.LifeSnapshot {
	return domain.LifeSnapshot{
		CurrentAge:      30,
		RetirementAge:   65,
		AnnualIncome:    decimal.NewFromInt(100000),
		CurrentSavings:  decimal.NewFromInt(50000),
		MonthlyExpenses: decimal.NewFromInt(3000),
		StartYear:       2026,
	}
}

func TestProjectLifeFirstYear(t *testing.T) {
	engine := NewEngine()

	projection, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)
	require.True(t, projection.Feasible)
	require.NotEmpty(t, projection.Years)

	first := projection.Years[0]
	assert.Equal(t, 2026, first.Year)
	assert.Equal(t, 30, first.Age)

	// Under 40: a 4% raise and an 8% return. Expenses start uninflated.
	assert.True(t, first.Income.Equal(decimal.NewFromInt(104000)),
		"expected income 104000, got %s", first.Income)
	assert.True(t, first.Expenses.Equal(decimal.NewFromInt(36000)),
		"expected expenses 36000, got %s", first.Expenses)
	assert.True(t, first.NetSavings.Equal(decimal.NewFromInt(68000)))
	assert.True(t, first.NetWorth.Equal(decimal.NewFromInt(122000)),
		"expected net worth 50000*1.08+68000, got %s", first.NetWorth)
	assert.Equal(t, domain.StatusPositive, first.Status)
}

func TestProjectLifeHorizonLength(t *testing.T) {
	engine := NewEngine()

	projection, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)

	// Ages 30 through 75 inclusive.
	wantYears := 65 - 30 + RetirementRunwayYears + 1
	assert.Len(t, projection.Years, wantYears)
	assert.Equal(t, 75, projection.Years[len(projection.Years)-1].Age)
}

func TestProjectLifeRetirementIncomeFixed(t *testing.T) {
	engine := NewEngine()

	projection, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)

	var retired []domain.LifeYear
	for _, y := range projection.Years {
		if y.Age >= 65 {
			retired = append(retired, y)
		}
	}
	require.NotEmpty(t, retired)

	// Income stops growing at the transition and stays flat after it.
	for _, y := range retired[1:] {
		assert.True(t, y.Income.Equal(retired[0].Income),
			"retirement income changed at age %d: %s vs %s", y.Age, y.Income, retired[0].Income)
	}
}

func TestProjectLifeEventsAppliedOnce(t *testing.T) {
	engine := NewEngine()

	events := []domain.LifeEvent{
		{Name: "Wedding", TriggerAge: 32, Cost: decimal.NewFromInt(20000)},
		{Name: "House Down Payment", TriggerAge: 35, Cost: decimal.NewFromInt(60000)},
		{Name: "Car", TriggerAge: 35, Cost: decimal.NewFromInt(15000)},
	}

	projection, err := engine.ProjectLife(baseSnapshot(), events)
	require.NoError(t, err)

	assert.Equal(t, 3, projection.Summary.EventsApplied)
	assert.True(t, projection.Summary.TotalEventCosts.Equal(decimal.NewFromInt(95000)))

	var at32, at35 domain.LifeYear
	for _, y := range projection.Years {
		switch y.Age {
		case 32:
			at32 = y
		case 35:
			at35 = y
		}
	}
	assert.True(t, at32.EventCosts.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, []string{"Wedding"}, at32.Events)
	assert.True(t, at35.EventCosts.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, []string{"House Down Payment", "Car"}, at35.Events)
}

func TestProjectLifeEventChangesOnlyItsYear(t *testing.T) {
	engine := NewEngine()

	without, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)

	cost := decimal.NewFromInt(30000)
	with, err := engine.ProjectLife(baseSnapshot(), []domain.LifeEvent{
		{Name: "Sabbatical", TriggerAge: 40, Cost: cost},
	})
	require.NoError(t, err)
	require.Equal(t, len(without.Years), len(with.Years))

	// Before retirement the savings term is independent of net worth, so
	// the event shifts exactly one year. After the transition the 4%
	// withdrawal couples income to the carried net worth, so only the
	// working years are compared.
	for i := range without.Years {
		if with.Years[i].Age >= 65 {
			break
		}
		diff := without.Years[i].NetSavings.Sub(with.Years[i].NetSavings)
		if with.Years[i].Age == 40 {
			assert.True(t, diff.Equal(cost),
				"event year net savings should drop by exactly the cost, diff %s", diff)
		} else {
			assert.True(t, diff.IsZero(),
				"age %d net savings changed without an event", with.Years[i].Age)
		}
	}
}

func TestProjectLifeWindfallEvent(t *testing.T) {
	engine := NewEngine()

	windfall := decimal.NewFromInt(-50000)
	projection, err := engine.ProjectLife(baseSnapshot(), []domain.LifeEvent{
		{Name: "Inheritance", TriggerAge: 45, Cost: windfall},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, projection.Summary.EventsApplied)
	assert.True(t, projection.Summary.TotalEventCosts.Equal(windfall))

	baseline, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)

	var withEvent, without domain.LifeYear
	for i := range projection.Years {
		if projection.Years[i].Age == 45 {
			withEvent = projection.Years[i]
			without = baseline.Years[i]
		}
	}
	// A negative cost adds to the year's savings.
	assert.True(t, withEvent.NetSavings.Sub(without.NetSavings).Equal(decimal.NewFromInt(50000)),
		"windfall should raise net savings by its magnitude")
}

func TestProjectLifeNegativeStartingSavings(t *testing.T) {
	engine := NewEngine()

	snapshot := baseSnapshot()
	snapshot.CurrentSavings = decimal.NewFromInt(-20000)

	projection, err := engine.ProjectLife(snapshot, nil)
	require.NoError(t, err)
	require.True(t, projection.Feasible)

	// Debt compounds at the under-40 return before the year's savings land:
	// -20000*1.08 + 68000.
	first := projection.Years[0]
	assert.True(t, first.NetWorth.Equal(decimal.NewFromInt(46400)),
		"expected first-year net worth 46400, got %s", first.NetWorth)
	assert.Equal(t, domain.StatusPositive, first.Status)
}

func TestProjectLifeEventOutsideRange(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name       string
		triggerAge int
	}{
		{name: "before current age", triggerAge: 25},
		{name: "past the horizon", triggerAge: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ProjectLife(baseSnapshot(), []domain.LifeEvent{
				{Name: "Out of Range", TriggerAge: tt.triggerAge, Cost: decimal.NewFromInt(1000)},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "outside the simulated range")
		})
	}
}

func TestProjectLifeRetirementBeforeCurrentAge(t *testing.T) {
	engine := NewEngine()

	snapshot := baseSnapshot()
	snapshot.RetirementAge = 30

	projection, err := engine.ProjectLife(snapshot, nil)
	require.NoError(t, err)

	assert.False(t, projection.Feasible)
	assert.NotEmpty(t, projection.Reason)
	assert.Empty(t, projection.Years)
}

func TestProjectLifeScenarioBands(t *testing.T) {
	engine := NewEngine()

	projection, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)

	base := projection.Summary.RetirementNetWorth
	assert.True(t, projection.Optimistic.RetirementNetWorth.Equal(base.Mul(decimal.NewFromFloat(1.3))))
	assert.True(t, projection.Pessimistic.RetirementNetWorth.Equal(base.Mul(decimal.NewFromFloat(0.6))))
}

func TestProjectLifeSummaryTracking(t *testing.T) {
	engine := NewEngine()

	projection, err := engine.ProjectLife(baseSnapshot(), nil)
	require.NoError(t, err)

	summary := projection.Summary
	assert.True(t, summary.RetirementNetWorth.IsPositive())
	assert.True(t, summary.OnTrack)
	assert.Nil(t, summary.FirstNegativeYear)
	assert.True(t, summary.YearsOfExpenses.IsPositive())
	assert.True(t, summary.PeakNetWorth.GreaterThanOrEqual(summary.RetirementNetWorth))
	assert.GreaterOrEqual(t, summary.PeakYear, 2026)

	for _, y := range projection.Years {
		assert.True(t, y.NetWorth.LessThanOrEqual(summary.PeakNetWorth))
	}
}

func TestProjectLifeUnderfundedRetirement(t *testing.T) {
	engine := NewEngine()

	snapshot := domain.LifeSnapshot{
		CurrentAge:      55,
		RetirementAge:   60,
		AnnualIncome:    decimal.NewFromInt(30000),
		CurrentSavings:  decimal.NewFromInt(1000),
		MonthlyExpenses: decimal.NewFromInt(6000),
		StartYear:       2026,
	}

	projection, err := engine.ProjectLife(snapshot, nil)
	require.NoError(t, err)
	require.True(t, projection.Feasible)

	// Expenses dwarf income from the start, so the trajectory goes negative
	// and the summary records when.
	assert.False(t, projection.Summary.OnTrack)
	require.NotNil(t, projection.Summary.FirstNegativeYear)
	assert.GreaterOrEqual(t, *projection.Summary.FirstNegativeYear, 2026)
}

func TestProjectLifeValidation(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		mutate  func(*domain.LifeSnapshot)
		wantErr string
	}{
		{
			name:    "zero current age",
			mutate:  func(s *domain.LifeSnapshot) { s.CurrentAge = 0 },
			wantErr: "current age must be positive",
		},
		{
			name:    "negative income",
			mutate:  func(s *domain.LifeSnapshot) { s.AnnualIncome = decimal.NewFromInt(-1) },
			wantErr: "income cannot be negative",
		},
		{
			name:    "negative expenses",
			mutate:  func(s *domain.LifeSnapshot) { s.MonthlyExpenses = decimal.NewFromInt(-1) },
			wantErr: "expenses cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := baseSnapshot()
			tt.mutate(&snapshot)
			_, err := engine.ProjectLife(snapshot, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
