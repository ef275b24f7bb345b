package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/financial-simulator/internal/calculation"
	"github.com/finplan/financial-simulator/internal/config"
	"github.com/finplan/financial-simulator/internal/domain"
)

func exampleReport(t *testing.T) *domain.PlanReport {
	t.Helper()
	plan := config.NewInputParser().CreateExamplePlan()
	report, err := calculation.NewEngine().RunPlan(context.Background(), plan)
	require.NoError(t, err)
	return report
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		lookup   string
		expected string
	}{
		{name: "console by name", lookup: "console", expected: "console"},
		{name: "json by name", lookup: "json", expected: "json"},
		{name: "csv by name", lookup: "csv", expected: "csv"},
		{name: "text alias", lookup: "text", expected: "console"},
		{name: "uppercase alias", lookup: "TXT", expected: "console"},
		{name: "json-pretty alias", lookup: "json-pretty", expected: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.lookup)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}
}

func TestGetFormatterByNameUnknown(t *testing.T) {
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Contains(t, names, "console")
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "csv")
}

func TestFormatterFuncAdapter(t *testing.T) {
	ff := FormatterFunc{
		ID: "static",
		F: func(*domain.PlanReport) ([]byte, error) {
			return []byte("ok"), nil
		},
	}
	assert.Equal(t, "static", ff.Name())
	data, err := ff.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestConsoleFormatter(t *testing.T) {
	report := exampleReport(t)

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "FINANCIAL SIMULATION REPORT")
	assert.Contains(t, text, "DEBT PAYOFF (avalanche)")
	assert.Contains(t, text, "STRATEGY COMPARISON")
	assert.Contains(t, text, "PAYMENT SCHEDULE")
	assert.Contains(t, text, "GROWTH PROJECTION")
	assert.Contains(t, text, "LIFE PROJECTION")
	assert.Contains(t, text, "CASH FLOW FORECAST")
	assert.Contains(t, text, "PURCHASE SIMULATION: Car")
	assert.Contains(t, text, "$")
}

func TestConsoleFormatterInfeasibleDebt(t *testing.T) {
	report := exampleReport(t)
	report.DebtPayoff.Feasible = false
	report.DebtPayoff.Shortfall = report.DebtPayoff.MinimumPayments

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFEASIBLE")
}

func TestJSONFormatter(t *testing.T) {
	report := exampleReport(t)

	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "debt_payoff")
	assert.Contains(t, decoded, "payment_schedule")
	assert.Contains(t, decoded, "growth")
	assert.Contains(t, decoded, "life")
	assert.Contains(t, decoded, "forecast")
	assert.Contains(t, decoded, "emi")
}

func TestCSVSummarizer(t *testing.T) {
	report := exampleReport(t)

	data, err := CSVSummarizer{}.Format(report)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1 // section blocks carry different column counts
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	sections := map[string]bool{}
	for _, rec := range records {
		require.NotEmpty(t, rec)
		sections[rec[0]] = true
	}
	assert.True(t, sections["debt_payoff"])
	assert.True(t, sections["payment_schedule"])
	assert.True(t, sections["growth"])
	assert.True(t, sections["life"])
	assert.True(t, sections["forecast"])
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName(" Console "))
	assert.Equal(t, "console", NormalizeFormatName("plain"))
	assert.Equal(t, "json", NormalizeFormatName("JSON-Pretty"))
	assert.Equal(t, "unknown", NormalizeFormatName("unknown"))
}
