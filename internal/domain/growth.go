package domain

import (
	"github.com/shopspring/decimal"
)

// ContributionPlan describes a periodic investment with an optional lump sum.
type ContributionPlan struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualRate          decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // percent
	InitialLumpSum      decimal.Decimal `yaml:"initial_lump_sum" json:"initial_lump_sum"`
}

// GrowthScenario is one return-rate case evaluated in closed form.
type GrowthScenario struct {
	ReturnRate  decimal.Decimal `json:"return_rate"` // percent, after flooring
	FinalValue  decimal.Decimal `json:"final_value"`
	TotalGain   decimal.Decimal `json:"total_gain"`
	GainPercent decimal.Decimal `json:"gain_percent"`
}

// GrowthYear is one year of the base-scenario trace.
type GrowthYear struct {
	Year     int             `json:"year"`
	Value    decimal.Decimal `json:"value"`
	Invested decimal.Decimal `json:"invested"`
	Gain     decimal.Decimal `json:"gain"`
}

// GrowthProjection is the three-scenario projection of a contribution plan.
type GrowthProjection struct {
	Plan          ContributionPlan `json:"plan"`
	TotalInvested decimal.Decimal  `json:"total_invested"`
	WorstCase     GrowthScenario   `json:"worst_case"`
	BaseCase      GrowthScenario   `json:"base_case"`
	BestCase      GrowthScenario   `json:"best_case"`

	// YearlyProjection traces the base scenario for every plan year.
	YearlyProjection []GrowthYear `json:"yearly_projection"`
}

// TrailingYears returns the last n years of the base-scenario trace,
// the window charts are built from.
func (g *GrowthProjection) TrailingYears(n int) []GrowthYear {
	if n >= len(g.YearlyProjection) {
		return g.YearlyProjection
	}
	return g.YearlyProjection[len(g.YearlyProjection)-n:]
}
