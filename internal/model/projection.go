// Package model defines the value types shared by the kapital engine and its front ends.
package model

import (
	"encoding/json"
	"math"
)

// Scenario holds the inputs of one simulation run.
// All rates are percentages (1 means 1%).
type Scenario struct {
	StartingInvestors        float64 `json:"starting_investors" yaml:"starting_investors"`
	StartingCapital          float64 `json:"starting_capital" yaml:"starting_capital"`
	MonthlyContribution      float64 `json:"monthly_contribution" yaml:"monthly_contribution"`
	DailyGrowthPct           float64 `json:"daily_growth_pct" yaml:"daily_growth_pct"`
	FeePct                   float64 `json:"fee_pct" yaml:"fee_pct"`
	MonthlyInvestorGrowthPct float64 `json:"monthly_investor_growth_pct" yaml:"monthly_investor_growth_pct"`
	HorizonDays              int     `json:"horizon_days" yaml:"horizon_days"`
}

// Series is a quantity sampled once per simulated day.
// Index 0 is the value before any day has elapsed.
type Series []float64

// First returns the initial value, or 0 for an empty series.
func (s Series) First() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Last returns the final value, or 0 for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Projection holds the three daily series of one run, index-aligned by day.
type Projection struct {
	TotalCapital       Series
	TotalFees          Series
	PerInvestorCapital Series
}

// Days returns the number of simulated days covered by the projection.
func (p Projection) Days() int {
	return len(p.TotalCapital) - 1
}

// Point is one aggregated sample. Day is the index in the daily series.
type Point struct {
	Day   int     `json:"day" yaml:"day"`
	Value float64 `json:"value" yaml:"value"`
}

// MarshalJSON encodes non-finite values as null so the payload stays valid JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Day   int      `json:"day"`
		Value *float64 `json:"value"`
	}{Day: p.Day, Value: finite(p.Value)})
}

// SeriesSummary holds the headline numbers shown under each chart.
type SeriesSummary struct {
	Start      float64 `json:"start" yaml:"start"`
	End        float64 `json:"end" yaml:"end"`
	GrowthPct  float64 `json:"growth_pct" yaml:"growth_pct"`
	ProfitLoss float64 `json:"profit_loss" yaml:"profit_loss"`
}

// MarshalJSON encodes non-finite values as null.
func (s SeriesSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start      *float64 `json:"start"`
		End        *float64 `json:"end"`
		GrowthPct  *float64 `json:"growth_pct"`
		ProfitLoss *float64 `json:"profit_loss"`
	}{
		Start:      finite(s.Start),
		End:        finite(s.End),
		GrowthPct:  finite(s.GrowthPct),
		ProfitLoss: finite(s.ProfitLoss),
	})
}

// SeriesReport pairs the aggregated points of one series with its summary.
type SeriesReport struct {
	Name    string        `json:"name" yaml:"name"`
	Points  []Point       `json:"points" yaml:"points"`
	Summary SeriesSummary `json:"summary" yaml:"summary"`
}

// Report is the full result of one projection request.
type Report struct {
	Scenario     Scenario     `json:"scenario" yaml:"scenario"`
	Horizon      string       `json:"horizon" yaml:"horizon"`
	HorizonLabel string       `json:"horizon_label" yaml:"horizon_label"`
	Stride       int          `json:"stride" yaml:"stride"`
	Fees         SeriesReport `json:"fees" yaml:"fees"`
	Capital      SeriesReport `json:"capital" yaml:"capital"`
	PerInvestor  SeriesReport `json:"per_investor" yaml:"per_investor"`
}

// Series returns the three series reports in display order.
func (r Report) Series() []SeriesReport {
	return []SeriesReport{r.Fees, r.Capital, r.PerInvestor}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
