// Package pipeline runs the capital projection: simulation, downsampling and summaries.
package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/kapital/internal/model"
)

// DaysPerMonth is the interval, in simulated days, between monthly adjustments.
const DaysPerMonth = 30

// FeeSeed is the starting value of the cumulative fee series.
// It is 1, not 0; growth percentages on the fee series depend on it.
const FeeSeed = 1.0

// MaxHorizonDays caps the simulated horizon at one hundred decades.
const MaxHorizonDays = 100 * 3650

// ErrInvalidScenario is returned by Validate for inputs the engine cannot run.
var ErrInvalidScenario = errors.New("invalid scenario")

// Validate checks a scenario before simulation. Negative or zero rates are
// allowed; only a negative or oversized horizon and NaN inputs are rejected.
func Validate(sc model.Scenario) error {
	if sc.HorizonDays < 0 {
		return fmt.Errorf("%w: horizon days must not be negative (got %d)", ErrInvalidScenario, sc.HorizonDays)
	}
	if sc.HorizonDays > MaxHorizonDays {
		return fmt.Errorf("%w: horizon days must be at most %d (got %d)", ErrInvalidScenario, MaxHorizonDays, sc.HorizonDays)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"starting investors", sc.StartingInvestors},
		{"starting capital", sc.StartingCapital},
		{"monthly contribution", sc.MonthlyContribution},
		{"daily growth", sc.DailyGrowthPct},
		{"fee", sc.FeePct},
		{"monthly investor growth", sc.MonthlyInvestorGrowthPct},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) {
			return fmt.Errorf("%w: %s is not a number", ErrInvalidScenario, f.name)
		}
	}
	return nil
}

// Simulate runs the daily recurrence and returns three series of length
// HorizonDays+1. A negative horizon is treated as zero and one above
// MaxHorizonDays as MaxHorizonDays.
//
// On every day d with d%30 == 0 the investor count grows first, then the
// month's contributions are added to the previous day's balances in place,
// and only then is day d's growth applied. Fees accrue on total-capital
// profit only.
func Simulate(sc model.Scenario) model.Projection {
	days := max(0, min(sc.HorizonDays, MaxHorizonDays))

	capital := make(model.Series, 1, days+1)
	perInvestor := make(model.Series, 1, days+1)
	fees := make(model.Series, 1, days+1)

	capital[0] = sc.StartingCapital * sc.StartingInvestors
	perInvestor[0] = sc.StartingCapital
	fees[0] = FeeSeed

	investors := sc.StartingInvestors
	for d := 1; d <= days; d++ {
		last := d - 1

		if d%DaysPerMonth == 0 {
			investors *= 1 + sc.MonthlyInvestorGrowthPct/100
			capital[last] += sc.MonthlyContribution * investors
			perInvestor[last] += sc.MonthlyContribution
		}

		profit := capital[last] * sc.DailyGrowthPct / 100
		capital = append(capital, capital[last]+profit)

		profitPerInvestor := perInvestor[last] * sc.DailyGrowthPct / 100
		perInvestor = append(perInvestor, perInvestor[last]+profitPerInvestor)

		fees = append(fees, fees[last]+profit*sc.FeePct/100)
	}

	return model.Projection{
		TotalCapital:       capital,
		TotalFees:          fees,
		PerInvestorCapital: perInvestor,
	}
}
