package pipeline

import (
	"fmt"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
)

// Series names used in reports.
const (
	SeriesFees        = "fees"
	SeriesCapital     = "capital"
	SeriesPerInvestor = "per_investor"
)

// Summarize computes start, end, growth and profit/loss of a daily series.
// Growth is 0 when the start value is 0.
func Summarize(series model.Series) model.SeriesSummary {
	start := series.First()
	end := series.Last()

	var growth float64
	if start != 0 {
		growth = (end - start) / start * 100
	}

	return model.SeriesSummary{
		Start:      start,
		End:        end,
		GrowthPct:  growth,
		ProfitLoss: end - start,
	}
}

// Run executes one full projection request: validate, simulate the whole
// horizon from day 0, downsample each series and summarize it.
//
// If sc.HorizonDays is 0 the bucket's day count is used. Summaries are taken
// from the full daily series, not from the downsampled points.
func Run(sc model.Scenario, bucket horizon.Bucket) (model.Report, error) {
	if !bucket.Valid() {
		return model.Report{}, fmt.Errorf("%w: %d", horizon.ErrUnknownBucket, int(bucket))
	}
	if sc.HorizonDays == 0 {
		sc.HorizonDays = bucket.Days()
	}
	if err := Validate(sc); err != nil {
		return model.Report{}, err
	}

	proj := Simulate(sc)

	return model.Report{
		Scenario:     sc,
		Horizon:      bucket.Key(),
		HorizonLabel: bucket.Label(),
		Stride:       bucket.Stride(),
		Fees:         seriesReport(SeriesFees, proj.TotalFees, bucket),
		Capital:      seriesReport(SeriesCapital, proj.TotalCapital, bucket),
		PerInvestor:  seriesReport(SeriesPerInvestor, proj.PerInvestorCapital, bucket),
	}, nil
}

func seriesReport(name string, series model.Series, bucket horizon.Bucket) model.SeriesReport {
	return model.SeriesReport{
		Name:    name,
		Points:  Aggregate(series, bucket),
		Summary: Summarize(series),
	}
}
