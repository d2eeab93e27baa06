package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
)

func rampSeries(n int) model.Series {
	s := make(model.Series, n)
	for i := range s {
		s[i] = float64(i) * 1.5
	}
	return s
}

func TestAggregate_MonthReturnsSeriesUnchanged(t *testing.T) {
	series := rampSeries(31)
	points := Aggregate(series, horizon.Month)

	require.Len(t, points, len(series))
	for i, p := range points {
		assert.Equal(t, i, p.Day)
		assert.Equal(t, series[i], p.Value)
	}
}

func TestAggregate_Stride90KeepsOriginalIndices(t *testing.T) {
	series := rampSeries(91)
	points := Aggregate(series, horizon.ThreeYears)

	require.Len(t, points, 2)
	assert.Equal(t, []int{0, 90}, Days(points))
	assert.Equal(t, []float64{series[0], series[90]}, Values(points))
}

func TestAggregate_LengthIsCeilOfLenOverStride(t *testing.T) {
	for _, b := range horizon.All() {
		for _, n := range []int{1, 2, 30, 31, 91, 366, 1096, 1826, 3651} {
			points := Aggregate(rampSeries(n), b)
			want := int(math.Ceil(float64(n) / float64(b.Stride())))
			assert.Len(t, points, want, "bucket=%s len=%d", b, n)
		}
	}
}

func TestAggregate_PointCountsForBucketHorizons(t *testing.T) {
	// Each bucket's own horizon yields these counts; year and decade are one
	// more than their names suggest.
	want := map[horizon.Bucket]int{
		horizon.Month:      31,
		horizon.Quarter:    46,
		horizon.Year:       13,
		horizon.ThreeYears: 13,
		horizon.FiveYears:  11,
		horizon.Decade:     11,
	}
	for b, n := range want {
		proj := Simulate(model.Scenario{StartingInvestors: 1, StartingCapital: 1, HorizonDays: b.Days()})
		assert.Len(t, Aggregate(proj.TotalCapital, b), n, "bucket=%s", b)
	}
}

func TestAggregate_StrideIndependentOfSeriesLength(t *testing.T) {
	// A 30-day series viewed with the decade stride still only yields day 0.
	points := Aggregate(rampSeries(31), horizon.Decade)
	require.Len(t, points, 1)
	assert.Equal(t, 0, points[0].Day)
}

func TestAggregate_ValuesAreExactSamples(t *testing.T) {
	proj := Simulate(defaultScenario(365))
	for _, p := range Aggregate(proj.TotalFees, horizon.Year) {
		assert.Equal(t, proj.TotalFees[p.Day], p.Value)
	}
}

func TestAggregateStride_EdgeCases(t *testing.T) {
	assert.Nil(t, AggregateStride(nil, 5))
	assert.Len(t, AggregateStride(rampSeries(4), 0), 4)
	assert.Len(t, AggregateStride(rampSeries(4), -3), 4)
	assert.Len(t, AggregateStride(rampSeries(4), 100), 1)
}
