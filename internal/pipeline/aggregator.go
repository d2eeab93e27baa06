package pipeline

import (
	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
)

// Aggregate downsamples a daily series for display using the bucket's stride.
// The stride depends only on the bucket, not on the series length.
func Aggregate(series model.Series, bucket horizon.Bucket) []model.Point {
	return AggregateStride(series, bucket.Stride())
}

// AggregateStride returns every nth element starting at index 0, keeping the
// original day index on each point. No interpolation or averaging is done.
// A stride below 1 is treated as 1.
func AggregateStride(series model.Series, n int) []model.Point {
	if n < 1 {
		n = 1
	}
	if len(series) == 0 {
		return nil
	}

	points := make([]model.Point, 0, (len(series)+n-1)/n)
	for i := 0; i < len(series); i += n {
		points = append(points, model.Point{Day: i, Value: series[i]})
	}
	return points
}

// Values extracts the sample values from aggregated points.
func Values(points []model.Point) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Value
	}
	return vals
}

// Days extracts the day indices from aggregated points.
func Days(points []model.Point) []int {
	days := make([]int, len(points))
	for i, p := range points {
		days[i] = p.Day
	}
	return days
}
