package pipeline

import (
	"testing"

	"github.com/theirongolddev/kapital/internal/horizon"
)

func BenchmarkSimulateDecade(b *testing.B) {
	sc := defaultScenario(3650)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Simulate(sc)
	}
}

func BenchmarkAggregate(b *testing.B) {
	series := Simulate(defaultScenario(3650)).TotalCapital

	for _, bucket := range horizon.All() {
		b.Run(bucket.Key(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Aggregate(series, bucket)
			}
		})
	}
}

// BenchmarkRun measures a full request, which is what every parameter
// change in the dashboard or HTTP API pays.
func BenchmarkRun(b *testing.B) {
	sc := defaultScenario(0)
	for _, bucket := range horizon.All() {
		b.Run(bucket.Key(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Run(sc, bucket); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
