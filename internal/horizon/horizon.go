// Package horizon defines the selectable projection horizons and their display strides.
package horizon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownBucket is returned when a horizon selection matches no bucket.
var ErrUnknownBucket = errors.New("unknown horizon")

// Bucket is a named display granularity. It selects both the number of
// simulated days and the stride used when downsampling for charts.
type Bucket int

// Buckets in selection order.
const (
	Month Bucket = iota
	Quarter
	Year
	ThreeYears
	FiveYears
	Decade
)

type bucketInfo struct {
	key    string
	label  string
	days   int
	stride int
}

// The days and stride columns are defined independently. "year" runs 365 days
// but samples every 30th, giving 13 points; "decade" gives 11. Keep both as is.
var buckets = [...]bucketInfo{
	Month:      {key: "month", label: "30 Tage (Monat)", days: 30, stride: 1},
	Quarter:    {key: "quarter", label: "90 Tage (Quartal)", days: 90, stride: 2},
	Year:       {key: "year", label: "12 Monate (Jahr)", days: 365, stride: 30},
	ThreeYears: {key: "3y", label: "12 Quartale (3 Jahre)", days: 3 * 365, stride: 90},
	FiveYears:  {key: "5y", label: "12 halbe Jahre (5 Jahre)", days: 5 * 365, stride: 180},
	Decade:     {key: "decade", label: "10 Jahre", days: 10 * 365, stride: 365},
}

// All returns every bucket in selection order.
func All() []Bucket {
	all := make([]Bucket, len(buckets))
	for i := range buckets {
		all[i] = Bucket(i)
	}
	return all
}

// Valid reports whether b is a known bucket.
func (b Bucket) Valid() bool {
	return b >= 0 && int(b) < len(buckets)
}

// Key returns the short identifier used by flags, config and the HTTP API.
func (b Bucket) Key() string {
	if !b.Valid() {
		return ""
	}
	return buckets[b].key
}

// Label returns the display label.
func (b Bucket) Label() string {
	if !b.Valid() {
		return ""
	}
	return buckets[b].label
}

// Days returns the number of days simulated for this bucket.
func (b Bucket) Days() int {
	if !b.Valid() {
		return 0
	}
	return buckets[b].days
}

// Stride returns the sampling interval used when aggregating for display.
func (b Bucket) Stride() int {
	if !b.Valid() {
		return 1
	}
	return buckets[b].stride
}

func (b Bucket) String() string {
	if !b.Valid() {
		return "Bucket(" + strconv.Itoa(int(b)) + ")"
	}
	return buckets[b].key
}

// Next returns the following bucket, wrapping around.
func (b Bucket) Next() Bucket {
	return Bucket((int(b) + 1) % len(buckets))
}

// Prev returns the preceding bucket, wrapping around.
func (b Bucket) Prev() Bucket {
	return Bucket((int(b) - 1 + len(buckets)) % len(buckets))
}

// Parse resolves a bucket from its key, its label or its 1-based position.
// Matching is case-insensitive.
func Parse(s string) (Bucket, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, fmt.Errorf("%w: empty selection", ErrUnknownBucket)
	}
	for i, info := range buckets {
		if strings.EqualFold(v, info.key) || strings.EqualFold(v, info.label) {
			return Bucket(i), nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(buckets) {
		return Bucket(n - 1), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBucket, s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bucket) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBucket, int(b))
	}
	return []byte(b.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bucket) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
