package horizon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTables(t *testing.T) {
	tests := []struct {
		bucket Bucket
		key    string
		label  string
		days   int
		stride int
	}{
		{Month, "month", "30 Tage (Monat)", 30, 1},
		{Quarter, "quarter", "90 Tage (Quartal)", 90, 2},
		{Year, "year", "12 Monate (Jahr)", 365, 30},
		{ThreeYears, "3y", "12 Quartale (3 Jahre)", 1095, 90},
		{FiveYears, "5y", "12 halbe Jahre (5 Jahre)", 1825, 180},
		{Decade, "decade", "10 Jahre", 3650, 365},
	}

	require.Len(t, All(), len(tests))
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.bucket.Key())
			assert.Equal(t, tt.label, tt.bucket.Label())
			assert.Equal(t, tt.days, tt.bucket.Days())
			assert.Equal(t, tt.stride, tt.bucket.Stride())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Bucket
	}{
		{"month", Month},
		{"QUARTER", Quarter},
		{" year ", Year},
		{"12 Quartale (3 Jahre)", ThreeYears},
		{"12 halbe jahre (5 jahre)", FiveYears},
		{"6", Decade},
		{"1", Month},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "weekly", "0", "7", "-1"} {
		_, err := Parse(in)
		require.Error(t, err, "Parse(%q)", in)
		assert.True(t, errors.Is(err, ErrUnknownBucket), "Parse(%q) error = %v", in, err)
	}
}

func TestNextPrevWrap(t *testing.T) {
	assert.Equal(t, Month, Decade.Next())
	assert.Equal(t, Decade, Month.Prev())
	assert.Equal(t, Year, Quarter.Next())
}

func TestInvalidBucket(t *testing.T) {
	b := Bucket(42)
	assert.False(t, b.Valid())
	assert.Equal(t, 0, b.Days())
	assert.Equal(t, 1, b.Stride())
	assert.Equal(t, "Bucket(42)", b.String())

	_, err := b.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownBucket)
}
