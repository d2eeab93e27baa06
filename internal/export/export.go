// Package export writes projection reports in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/kapital/internal/model"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// ErrUnknownFormat is returned for formats other than json, yaml and csv.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "csv":
		return CSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes rep to w.
//
// JSON encodes non-finite values as null. YAML uses .inf and .nan.
// CSV has one row per aggregated point with the columns
// day, total_capital, total_fees, per_investor_capital.
func Write(w io.Writer, rep model.Report, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case CSV:
		return writeCSV(w, rep)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func writeCSV(w io.Writer, rep model.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "total_capital", "total_fees", "per_investor_capital"}); err != nil {
		return err
	}
	for i, p := range rep.Capital.Points {
		row := []string{
			strconv.Itoa(p.Day),
			formatFloat(p.Value),
			formatFloat(valueAt(rep.Fees.Points, i)),
			formatFloat(valueAt(rep.PerInvestor.Points, i)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func valueAt(points []model.Point, i int) float64 {
	if i < len(points) {
		return points[i].Value
	}
	return 0
}

// formatFloat writes the shortest exact representation; Inf and NaN come out
// as "+Inf", "-Inf" and "NaN".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
