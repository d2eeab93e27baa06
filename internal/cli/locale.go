package cli

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured. Amounts are shown in
// euros with German separators, e.g. "1.234,50 €".
var DefaultLocale = language.German

// CurrencySymbol is appended to money amounts.
const CurrencySymbol = "€"

// ParseLocale resolves a BCP 47 tag such as "de-DE" or "en". An empty string
// yields DefaultLocale.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale, nil
	}
	// Accept POSIX style names like de_DE.UTF-8.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", s, err)
	}
	return tag, nil
}

// FormatDecimal formats v with exactly two fraction digits and the locale's
// grouping and decimal separators.
func FormatDecimal(v float64, tag language.Tag) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatInt formats a whole number with the locale's grouping separator,
// e.g. "1.095" for German.
func FormatInt(n int, tag language.Tag) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(n))
}

// FormatMoney formats an amount in the configured currency.
func FormatMoney(v float64, tag language.Tag) string {
	return FormatDecimal(v, tag) + " " + CurrencySymbol
}

// FormatSignedMoney formats a profit/loss figure with an explicit sign.
func FormatSignedMoney(v float64, tag language.Tag) string {
	if math.IsNaN(v) {
		return FormatMoney(v, tag)
	}
	if v >= 0 {
		return "+" + FormatMoney(v, tag)
	}
	return "-" + FormatMoney(-v, tag)
}

// FormatGrowth formats a growth percentage, e.g. "12,34 %" for German.
func FormatGrowth(pct float64, tag language.Tag) string {
	return FormatDecimal(pct, tag) + " %"
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}
