package chart

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ============================================================================
// NUMBER FORMATTING — Axis ticks and hover values per unit
// ============================================================================

var printer = message.NewPrinter(language.English)

var siSuffix = map[string]string{
	"k": "K",
	"M": "M",
	"G": "B",
	"T": "T",
	"P": "P",
}

// FormatTick renders an axis tick. Without a unit large magnitudes are
// abbreviated (12K, 2.5M, 3B) so neighbouring ticks don't collide.
func FormatTick(v float64, unit Unit) string {
	return formatTick(v, unit, minDigits)
}

// FormatTicks renders a tick sequence with enough fraction digits to keep
// neighbouring ticks apart.
func FormatTicks(ticks []float64, unit Unit) []string {
	digits := tickDigits(ticks)
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = formatTick(t, unit, digits)
	}
	return out
}

const minDigits = 2

// tickDigits is the fraction precision of the smallest step in ticks.
func tickDigits(ticks []float64) int {
	step := math.Inf(1)
	for i := 1; i < len(ticks); i++ {
		if d := math.Abs(ticks[i] - ticks[i-1]); d > 0 && d < step {
			step = d
		}
	}
	if math.IsInf(step, 0) {
		return minDigits
	}
	digits := int(-math.Floor(math.Log10(step) + 1e-9))
	if digits < minDigits {
		return minDigits
	}
	return digits
}

func formatTick(v float64, unit Unit, digits int) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	switch unit {
	case UnitPercent:
		return trimFloat(v, digits) + "%"
	case UnitDollar:
		if v < 0 {
			return "-$" + compact(-v, digits)
		}
		return "$" + compact(v, digits)
	default:
		return compact(v, digits)
	}
}

// FormatValue renders a full-precision value with grouped thousands, for
// hover titles.
func FormatValue(v float64, unit Unit) string {
	if v == 0 {
		v = 0
	}
	switch unit {
	case UnitPercent:
		return grouped(v) + "%"
	case UnitDollar:
		if v < 0 {
			return "-$" + grouped(-v)
		}
		return "$" + grouped(v)
	default:
		return grouped(v)
	}
}

// FormatOptional renders a value or "N/A" when it is absent.
func FormatOptional(v Value, unit Unit) string {
	f, ok := v.Get()
	if !ok {
		return "N/A"
	}
	return FormatValue(f, unit)
}

// compact abbreviates |v| >= 1000 with an SI suffix. digits applies below
// that; scaled mantissas keep two.
func compact(v float64, digits int) string {
	if math.Abs(v) < 1000 {
		return trimFloat(v, digits)
	}
	scaled, prefix := humanize.ComputeSI(v)
	suffix, ok := siSuffix[prefix]
	if !ok {
		return trimFloat(v, minDigits)
	}
	return trimFloat(scaled, minDigits) + suffix
}

func trimFloat(v float64, digits int) string {
	s := humanize.FtoaWithDigits(v, digits)
	if s == "-0" {
		return "0"
	}
	return s
}

func grouped(v float64) string {
	s := printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
	return strings.TrimSpace(s)
}
