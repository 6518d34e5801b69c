package helpers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spektr-org/statchart/chart"
)

// ============================================================================
// KIND DETECTION — Pick a chart kind from the x labels of a table
// ============================================================================

var temporalPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`^[A-Z][a-z]{2}-\d{4}$`), "MMM-yyyy"},   // Jan-2026
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "yyyy-MM"},             // 2026-01
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "yyyy-MM-dd"},    // 2026-01-31
	{regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`), "dd-MM-yyyy"},    // 01-02-2011
	{regexp.MustCompile(`^Q[1-4]-\d{4}$`), "QN-yyyy"},            // Q1-2026
	{regexp.MustCompile(`^Q[1-4]\s+\d{4}$`), "QN yyyy"},          // Q1 2026
	{regexp.MustCompile(`^\d{4}$`), "yyyy"},                      // 2026
	{regexp.MustCompile(`^[A-Z][a-z]+ \d{4}$`), "MMMM yyyy"},     // January 2026
}

// DetectTemporal checks if at least 80% of samples match one date, month,
// quarter or year pattern, and returns that pattern.
func DetectTemporal(samples []string) (bool, string) {
	if len(samples) == 0 {
		return false, ""
	}
	for _, pattern := range temporalPatterns {
		matches := 0
		for _, s := range samples {
			if pattern.re.MatchString(strings.TrimSpace(s)) {
				matches++
			}
		}
		if float64(matches)/float64(len(samples)) >= 0.8 {
			return true, pattern.format
		}
	}
	return false, ""
}

// SuggestKind returns LINE for temporal x labels and GROUP_BAR otherwise.
func SuggestKind(xLabels []string) chart.Kind {
	if ok, _ := DetectTemporal(xLabels); ok {
		return chart.KindLine
	}
	return chart.KindGroupBar
}

// isNumeric accepts the same forms as ParseValue.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
