package chart

import "github.com/sirupsen/logrus"

// ============================================================================
// CHART OPTIONS — Functional options for Mount() and the Draw* routines
// ============================================================================

// MinFontSize is the legibility floor for axis and category labels. Narrow
// charts wrap into more lines instead of going below it.
const MinFontSize = 10

// Option configures drawing via functional options pattern.
type Option func(*config)

type config struct {
	FontSize  float64
	Palette   []string
	TickCount int // 0 = auto: 5, or 3 on short plots
	Log       *logrus.Entry
}

// WithFontSize sets the label font size. Values under MinFontSize are raised
// to it.
func WithFontSize(px float64) Option {
	return func(c *config) {
		c.FontSize = px
	}
}

// WithPalette sets the colors used for series that are not styled by
// PlotParams.
func WithPalette(colors []string) Option {
	return func(c *config) {
		if len(colors) > 0 {
			c.Palette = colors
		}
	}
}

// WithTickCount fixes the target number of y ticks.
func WithTickCount(n int) Option {
	return func(c *config) {
		c.TickCount = n
	}
}

// WithLogger routes drawing logs to the given entry.
func WithLogger(l *logrus.Entry) Option {
	return func(c *config) {
		c.Log = l
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		FontSize: MinFontSize,
		Palette:  Category10,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.FontSize < MinFontSize {
		cfg.FontSize = MinFontSize
	}
	if cfg.Log == nil {
		cfg.Log = logrus.WithField("component", "chart")
	}
	return cfg
}

func (c *config) color(i int) string {
	return cycle(c.Palette, i)
}

func (c *config) lineHeight() float64 {
	return c.FontSize * 1.1
}
