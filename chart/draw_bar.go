package chart

import (
	"math"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// BAR CHARTS — Single, grouped and stacked
// ============================================================================
// Every bar grows from y = 0, so the value domain always includes zero and
// negative values extend below the shared baseline. Null values draw nothing,
// which keeps "no data" visibly different from a zero-height bar.
// ============================================================================

// DrawSingleBarChart draws one bar per point.
func DrawSingleBarChart(s *surface.Scene, width, height float64, points []DataPoint, unit Unit, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := checkSize(width, height); err != nil {
		return err
	}
	s.Reset(width, height)

	labels := make([]string, len(points))
	for i, pt := range points {
		labels[i] = pt.Label
	}
	lo, hi, ok := extent(points)
	plot := box{w: width, h: height}
	d0, d1, yt := valueDomain(lo, hi, ok, true, cfg.tickCount(plot.h))
	p := layoutPanel(cfg, plot, labels, d0, d1, yt, unit, bandAxis, 0)

	p.drawYAxis(s, cfg)
	for i, pt := range points {
		v, present := pt.Value.Get()
		if !present {
			continue
		}
		meta := surface.Meta{Class: "bar", Series: pt.Label, Title: pt.Label + ": " + FormatValue(v, unit)}
		s.Add(p.bar(meta, cfg.color(0), p.x.At(i), p.x.bandwidth, 0, v))
	}
	p.drawBaseline(s)
	p.drawXLabels(s, cfg)

	cfg.Log.Debugf("📊 single bar: %d points, domain [%g, %g]", len(points), d0, d1)
	return nil
}

// DrawGroupBarChart draws one category per group and, inside it, one bar per
// point side by side. Bars are colored by point position.
func DrawGroupBarChart(s *surface.Scene, width, height float64, groups []DataGroup, unit Unit, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := checkSize(width, height); err != nil {
		return err
	}
	s.Reset(width, height)

	keys := axisLabels(groups)
	slots, legendH := seriesLegend(keys, width, cfg)
	plot := box{w: width, h: height - legendH}

	lo, hi, ok := groupsExtent(groups)
	d0, d1, yt := valueDomain(lo, hi, ok, true, cfg.tickCount(plot.h))
	p := layoutPanel(cfg, plot, groupLabels(groups), d0, d1, yt, unit, bandAxis, 0)

	p.drawYAxis(s, cfg)
	for i, g := range groups {
		inner := newBand(len(keys), p.x.At(i), p.x.At(i)+p.x.bandwidth, 0.05, 0)
		for j, pt := range g.Value {
			v, present := pt.Value.Get()
			if !present {
				continue
			}
			meta := surface.Meta{
				Class:  "bar",
				Series: pt.Label,
				Title:  g.Label + " " + pt.Label + ": " + FormatValue(v, unit),
			}
			s.Add(p.bar(meta, cfg.color(j), inner.At(j), inner.bandwidth, 0, v))
		}
	}
	p.drawBaseline(s)
	p.drawXLabels(s, cfg)
	drawLegend(s, slots, marginRight, plot.h, false, cfg)

	cfg.Log.Debugf("📊 group bar: %d groups x %d series, domain [%g, %g]", len(groups), len(keys), d0, d1)
	return nil
}

// DrawStackBarChart draws one category per group with its points stacked in
// input order. Positive values stack up from zero and negative values stack
// down from zero, so segment order is the same in every category.
func DrawStackBarChart(s *surface.Scene, width, height float64, groups []DataGroup, unit Unit, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := checkSize(width, height); err != nil {
		return err
	}
	s.Reset(width, height)

	keys := axisLabels(groups)
	slots, legendH := seriesLegend(keys, width, cfg)
	plot := box{w: width, h: height - legendH}

	lo, hi, ok := stackExtent(groups)
	d0, d1, yt := valueDomain(lo, hi, ok, true, cfg.tickCount(plot.h))
	p := layoutPanel(cfg, plot, groupLabels(groups), d0, d1, yt, unit, bandAxis, 0)

	p.drawYAxis(s, cfg)
	for i, g := range groups {
		var pos, neg float64
		for j, pt := range g.Value {
			v, present := pt.Value.Get()
			if !present {
				continue
			}
			from := pos
			if v < 0 {
				from = neg
				neg += v
			} else {
				pos += v
			}
			meta := surface.Meta{
				Class:  "bar",
				Series: pt.Label,
				Title:  g.Label + ", " + pt.Label + ": " + FormatValue(v, unit),
			}
			s.Add(p.bar(meta, cfg.color(j), p.x.At(i), p.x.bandwidth, from, from+v))
		}
	}
	p.drawBaseline(s)
	p.drawXLabels(s, cfg)
	drawLegend(s, slots, marginRight, plot.h, false, cfg)

	cfg.Log.Debugf("📊 stack bar: %d groups x %d series, domain [%g, %g]", len(groups), len(keys), d0, d1)
	return nil
}

// stackExtent is the range of the stacked totals, positive and negative
// separately.
func stackExtent(groups []DataGroup) (lo, hi float64, ok bool) {
	for _, g := range groups {
		var pos, neg float64
		for _, pt := range g.Value {
			v, present := pt.Value.Get()
			if !present || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			ok = true
			if v < 0 {
				neg += v
			} else {
				pos += v
			}
		}
		lo = math.Min(lo, neg)
		hi = math.Max(hi, pos)
	}
	return lo, hi, ok
}

func groupLabels(groups []DataGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Label
	}
	return out
}

// seriesLegend lays out a color legend for multi-series bar charts.
func seriesLegend(keys []string, width float64, cfg *config) ([]legendSlot, float64) {
	if len(keys) < 2 {
		return nil, 0
	}
	items := make([]legendItem, len(keys))
	for i, k := range keys {
		items[i] = legendItem{label: k, series: k, style: Style{Color: cfg.color(i)}}
	}
	return layoutLegend(items, width-2*marginRight, cfg)
}
