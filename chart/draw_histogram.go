package chart

import (
	"math"
	"sort"
	"strconv"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// HISTOGRAM — Binned distribution of point values
// ============================================================================
// Bin count follows Sturges' rule; thresholds are the nice ticks of the value
// domain so bin edges land on round numbers. Labels of the points are not
// used, only their present values.
// ============================================================================

type bin struct {
	lo, hi float64
	count  int
}

// DrawHistogram draws the distribution of the present values in points.
func DrawHistogram(s *surface.Scene, width, height float64, points []DataPoint, unit Unit, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := checkSize(width, height); err != nil {
		return err
	}
	s.Reset(width, height)

	values := presentValues(points)
	bins := binValues(values)

	maxCount := 0
	for _, b := range bins {
		if b.count > maxCount {
			maxCount = b.count
		}
	}
	plot := box{w: width, h: height}
	d0, d1, yt := valueDomain(0, float64(maxCount), len(bins) > 0, true, cfg.tickCount(plot.h))
	yt = integerTicks(yt)

	// histogram x is a value axis: one edge label per threshold
	edges := binEdges(bins)
	edgeLabels := FormatTicks(edges, unit)
	p := layoutPanel(cfg, plot, nil, d0, d1, yt, UnitNone, bandAxis, 1)

	var x linearScale
	if len(edges) > 1 {
		x = newLinear(edges[0], edges[len(edges)-1], p.left, p.right)
	}

	p.drawYAxis(s, cfg)
	for _, b := range bins {
		if b.count == 0 {
			continue
		}
		x0, x1 := x.At(b.lo)+1, x.At(b.hi)-1
		if x1 < x0 {
			x1 = x0
		}
		meta := surface.Meta{
			Class: "bar",
			Title: FormatValue(b.lo, unit) + " to " + FormatValue(b.hi, unit) + ": " + strconv.Itoa(b.count),
		}
		s.Add(p.bar(meta, cfg.color(0), x0, x1-x0, 0, float64(b.count)))
	}
	p.drawBaseline(s)
	for i, e := range edges {
		s.Add(surface.Text{
			Meta:     surface.Meta{Class: "x-tick"},
			X:        x.At(e),
			Y:        p.bottom + tickPad + cfg.FontSize*0.8,
			Lines:    []string{edgeLabels[i]},
			FontSize: cfg.FontSize,
			Anchor:   surface.AnchorMiddle,
		})
	}

	cfg.Log.Debugf("📊 histogram: %d values in %d bins", len(values), len(bins))
	return nil
}

func presentValues(points []DataPoint) []float64 {
	out := make([]float64, 0, len(points))
	for _, pt := range points {
		if v, ok := pt.Value.Get(); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// sturges is the bin count target for n values.
func sturges(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// binValues sorts values into bins with nice thresholds. The last bin is
// closed on the right so the maximum is counted.
func binValues(values []float64) []bin {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	count := sturges(len(values))
	lo, hi = nice(lo, hi, count)
	edges := ticks(lo, hi, count)
	if len(edges) == 0 || edges[0] > lo {
		edges = append([]float64{lo}, edges...)
	}
	if edges[len(edges)-1] < hi {
		edges = append(edges, hi)
	}
	if len(edges) < 2 {
		edges = []float64{lo, hi}
	}

	bins := make([]bin, len(edges)-1)
	for i := range bins {
		bins[i] = bin{lo: edges[i], hi: edges[i+1]}
	}
	for _, v := range sorted {
		i := sort.SearchFloat64s(edges, v)
		// SearchFloat64s returns the first edge >= v
		if i < len(edges) && edges[i] == v {
			i++
		}
		i--
		if i < 0 {
			i = 0
		}
		if i >= len(bins) {
			i = len(bins) - 1
		}
		bins[i].count++
	}
	return bins
}

func binEdges(bins []bin) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, 0, len(bins)+1)
	for _, b := range bins {
		out = append(out, b.lo)
	}
	return append(out, bins[len(bins)-1].hi)
}

// integerTicks drops fractional ticks from a count axis.
func integerTicks(ts []float64) []float64 {
	out := ts[:0:0]
	for _, t := range ts {
		if t == math.Trunc(t) {
			out = append(out, t)
		}
	}
	return out
}
