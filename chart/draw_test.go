package chart

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// DRAWING ROUTINE TESTS — geometry asserted on the retained scene
// ============================================================================

func scenarioBGroups() []DataGroup {
	return []DataGroup{
		{Label: "Staten Island, NY", Value: []DataPoint{MissingPoint("2011"), NewDataPoint("2012", 26000), NewDataPoint("2013", 24000)}},
		{Label: "Queens, NY", Value: []DataPoint{NewDataPoint("2011", 1000), MissingPoint("2012"), NewDataPoint("2013", 22000)}},
		{Label: "New York, NY", Value: []DataPoint{NewDataPoint("2011", -10000), NewDataPoint("2012", 5000), MissingPoint("2013")}},
	}
}

func rects(els []surface.Element) []surface.Rect {
	out := make([]surface.Rect, 0, len(els))
	for _, el := range els {
		out = append(out, el.(surface.Rect))
	}
	return out
}

func baselineY(t *testing.T, sc surface.Scene) float64 {
	t.Helper()
	lines := sc.ByClass("baseline")
	require.Len(t, lines, 1)
	return lines[0].(surface.Line).Y1
}

func TestScenarioASingleBar(t *testing.T) {
	var sc surface.Scene
	require.NoError(t, DrawSingleBarChart(&sc, 350, 300, scenarioAPoints(), UnitNone))

	bars := rects(sc.ByClass("bar"))
	require.Len(t, bars, 4)
	base := baselineY(t, sc)

	for i, b := range bars {
		assert.InDelta(t, base, b.Y+b.H, 1e-6, "bar %d grows from the baseline", i)
		assert.Greater(t, b.H, 0.0)
		if i > 0 {
			assert.Greater(t, b.X, bars[i-1].X, "input order kept left to right")
			assert.Greater(t, b.H, bars[i-1].H)
		}
	}
	assert.Equal(t, "San Jose", bars[0].Series)
	assert.Equal(t, "United States", bars[3].Series)

	// ticks are compact and start at zero
	ticks := sc.ByClass("y-tick")
	require.NotEmpty(t, ticks)
	assert.Equal(t, []string{"0"}, ticks[0].(surface.Text).Lines)
	assert.Equal(t, []string{"10M"}, ticks[len(ticks)-1].(surface.Text).Lines)
}

func TestBarsNegativeSharedBaseline(t *testing.T) {
	groups := []DataGroup{
		{Label: "Staten Island, NY", Value: []DataPoint{NewDataPoint("2011", -10000), MissingPoint("2012"), NewDataPoint("2013", -30000)}},
		{Label: "Queens, NY", Value: []DataPoint{MissingPoint("2011"), NewDataPoint("2012", 26000), NewDataPoint("2013", 24000)}},
		{Label: "New York, NY", Value: []DataPoint{MissingPoint("2011"), NewDataPoint("2012", -25000), NewDataPoint("2013", 22000)}},
	}
	draws := map[string]func(*surface.Scene) error{
		"group": func(s *surface.Scene) error { return DrawGroupBarChart(s, 350, 300, groups, UnitDollar) },
		"stack": func(s *surface.Scene) error { return DrawStackBarChart(s, 350, 300, groups, UnitDollar) },
	}
	for name, draw := range draws {
		t.Run(name, func(t *testing.T) {
			var sc surface.Scene
			require.NoError(t, draw(&sc))
			base := baselineY(t, sc)

			bars := rects(sc.ByClass("bar"))
			// 9 observations, 3 nulls
			require.Len(t, bars, 6)
			var below int
			for _, b := range bars {
				assert.GreaterOrEqual(t, b.Y, 0.0)
				assert.LessOrEqual(t, b.Y+b.H, sc.Height)
				if b.Y >= base-1e-6 {
					below++
				}
			}
			assert.Equal(t, 3, below, "negative bars extend below the baseline")
		})
	}
}

func TestStackBarSegmentsInInputOrder(t *testing.T) {
	groups := []DataGroup{
		{Label: "A", Value: []DataPoint{NewDataPoint("x", 10), NewDataPoint("y", 20), NewDataPoint("z", -5)}},
	}
	var sc surface.Scene
	require.NoError(t, DrawStackBarChart(&sc, 300, 300, groups, UnitNone))

	bars := rects(sc.ByClass("bar"))
	require.Len(t, bars, 3)
	base := baselineY(t, sc)
	// x sits on the baseline, y on top of x, z below the baseline
	assert.InDelta(t, base, bars[0].Y+bars[0].H, 1e-6)
	assert.InDelta(t, bars[0].Y, bars[1].Y+bars[1].H, 1e-6)
	assert.InDelta(t, base, bars[2].Y, 1e-6)
	assert.NotEqual(t, bars[0].Fill, bars[1].Fill)
}

func TestGroupBarCategoriesAreGroups(t *testing.T) {
	var sc surface.Scene
	require.NoError(t, DrawGroupBarChart(&sc, 400, 300, scenarioBGroups(), UnitNone))

	assert.Len(t, sc.ByClass("x-tick"), 3)
	// one legend row per point label
	assert.Len(t, sc.ByClass("legend"), 3)
	colors := map[string]string{}
	for _, b := range rects(sc.ByClass("bar")) {
		if c, ok := colors[b.Series]; ok {
			assert.Equal(t, c, b.Fill, "series %s keeps its color", b.Series)
		}
		colors[b.Series] = b.Fill
	}
	assert.Len(t, colors, 3)
}

func TestScenarioBLineGaps(t *testing.T) {
	groups := scenarioBGroups()
	var sc surface.Scene
	require.NoError(t, DrawLineChart(&sc, 350, 300, groups, UnitNone))

	xticks := sc.ByClass("x-tick")
	require.Len(t, xticks, 3)
	tickX := make([]float64, len(xticks))
	for i, el := range xticks {
		tickX[i] = el.(surface.Text).X
	}

	colors := map[string]bool{}
	for _, g := range groups {
		dots := sc.BySeries("dot", g.Label)
		assert.Len(t, dots, 2, "%s has two present points", g.Label)
		colors[dots[0].(surface.Circle).Fill] = true

		nullIdx := -1
		for i, p := range g.Value {
			if p.Value.IsNull() {
				nullIdx = i
			}
		}
		for _, el := range sc.BySeries("line", g.Label) {
			pl := el.(surface.Polyline)
			for _, pt := range pl.Points {
				assert.NotEqual(t, tickX[nullIdx], pt.X, "%s draws through its null", g.Label)
			}
			// consecutive points are neighbouring ticks: no segment jumps a gap
			for i := 1; i < len(pl.Points); i++ {
				a := sort.SearchFloat64s(tickX, pl.Points[i-1].X)
				b := sort.SearchFloat64s(tickX, pl.Points[i].X)
				assert.Equal(t, 1, b-a)
			}
		}
	}
	assert.Len(t, colors, 3, "three distinct line colors")

	// null at an end leaves one run; null in the middle leaves two isolated points
	assert.Len(t, sc.BySeries("line", "Staten Island, NY"), 1)
	assert.Len(t, sc.BySeries("line", "Queens, NY"), 0)
	assert.Len(t, sc.BySeries("line", "New York, NY"), 1)
}

func TestLineChartDoesNotForceZero(t *testing.T) {
	groups := []DataGroup{{Label: "label-1", Value: []DataPoint{NewDataPoint("01-01-2011", 7), NewDataPoint("01-02-2011", 10)}}}
	var sc surface.Scene
	require.NoError(t, DrawLineChart(&sc, 315, 300, groups, UnitNone))

	ticks := sc.ByClass("y-tick")
	require.NotEmpty(t, ticks)
	assert.Equal(t, []string{"7"}, ticks[0].(surface.Text).Lines)
	assert.Empty(t, sc.ByClass("legend"), "single series has no legend")
}

func TestSmallValueTicksStayDistinct(t *testing.T) {
	tests := []struct {
		name string
		lo   float64
		hi   float64
		unit Unit
	}{
		{"thousandths", 0.001, 0.004, UnitNone},
		{"ten-thousandths percent", 0.0012, 0.0013, UnitPercent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := []DataGroup{{Label: "a", Value: []DataPoint{NewDataPoint("x", tt.lo), NewDataPoint("y", tt.hi)}}}
			var sc surface.Scene
			require.NoError(t, DrawLineChart(&sc, 315, 300, groups, tt.unit))

			ticks := sc.ByClass("y-tick")
			require.Greater(t, len(ticks), 1)
			seen := map[string]bool{}
			for _, el := range ticks {
				label := el.(surface.Text).Lines[0]
				assert.False(t, seen[label], "duplicate tick label %q", label)
				seen[label] = true
			}
		})
	}
}

func TestScenarioCGroupLineSharesStyles(t *testing.T) {
	years := []string{"2011", "2012", "2013", "2014"}
	series := func(label string, vals ...float64) DataGroup {
		g := DataGroup{Label: label}
		for i, v := range vals {
			g.Value = append(g.Value, NewDataPoint(years[i], v))
		}
		return g
	}
	data := GroupsByEntity{
		{Entity: "Nevada", Groups: []DataGroup{
			series("Total", 2940667, 1952164, -1959400, 1967392),
			series("Male", 1421287, 1431252, 1439862, 1447235),
		}},
		{Entity: "California", Groups: []DataGroup{
			series("Total", 37638369, -37948800, 38260787, 38596972),
			series("Male", 18387718, 18561020, 18726468, 18911519),
		}},
	}
	params := ComputePlotParams([]string{"Nevada", "California"}, []string{"Total", "Male"})
	titles := map[string]string{"Total": "Total", "Male": "Male"}

	var sc surface.Scene
	require.NoError(t, DrawGroupLineChart(&sc, 450, 300, data, titles, &params, UnitNone))

	assert.Len(t, sc.ByClass("subchart-title"), 2)

	stroke := func(entity, variable string) string {
		lines := sc.BySeries("line", PairKey(entity, variable))
		require.Len(t, lines, 1)
		return lines[0].(surface.Polyline).Stroke
	}
	assert.Equal(t, stroke("Nevada", "Total"), stroke("California", "Total"))
	assert.Equal(t, stroke("Nevada", "Male"), stroke("California", "Male"))
	assert.NotEqual(t, stroke("Nevada", "Total"), stroke("Nevada", "Male"))

	// both sub-charts sit side by side and share one y scale
	titlesEls := sc.ByClass("subchart-title")
	assert.Less(t, titlesEls[0].(surface.Text).X, titlesEls[1].(surface.Text).X)
	ticks := sc.ByClass("y-tick")
	require.Equal(t, 0, len(ticks)%2)
	half := len(ticks) / 2
	for i := 0; i < half; i++ {
		a, b := ticks[i].(surface.Text), ticks[half+i].(surface.Text)
		assert.Equal(t, a.Lines, b.Lines)
		assert.InDelta(t, a.Y, b.Y, 1e-6)
	}

	assert.Len(t, sc.ByClass("legend"), 2)
}

func TestGroupLineComputesMissingParams(t *testing.T) {
	data := GroupsByEntity{
		{Entity: "very very very long place name", Groups: []DataGroup{{Label: "Total", Value: []DataPoint{NewDataPoint("2011", 1), NewDataPoint("2012", 2)}}}},
		{Entity: "such a long name that it needs to span 4 lines", Groups: []DataGroup{{Label: "Total", Value: []DataPoint{NewDataPoint("2011", 3), NewDataPoint("2012", 4)}}}},
	}
	var sc surface.Scene
	require.NoError(t, DrawGroupLineChart(&sc, 450, 300, data, nil, nil, UnitNone))

	a := sc.BySeries("line", PairKey(data[0].Entity, "Total"))
	b := sc.BySeries("line", PairKey(data[1].Entity, "Total"))
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	// single variable: entities get distinct colors
	assert.NotEqual(t, a[0].(surface.Polyline).Stroke, b[0].(surface.Polyline).Stroke)

	title := sc.BySeries("subchart-title", data[1].Entity)
	require.Len(t, title, 1)
	assert.Greater(t, len(title[0].(surface.Text).Lines), 1, "long entity names wrap")
}

func TestGroupLineGridWrapsOnNarrowWidth(t *testing.T) {
	mk := func(e string) EntitySeries {
		return EntitySeries{Entity: e, Groups: []DataGroup{{Label: "v", Value: []DataPoint{NewDataPoint("a", 1), NewDataPoint("b", 2)}}}}
	}
	data := GroupsByEntity{mk("one"), mk("two"), mk("three")}
	var sc surface.Scene
	require.NoError(t, DrawGroupLineChart(&sc, 330, 400, data, nil, nil, UnitNone))

	titles := sc.ByClass("subchart-title")
	require.Len(t, titles, 3)
	t0, t1, t2 := titles[0].(surface.Text), titles[1].(surface.Text), titles[2].(surface.Text)
	assert.InDelta(t, t0.Y, t1.Y, 1e-6, "first row")
	assert.Greater(t, t2.Y, t0.Y, "third sub-chart wraps to a second row")
	assert.InDelta(t, t0.X, t2.X, 1e-6)
}

func TestLabelsWrapInsteadOfShrinking(t *testing.T) {
	groups := []DataGroup{
		{Label: "スタテンアイランド, ニューヨーク州, アメリカ合衆国", Value: []DataPoint{NewDataPoint("2011", -10), MissingPoint("2012"), NewDataPoint("2013", -30)}},
		{Label: "クイーンズ区, ニューヨーク州", Value: []DataPoint{MissingPoint("2011"), NewDataPoint("2012", 2.6), NewDataPoint("2013", 24)}},
		{Label: "マンハッタン, ニューヨーク州", Value: []DataPoint{MissingPoint("2011"), NewDataPoint("2012", -25), NewDataPoint("2013", 22)}},
		{Label: "アメリカ合衆国", Value: []DataPoint{NewDataPoint("2011", 23.6), NewDataPoint("2012", 24), MissingPoint("2013")}},
	}
	var sc surface.Scene
	require.NoError(t, DrawGroupBarChart(&sc, 315, 300, groups, UnitPercent, WithFontSize(6)))

	for _, el := range sc.ByClass("x-tick") {
		txt := el.(surface.Text)
		assert.Equal(t, float64(MinFontSize), txt.FontSize)
	}
	first := sc.ByClass("x-tick")[0].(surface.Text)
	assert.Greater(t, len(first.Lines), 1)

	for _, el := range sc.ByClass("y-tick") {
		lines := el.(surface.Text).Lines
		assert.Contains(t, lines[0], "%")
	}
}

func TestHistogramBins(t *testing.T) {
	assert.Equal(t, 1, sturges(1))
	assert.Equal(t, 3, sturges(4))
	assert.Equal(t, 6, sturges(20))

	bins := binValues([]float64{20.2, -22.4, 23, 25.9})
	require.Len(t, bins, 4)
	assert.Equal(t, -40.0, bins[0].lo)
	assert.Equal(t, 40.0, bins[3].hi)
	counts := []int{bins[0].count, bins[1].count, bins[2].count, bins[3].count}
	assert.Equal(t, []int{1, 0, 0, 3}, counts)
}

func TestHistogramCountsEveryValue(t *testing.T) {
	var pts []DataPoint
	for i := 0; i < 30; i++ {
		pts = append(pts, NewDataPoint("", math.Sin(float64(i))*100))
	}
	pts = append(pts, MissingPoint("gap"))

	var sc surface.Scene
	require.NoError(t, DrawHistogram(&sc, 450, 300, pts, UnitNone))

	bins := binValues(presentValues(pts))
	total := 0
	for _, b := range bins {
		total += b.count
	}
	assert.Equal(t, 30, total)
	assert.LessOrEqual(t, len(bins), 12)
	assert.NotEmpty(t, sc.ByClass("bar"))
	assert.Len(t, sc.ByClass("x-tick"), len(bins)+1)
}

func TestDrawRejectsBadSize(t *testing.T) {
	var sc surface.Scene
	assert.ErrorIs(t, DrawLineChart(&sc, 0, 100, nil, UnitNone), ErrInvalidWidth)
	assert.ErrorIs(t, DrawHistogram(&sc, math.NaN(), 100, nil, UnitNone), ErrInvalidWidth)
	assert.ErrorIs(t, DrawSingleBarChart(&sc, 100, -1, nil, UnitNone), ErrInvalidHeight)
}
