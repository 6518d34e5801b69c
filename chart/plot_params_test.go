package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// PLOT PARAMS TESTS
// ============================================================================

func TestComputePlotParamsDeterministic(t *testing.T) {
	places := []string{"geoId/06", "geoId/32", "country/USA"}
	vars := []string{"Count_Person", "Count_Person_Male"}

	a := ComputePlotParams(places, vars)
	b := ComputePlotParams(places, vars)
	assert.Equal(t, a, b)
}

func TestComputePlotParamsPairCoverage(t *testing.T) {
	tests := []struct {
		name     string
		entities []string
		vars     []string
	}{
		{"2x2", []string{"Nevada", "California"}, []string{"Total", "Male"}},
		{"3x4", []string{"a", "b", "c"}, []string{"w", "x", "y", "z"}},
		{"12x2 overflows palette", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}, []string{"u", "v"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePlotParams(tt.entities, tt.vars)
			assert.Len(t, p.Lines, len(tt.entities)*len(tt.vars))
			assert.Len(t, p.Legend, len(p.Lines))
			for _, e := range tt.entities {
				for _, v := range tt.vars {
					_, ok := p.Lines[PairKey(e, v)]
					assert.True(t, ok, "missing pair %s/%s", e, v)
				}
			}
		})
	}
}

func TestComputePlotParamsLegendOrder(t *testing.T) {
	p := ComputePlotParams([]string{"Nevada", "California"}, []string{"Total", "Male"})
	require.Len(t, p.Legend, 4)
	got := make([]string, 0, 4)
	for _, le := range p.Legend {
		got = append(got, PairKey(le.Entity, le.Variable))
	}
	assert.Equal(t, []string{"Nevada|Total", "Nevada|Male", "California|Total", "California|Male"}, got)
}

func TestComputePlotParamsProductKeysColorByVariable(t *testing.T) {
	p := ComputePlotParams([]string{"Nevada", "California"}, []string{"Total", "Male"})

	assert.Equal(t, p.Style("Nevada", "Total").Color, p.Style("California", "Total").Color)
	assert.NotEqual(t, p.Style("Nevada", "Total").Color, p.Style("Nevada", "Male").Color)
	assert.NotEqual(t, p.Style("Nevada", "Total").Dash, p.Style("California", "Total").Dash)
}

func TestComputePlotParamsOneDimensional(t *testing.T) {
	single := ComputePlotParams([]string{"California"}, []string{"Total", "Male"})
	assert.Equal(t, Category10[0], single.Style("California", "Total").Color)
	assert.Equal(t, Category10[1], single.Style("California", "Male").Color)
	assert.Empty(t, single.Style("California", "Male").Dash)

	byEntity := ComputePlotParams([]string{"a", "b"}, []string{"Total"})
	assert.Equal(t, Category10[0], byEntity.Style("a", "Total").Color)
	assert.Equal(t, Category10[1], byEntity.Style("b", "Total").Color)
}

func TestComputePlotParamsCycles(t *testing.T) {
	entities := make([]string, 11)
	for i := range entities {
		entities[i] = string(rune('a' + i))
	}
	p := ComputePlotParams(entities, []string{"v"})
	assert.Equal(t, p.Style("a", "v"), p.Style("k", "v"))
}

func TestComputePlotParamsEmpty(t *testing.T) {
	for _, p := range []PlotParams{
		ComputePlotParams(nil, []string{"v"}),
		ComputePlotParams([]string{"e"}, nil),
	} {
		assert.True(t, p.Empty())
		assert.Empty(t, p.Legend)
		assert.Equal(t, DefaultStyle, p.Style("e", "v"))
	}
}

func TestComputePlotParamsOptions(t *testing.T) {
	p := ComputePlotParams([]string{"a", "b"}, []string{"x", "y"},
		WithParamsPalette([]string{"#000000"}),
		WithParamsDashes([]string{"1, 1", "3, 3"}))
	assert.Equal(t, Style{Color: "#000000", Dash: "1, 1"}, p.Style("a", "y"))
	assert.Equal(t, Style{Color: "#000000", Dash: "3, 3"}, p.Style("b", "x"))
}

func TestPlotParamsJSON(t *testing.T) {
	p := ComputePlotParams([]string{"a", "b"}, []string{"x"})
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var back PlotParams
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, p, back)
}
