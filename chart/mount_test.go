package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// MOUNT / DISPATCH TESTS
// ============================================================================

func scenarioAPoints() []DataPoint {
	return []DataPoint{
		NewDataPoint("San Jose", 702134),
		NewDataPoint("Santa Clara County", 1002342),
		NewDataPoint("California", 3002342),
		NewDataPoint("United States", 9520234),
	}
}

func TestPropsSpecFaults(t *testing.T) {
	pts := scenarioAPoints()
	groups := []DataGroup{{Label: "g", Value: pts}}
	params := ComputePlotParams([]string{"a"}, []string{"b"})
	dict := GroupsByEntity{{Entity: "e", Groups: groups}}

	tests := []struct {
		name  string
		props Props
		want  error
	}{
		{"unknown kind", Props{Type: "PIE", DataPoints: pts}, ErrUnknownKind},
		{"empty kind", Props{DataPoints: pts}, ErrUnknownKind},
		{"single bar without points", Props{Type: "SINGLE_BAR"}, ErrMissingPayload},
		{"single bar fed groups", Props{Type: "SINGLE_BAR", DataGroups: groups}, ErrMissingPayload},
		{"single bar with extra groups", Props{Type: "SINGLE_BAR", DataPoints: pts, DataGroups: groups}, ErrPayloadMismatch},
		{"histogram without points", Props{Type: "HISTOGRAM", DataGroups: groups}, ErrMissingPayload},
		{"group line without dict", Props{Type: "GROUP_LINE", DataGroups: groups}, ErrMissingPayload},
		{"line with plot params", Props{Type: "LINE", DataGroups: groups, PlotParams: &params}, ErrPayloadMismatch},
		{"bad unit", Props{Type: "LINE", DataGroups: groups, Unit: "€"}, ErrUnknownUnit},
		{"attribute in color", Props{Type: "GROUP_LINE", DataGroupsDict: dict,
			PlotParams: &PlotParams{Lines: map[string]Style{"e|v": {Color: `red" onload="alert(1)`}}}}, ErrInvalidStyle},
		{"style in dash", Props{Type: "GROUP_LINE", DataGroupsDict: dict,
			PlotParams: &PlotParams{Lines: map[string]Style{"e|v": {Color: "red", Dash: "5;stroke:url(#x)"}}}}, ErrInvalidStyle},
		{"bad legend color", Props{Type: "GROUP_LINE", DataGroupsDict: dict,
			PlotParams: &PlotParams{Legend: []LegendEntry{{Entity: "e", Variable: "v", Style: Style{Color: "expression(x)"}}}}}, ErrInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.props.Spec()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPropsSpecVariants(t *testing.T) {
	pts := scenarioAPoints()
	groups := []DataGroup{{Label: "g", Value: pts}}
	dict := GroupsByEntity{{Entity: "e", Groups: groups}}

	tests := []struct {
		props Props
		want  Payload
	}{
		{Props{Type: "LINE", DataGroups: groups}, LineData{Groups: groups}},
		{Props{Type: "SINGLE_BAR", DataPoints: pts}, SingleBarData{Points: pts}},
		{Props{Type: "GROUP_BAR", DataGroups: groups}, GroupBarData{Groups: groups}},
		{Props{Type: "STACK_BAR", DataGroups: groups}, StackBarData{Groups: groups}},
		{Props{Type: "GROUP_LINE", DataGroupsDict: dict}, GroupLineData{Groups: dict}},
		{Props{Type: "HISTOGRAM", DataPoints: pts}, HistogramData{Points: pts}},
	}
	for _, tt := range tests {
		t.Run(tt.props.Type, func(t *testing.T) {
			spec, err := tt.props.Spec()
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Payload)
			assert.Equal(t, tt.props.Type, spec.Kind().String())
		})
	}
}

func TestParsePropsEmptyPointsIsNotMissing(t *testing.T) {
	p, err := ParseProps([]byte(`{"id":"c","width":200,"height":100,"type":"SINGLE_BAR","dataPoints":[]}`))
	require.NoError(t, err)
	_, err = p.Spec()
	assert.NoError(t, err)
}

func TestMountIdempotent(t *testing.T) {
	c := surface.NewContainer("chart-a", 0)
	spec := Spec{ID: "chart-a", Width: 350, Height: 300, Payload: SingleBarData{Points: scenarioAPoints()}}

	require.NoError(t, Mount(c, spec))
	first := c.Scene()
	require.NoError(t, Mount(c, spec))
	second := c.Scene()

	assert.Equal(t, first, second)
	assert.Len(t, second.ByClass("bar"), 4)
}

func TestMountReplacesPreviousKind(t *testing.T) {
	c := surface.NewContainer("chart-a", 0)
	require.NoError(t, Mount(c, Spec{Width: 350, Height: 300, Payload: SingleBarData{Points: scenarioAPoints()}}))
	require.NoError(t, Mount(c, Spec{Width: 350, Height: 300, Payload: LineData{Groups: scenarioBGroups()}}))

	sc := c.Scene()
	assert.Empty(t, sc.ByClass("bar"))
	assert.NotEmpty(t, sc.ByClass("dot"))
}

func TestMountMeasuresContainer(t *testing.T) {
	c := surface.NewContainer("narrow", 300)
	require.NoError(t, Mount(c, Spec{Width: 350, Height: 200, Payload: SingleBarData{Points: scenarioAPoints()}}))
	sc := c.Scene()
	assert.Equal(t, 300.0, sc.Width)
	assert.Equal(t, 200.0, sc.Height)
}

func TestMountInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          error
	}{
		{"zero width", 0, 300, ErrInvalidWidth},
		{"negative width", -10, 300, ErrInvalidWidth},
		{"zero height", 300, 0, ErrInvalidHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := surface.NewContainer("bad", 0)
			require.NoError(t, Mount(c, Spec{Width: 300, Height: 300, Payload: SingleBarData{Points: scenarioAPoints()}}))

			err := Mount(c, Spec{Width: tt.width, Height: tt.height, Payload: SingleBarData{Points: scenarioAPoints()}})
			assert.ErrorIs(t, err, tt.want)

			var me *MountError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, "bad", me.ContainerID)
			assert.Equal(t, KindSingleBar, me.Kind)

			// the container is left cleared and usable
			assert.Equal(t, 0, c.Scene().Len())
			assert.NoError(t, Mount(c, Spec{Width: 300, Height: 300, Payload: SingleBarData{Points: scenarioAPoints()}}))
		})
	}
}

func TestMountMissingPayload(t *testing.T) {
	c := surface.NewContainer("none", 0)
	err := Mount(c, Spec{Width: 300, Height: 300})
	assert.ErrorIs(t, err, ErrMissingPayload)
	assert.Equal(t, 0, c.Scene().Len())
}

func TestMountBusyContainer(t *testing.T) {
	c := surface.NewContainer("busy", 0)
	s, err := c.Acquire()
	require.NoError(t, err)
	defer s.Release()

	err = Mount(c, Spec{Width: 300, Height: 300, Payload: SingleBarData{Points: scenarioAPoints()}})
	assert.ErrorIs(t, err, surface.ErrContainerBusy)
}

func TestMountPropsFault(t *testing.T) {
	c := surface.NewContainer("props", 0)
	err := MountProps(c, Props{Type: "SINGLE_BAR", Width: 300, Height: 300})
	assert.ErrorIs(t, err, ErrMissingPayload)

	var me *MountError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, KindSingleBar, me.Kind)
}

func TestMountRejectsInjectedStyle(t *testing.T) {
	c := surface.NewContainer("styled", 0)
	dict := GroupsByEntity{{Entity: "e", Groups: []DataGroup{{Label: "2020", Value: []DataPoint{NewDataPoint("v", 1)}}}}}
	params := &PlotParams{Lines: map[string]Style{"e|v": {Color: `red" onload="alert(1)`}}}

	err := Mount(c, Spec{Width: 300, Height: 300, Payload: GroupLineData{Groups: dict, Params: params}})
	assert.ErrorIs(t, err, ErrInvalidStyle)
	assert.Equal(t, 0, c.Scene().Len())

	params.Lines["e|v"] = Style{Color: "#d62728", Dash: "5, 5"}
	require.NoError(t, Mount(c, Spec{Width: 300, Height: 300, Payload: GroupLineData{Groups: dict, Params: params}}))
	assert.Positive(t, c.Scene().Len())
}

func TestMountEveryKindOnEmptyData(t *testing.T) {
	payloads := []Payload{
		LineData{},
		SingleBarData{},
		GroupBarData{},
		StackBarData{},
		GroupLineData{},
		HistogramData{},
	}
	for _, p := range payloads {
		t.Run(p.Kind().String(), func(t *testing.T) {
			c := surface.NewContainer("empty", 0)
			require.NoError(t, Mount(c, Spec{Width: 300, Height: 200, Payload: p}))
			sc := c.Scene()
			assert.Empty(t, sc.ByClass("bar"))
			assert.Empty(t, sc.ByClass("line"))
			assert.NotEmpty(t, sc.ByClass("y-tick"), "an empty frame still has axes")
		})
	}
}
