package chart

// ============================================================================
// PAYLOAD — Closed set of kind-specific chart inputs
// ============================================================================
// Each variant carries only the fields valid for its kind. Mount dispatches
// with one type switch over these; anything else is a caller fault.
// ============================================================================

// Payload is the data for exactly one chart kind.
type Payload interface {
	Kind() Kind
	isPayload()
}

// LineData draws one line per group.
type LineData struct {
	Groups []DataGroup
}

// SingleBarData draws one bar per point.
type SingleBarData struct {
	Points []DataPoint
}

// GroupBarData draws side-by-side bars per group.
type GroupBarData struct {
	Groups []DataGroup
}

// StackBarData draws stacked bars per group.
type StackBarData struct {
	Groups []DataGroup
}

// GroupLineData draws one line sub-chart per entity. Titles maps variable ids
// to display names. A nil Params is computed from the data.
type GroupLineData struct {
	Groups GroupsByEntity
	Titles map[string]string
	Params *PlotParams
}

// HistogramData bins the values of the points.
type HistogramData struct {
	Points []DataPoint
}

func (LineData) Kind() Kind      { return KindLine }
func (SingleBarData) Kind() Kind { return KindSingleBar }
func (GroupBarData) Kind() Kind  { return KindGroupBar }
func (StackBarData) Kind() Kind  { return KindStackBar }
func (GroupLineData) Kind() Kind { return KindGroupLine }
func (HistogramData) Kind() Kind { return KindHistogram }

func (LineData) isPayload()      {}
func (SingleBarData) isPayload() {}
func (GroupBarData) isPayload()  {}
func (StackBarData) isPayload()  {}
func (GroupLineData) isPayload() {}
func (HistogramData) isPayload() {}

// Spec is a validated chart mount request.
type Spec struct {
	ID      string
	Width   float64
	Height  float64
	Unit    Unit
	Payload Payload
}

// Kind is the kind of the payload, or KindUnknown without one.
func (s Spec) Kind() Kind {
	if s.Payload == nil {
		return KindUnknown
	}
	return s.Payload.Kind()
}
