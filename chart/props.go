package chart

import "fmt"

// ============================================================================
// PROPS — Wire form of a chart mount request
// ============================================================================
// Props is what pages and the HTTP API send. Spec() checks that exactly the
// fields relevant to the type are present and converts to the closed Payload
// variant.
// ============================================================================

// Props is the JSON chart contract.
type Props struct {
	ID             string            `json:"id"`
	Width          float64           `json:"width"`
	Height         float64           `json:"height"`
	Type           string            `json:"type"`
	DataPoints     []DataPoint       `json:"dataPoints,omitempty"`
	DataGroups     []DataGroup       `json:"dataGroups,omitempty"`
	DataGroupsDict GroupsByEntity    `json:"dataGroupsDict,omitempty"`
	Unit           string            `json:"unit,omitempty"`
	StatsVarsTitle map[string]string `json:"statsVarsTitle,omitempty"`
	PlotParams     *PlotParams       `json:"plotParams,omitempty"`
}

// ParseProps decodes a JSON props document.
func ParseProps(data []byte) (Props, error) {
	var p Props
	if err := json.Unmarshal(data, &p); err != nil {
		return Props{}, fmt.Errorf("decode chart props: %w", err)
	}
	return p, nil
}

// Spec validates the props against the requested type.
func (p Props) Spec() (Spec, error) {
	kind, err := ParseKind(p.Type)
	if err != nil {
		return Spec{}, err
	}
	unit, err := ParseUnit(p.Unit)
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{ID: p.ID, Width: p.Width, Height: p.Height, Unit: unit}

	var required string
	switch kind {
	case KindLine, KindGroupBar, KindStackBar:
		required = "dataGroups"
	case KindSingleBar, KindHistogram:
		required = "dataPoints"
	case KindGroupLine:
		required = "dataGroupsDict"
	}
	if err := p.checkFields(kind, required); err != nil {
		return Spec{}, err
	}
	if p.PlotParams != nil {
		if err := p.PlotParams.Validate(); err != nil {
			return Spec{}, err
		}
	}

	switch kind {
	case KindLine:
		spec.Payload = LineData{Groups: p.DataGroups}
	case KindSingleBar:
		spec.Payload = SingleBarData{Points: p.DataPoints}
	case KindGroupBar:
		spec.Payload = GroupBarData{Groups: p.DataGroups}
	case KindStackBar:
		spec.Payload = StackBarData{Groups: p.DataGroups}
	case KindGroupLine:
		spec.Payload = GroupLineData{Groups: p.DataGroupsDict, Titles: p.StatsVarsTitle, Params: p.PlotParams}
	case KindHistogram:
		spec.Payload = HistogramData{Points: p.DataPoints}
	}
	return spec, nil
}

// checkFields requires the named payload field and rejects the others.
func (p Props) checkFields(kind Kind, required string) error {
	present := map[string]bool{
		"dataPoints":     p.DataPoints != nil,
		"dataGroups":     p.DataGroups != nil,
		"dataGroupsDict": p.DataGroupsDict != nil,
		"statsVarsTitle": p.StatsVarsTitle != nil,
		"plotParams":     p.PlotParams != nil,
	}
	if !present[required] {
		return fmt.Errorf("%w: %s requires %s", ErrMissingPayload, kind, required)
	}
	allowed := map[string]bool{required: true}
	if kind == KindGroupLine {
		allowed["statsVarsTitle"] = true
		allowed["plotParams"] = true
	}
	for _, field := range []string{"dataPoints", "dataGroups", "dataGroupsDict", "statsVarsTitle", "plotParams"} {
		if present[field] && !allowed[field] {
			return fmt.Errorf("%w: %s does not take %s", ErrPayloadMismatch, kind, field)
		}
	}
	return nil
}
