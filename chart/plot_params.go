package chart

import (
	"fmt"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// PLOT PARAMS — Stable style identity per (entity, variable) pair
// ============================================================================
// Computed once by the composing page and passed to every chart that must
// agree on colors. Read-only after construction, so any number of charts may
// share one value without locking.
//
// Policy:
//   - one entity:   color by variable index, no dash
//   - one variable: color by entity index, no dash
//   - otherwise:    color by variable index, dash by entity index
//
// Indices cycle through the palette and dash list; overflow repeats.
// ============================================================================

// Category10 is the default series palette.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultDashes are the secondary distinguishing attribute in product mode.
var DefaultDashes = []string{"", "5, 5", "10, 5", "2, 4", "12, 4, 2, 4"}

// DefaultStyle is used for any pair not covered by a PlotParams.
var DefaultStyle = Style{Color: Category10[0]}

// Style is the visual identity of one line or bar series.
type Style struct {
	Color string `json:"color"`
	Dash  string `json:"dash,omitempty"`
}

// LegendEntry is one legend row in display order.
type LegendEntry struct {
	Entity   string `json:"entity"`
	Variable string `json:"variable"`
	Style    Style  `json:"style"`
}

// PlotParams maps PairKey(entity, variable) to a Style.
type PlotParams struct {
	Lines  map[string]Style `json:"lines"`
	Legend []LegendEntry    `json:"legend"`
}

// PairKey is the composite key of Lines.
func PairKey(entity, variable string) string {
	return entity + "|" + variable
}

// Style looks up a pair, falling back to DefaultStyle.
func (p PlotParams) Style(entity, variable string) Style {
	if st, ok := p.Lines[PairKey(entity, variable)]; ok {
		return st
	}
	return DefaultStyle
}

// Empty reports whether no pair was assigned.
func (p PlotParams) Empty() bool {
	return len(p.Lines) == 0
}

// Validate checks every color and dash in p. An empty color is allowed and
// falls back to the palette at draw time.
func (p PlotParams) Validate() error {
	check := func(where string, st Style) error {
		if st.Color != "" && !surface.ValidColor(st.Color) {
			return fmt.Errorf("%w: %s color %q", ErrInvalidStyle, where, st.Color)
		}
		if !surface.ValidDash(st.Dash) {
			return fmt.Errorf("%w: %s dash %q", ErrInvalidStyle, where, st.Dash)
		}
		return nil
	}
	for key, st := range p.Lines {
		if err := check(key, st); err != nil {
			return err
		}
	}
	for _, e := range p.Legend {
		if err := check(PairKey(e.Entity, e.Variable), e.Style); err != nil {
			return err
		}
	}
	return nil
}

// ParamsOption configures ComputePlotParams.
type ParamsOption func(*paramsConfig)

type paramsConfig struct {
	palette []string
	dashes  []string
}

// WithParamsPalette replaces the color palette. An empty palette is ignored.
func WithParamsPalette(colors []string) ParamsOption {
	return func(c *paramsConfig) {
		if len(colors) > 0 {
			c.palette = colors
		}
	}
}

// WithParamsDashes replaces the dash patterns. An empty list is ignored.
func WithParamsDashes(dashes []string) ParamsOption {
	return func(c *paramsConfig) {
		if len(dashes) > 0 {
			c.dashes = dashes
		}
	}
}

// ComputePlotParams assigns a style to every (entity, variable) pair,
// iterating entities first, both in the order given. Empty input on either
// side yields empty params; lookups then fall back to DefaultStyle.
func ComputePlotParams(entityIDs, variableIDs []string, opts ...ParamsOption) PlotParams {
	cfg := &paramsConfig{palette: Category10, dashes: DefaultDashes}
	for _, opt := range opts {
		opt(cfg)
	}

	params := PlotParams{Lines: map[string]Style{}}
	if len(entityIDs) == 0 || len(variableIDs) == 0 {
		return params
	}

	for ei, entity := range entityIDs {
		for vi, variable := range variableIDs {
			var st Style
			switch {
			case len(entityIDs) == 1:
				st = Style{Color: cycle(cfg.palette, vi)}
			case len(variableIDs) == 1:
				st = Style{Color: cycle(cfg.palette, ei)}
			default:
				st = Style{Color: cycle(cfg.palette, vi), Dash: cycle(cfg.dashes, ei)}
			}
			key := PairKey(entity, variable)
			if _, dup := params.Lines[key]; dup {
				continue
			}
			params.Lines[key] = st
			params.Legend = append(params.Legend, LegendEntry{Entity: entity, Variable: variable, Style: st})
		}
	}
	return params
}

func cycle(list []string, i int) string {
	return list[i%len(list)]
}
