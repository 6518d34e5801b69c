package chart

import (
	"bytes"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// ============================================================================
// STATCHART DATA MODEL — Points, groups and per-entity series
// ============================================================================
// Missing observations are carried as an explicit optional (Value), never as
// a sentinel number, so "no data" and "zero" stay distinct through scales,
// sums and bins.
// ============================================================================

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ============================================================================
// VALUE — Optional float64
// ============================================================================

// Value is a numeric observation that may be absent. The zero Value is null.
type Value struct {
	v     float64
	valid bool
}

// Some wraps a present observation.
func Some(v float64) Value {
	return Value{v: v, valid: true}
}

// Null is an absent observation.
func Null() Value {
	return Value{}
}

// Get returns the number and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.v, v.valid
}

// IsNull reports whether the observation is absent.
func (v Value) IsNull() bool {
	return !v.valid
}

func (v Value) String() string {
	if !v.valid {
		return "null"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

// MarshalJSON writes null for absent values and for NaN/Inf, which JSON
// cannot carry.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid || math.IsNaN(v.v) || math.IsInf(v.v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.v, 'g', -1, 64), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*v = Null()
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Some(f)
	return nil
}

// ============================================================================
// DATAPOINT / DATAGROUP
// ============================================================================

// DataPoint is one labelled observation.
type DataPoint struct {
	Label string `json:"label"`
	Value Value  `json:"value"`
}

// NewDataPoint builds a present observation.
func NewDataPoint(label string, v float64) DataPoint {
	return DataPoint{Label: label, Value: Some(v)}
}

// MissingPoint builds an absent observation.
func MissingPoint(label string) DataPoint {
	return DataPoint{Label: label, Value: Null()}
}

// DataGroup is one series. The order of Value is the x-axis order.
type DataGroup struct {
	Label string      `json:"label"`
	Value []DataPoint `json:"value"`
}

// EntitySeries is the list of series drawn for one entity (e.g. one place).
type EntitySeries struct {
	Entity string
	Groups []DataGroup
}

// GroupsByEntity is an ordered entity → series mapping. Its JSON form is an
// object; key order is kept on decode and encode.
type GroupsByEntity []EntitySeries

// Entities returns the entity keys in order.
func (g GroupsByEntity) Entities() []string {
	out := make([]string, 0, len(g))
	for _, es := range g {
		out = append(out, es.Entity)
	}
	return out
}

// Variables returns the distinct group labels in order of first appearance.
func (g GroupsByEntity) Variables() []string {
	seen := make(map[string]bool)
	var out []string
	for _, es := range g {
		for _, grp := range es.Groups {
			if !seen[grp.Label] {
				seen[grp.Label] = true
				out = append(out, grp.Label)
			}
		}
	}
	return out
}

func (g GroupsByEntity) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, es := range g {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(es.Entity)
		stream.WriteVal(es.Groups)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (g *GroupsByEntity) UnmarshalJSON(b []byte) error {
	iter := json.BorrowIterator(b)
	defer json.ReturnIterator(iter)

	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		*g = nil
		return nil
	}

	out := GroupsByEntity{}
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		var groups []DataGroup
		it.ReadVal(&groups)
		out = append(out, EntitySeries{Entity: key, Groups: groups})
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	*g = out
	return nil
}

// ============================================================================
// HELPERS — Extents over present values only
// ============================================================================

// extent returns min/max of present values. ok is false when every value is
// null or the input is empty.
func extent(points []DataPoint) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		v, present := p.Value.Get()
		if !present || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

// groupsExtent is extent across every co-plotted group.
func groupsExtent(groups []DataGroup) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, g := range groups {
		l, h, present := extent(g.Value)
		if !present {
			continue
		}
		lo = math.Min(lo, l)
		hi = math.Max(hi, h)
		ok = true
	}
	return lo, hi, ok
}

// axisLabels returns the x labels of the longest group. Callers supply
// aligned sequences, so the longest one carries every position.
func axisLabels(groups []DataGroup) []string {
	var longest []DataPoint
	for _, g := range groups {
		if len(g.Value) > len(longest) {
			longest = g.Value
		}
	}
	out := make([]string, len(longest))
	for i, p := range longest {
		out[i] = p.Label
	}
	return out
}
