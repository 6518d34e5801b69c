// Package statchart renders statistical charts for a graph browser.
//
// Usage:
//
//	import "github.com/spektr-org/statchart/chart"
//
//	c := surface.NewContainer("population", 400)
//	err := chart.Mount(c, chart.Spec{
//	    ID: "population", Width: 350, Height: 300,
//	    Payload: chart.SingleBarData{Points: points},
//	})
//	svg, _ := surface.SVGString(c.Scene())
//
// Charts are drawn into a retained scene (package surface) and encoded as
// SVG or PNG. ComputePlotParams assigns one shared color and dash per
// (entity, variable) pair so that a page of GROUP_LINE charts stays
// consistent. The browser package resolves an entity's types and mounts its
// node page; the server package exposes pages, a cached property-value
// proxy and a chart rendering endpoint.
//
// Caller faults (unknown kind, mismatched payload, non-positive size) are
// returned as *chart.MountError. Missing values and empty data never fault.
package statchart
