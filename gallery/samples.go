package gallery

import (
	"fmt"

	"github.com/spektr-org/statchart/chart"
)

// Sample is one gallery chart.
type Sample struct {
	Title string
	Props chart.Props
}

const (
	defaultWidth  = 350
	defaultHeight = 300
)

var p = chart.NewDataPoint

func null(label string) chart.DataPoint { return chart.MissingPoint(label) }

func placePoints() []chart.DataPoint {
	return []chart.DataPoint{
		p("San Jose", 702134),
		p("Santa Clara County", 1002342),
		p("California", 3002342),
		p("United States", 9520234),
	}
}

func cityGroups() []chart.DataGroup {
	return []chart.DataGroup{
		{Label: "Staten Island, NY", Value: []chart.DataPoint{p("2011", -10000), null("2012"), p("2013", -30000)}},
		{Label: "Queens, NY", Value: []chart.DataPoint{null("2011"), p("2012", 26000), p("2013", 24000)}},
		{Label: "New York, NY", Value: []chart.DataPoint{null("2011"), p("2012", -25000), p("2013", 22000)}},
		{Label: "United States of America", Value: []chart.DataPoint{null("2011"), p("2012", 5000), p("2013", 2000)}},
		{Label: "Very-Long City-Name", Value: []chart.DataPoint{p("2011", 1000), p("2012", 5000), null("2013")}},
		{Label: "Multi several-very long city name long", Value: []chart.DataPoint{p("2011", 1000), p("2012", 5000), null("2013")}},
	}
}

func japaneseGroups() []chart.DataGroup {
	return []chart.DataGroup{
		{Label: "スタテンアイランド, ニューヨーク州, アメリカ合衆国", Value: []chart.DataPoint{p("2011", -10), null("2012"), p("2013", -30)}},
		{Label: "クイーンズ区, ニューヨーク州", Value: []chart.DataPoint{null("2011"), p("2012", 2.6), p("2013", 24)}},
		{Label: "マンハッタン, ニューヨーク州", Value: []chart.DataPoint{null("2011"), p("2012", -25), p("2013", 22)}},
		{Label: "マンハッタン, ニューヨーク州", Value: []chart.DataPoint{null("2011"), p("2012", 50), p("2013", 20)}},
		{Label: "ブルックリン区, ニューヨーク州", Value: []chart.DataPoint{p("2011", 10), p("2012", 50), null("2013")}},
		{Label: "ブロンクス区, ニューヨーク州", Value: []chart.DataPoint{p("2011", 10), p("2012", 50), null("2013")}},
		{Label: "ニューヨーク州", Value: []chart.DataPoint{p("2011", 10), p("2012", 50), null("2013")}},
		{Label: "アメリカ合衆国", Value: []chart.DataPoint{p("2011", 23.6), p("2012", 24), null("2013")}},
	}
}

var years = []string{"2011", "2012", "2013", "2014", "2015", "2016", "2017", "2018"}

func yearGroup(label string, values []float64) chart.DataGroup {
	g := chart.DataGroup{Label: label}
	for i, y := range years {
		g.Value = append(g.Value, p(y, values[i]))
	}
	return g
}

func nevada() []chart.DataGroup {
	return []chart.DataGroup{
		yearGroup("Total", []float64{2940667, 1952164, -1959400, 1967392, 2978048, 2989918, 3001345, 3009733}),
		yearGroup("Male", []float64{1421287, 1431252, 1439862, 1447235, 1451913, -1456694, 1461651, 1468412}),
	}
}

func california() []chart.DataGroup {
	return []chart.DataGroup{
		yearGroup("Total", []float64{37638369, -37948800, 38260787, 38596972, 38918045, 39167117, 39358497, 39461588}),
		yearGroup("Male", []float64{18387718, 18561020, 18726468, 18911519, 19087135, -19200970, 19366579, 19453769}),
	}
}

func groupLine(width float64, data chart.GroupsByEntity, titles map[string]string) chart.Props {
	params := chart.ComputePlotParams(data.Entities(), data.Variables())
	return chart.Props{
		Width:          width,
		Height:         defaultHeight,
		Type:           chart.KindGroupLine.String(),
		DataGroupsDict: data,
		StatsVarsTitle: titles,
		PlotParams:     &params,
	}
}

// Samples returns the developer gallery, in page order. IDs are stable.
func Samples() []Sample {
	narrowPoints := []chart.DataPoint{
		p("Enrolled in School", 510475),
		p("Not Enrolled in School", 1341885),
	}
	percentPoints := []chart.DataPoint{
		p("San Jose", 70.2),
		p("Santa Clara County", 12.4),
		p("California", 30),
		p("United States", 95.9),
	}
	narrowPercentPoints := []chart.DataPoint{
		p("San Jose", 20.2),
		p("Santa Clara County", 22.4),
		p("California", 23),
		p("United States", 25.9),
	}
	gappyGroups := []chart.DataGroup{
		{Label: "label-1", Value: []chart.DataPoint{
			p("01-01-2011", 702134), p("01-02-2011", 1002342), p("01-03-2011", 3002342),
			p("01-04-2011", 9520234), p("01-05-2011", 3520234), p("01-06-2011", 7520234),
		}},
		{Label: "label-2", Value: []chart.DataPoint{
			p("01-01-2011", 2134), null("01-02-2011"), p("01-03-2011", 2342),
			null("01-04-2011"), p("01-05-2011", 520234), p("01-06-2011", 520234),
		}},
	}
	longNames := chart.GroupsByEntity{
		{Entity: "very very very long place name", Groups: nevada()[:1]},
		{Entity: "such a long name that it needs to span 4 lines", Groups: california()[:1]},
	}
	bothTitles := map[string]string{"Total": "Total", "Male": "Male"}

	samples := []Sample{
		{"Single bar", chart.Props{Width: defaultWidth, Type: "SINGLE_BAR", DataPoints: placePoints()}},
		{"Stack bar with negative and missing values", chart.Props{Width: defaultWidth, Type: "STACK_BAR", DataGroups: cityGroups()}},
		{"Group bar with negative and missing values", chart.Props{Width: defaultWidth, Type: "GROUP_BAR", DataGroups: cityGroups()}},
		{"Line", chart.Props{Width: defaultWidth, Type: "LINE", DataGroups: cityGroups()}},
		{"Single bar in dollars", chart.Props{Width: defaultWidth, Type: "SINGLE_BAR", DataPoints: placePoints(), Unit: "$"}},
		{"Group bar with long Japanese names", chart.Props{Width: 354, Type: "GROUP_BAR", DataGroups: japaneseGroups(), Unit: "%"}},
		{"Narrow single bar in percent", chart.Props{Width: 225, Type: "SINGLE_BAR", DataPoints: percentPoints, Unit: "%"}},
		{"Narrow single bar with uneven ticks", chart.Props{Width: 315, Type: "SINGLE_BAR", DataPoints: narrowPoints}},
		{"Narrow percent single bar", chart.Props{Width: 315, Type: "SINGLE_BAR", DataPoints: narrowPercentPoints, Unit: "%"}},
		{"Narrow group bar", chart.Props{Width: 315, Type: "GROUP_BAR", DataGroups: japaneseGroups()}},
		{"Line with small values", chart.Props{Width: 315, Type: "LINE", DataGroups: []chart.DataGroup{
			{Label: "label-1", Value: []chart.DataPoint{p("01-01-2011", 7), p("01-02-2011", 10)}},
		}}},
		{"Line with missing values", chart.Props{Width: 315, Type: "LINE", DataGroups: gappyGroups}},
		{"Group line, two places", groupLine(450, chart.GroupsByEntity{
			{Entity: "Nevada", Groups: nevada()},
			{Entity: "California", Groups: california()},
		}, bothTitles)},
		{"Group line, one place", groupLine(450, chart.GroupsByEntity{
			{Entity: "California", Groups: california()},
		}, bothTitles)},
		{"Group line with long place names", groupLine(450, longNames, map[string]string{"Total": "Total"})},
		{"Histogram", chart.Props{Width: 450, Type: "HISTOGRAM", DataPoints: []chart.DataPoint{
			p("San Jose", 20.2),
			p("Santa Clara County", -22.4),
			p("California", 23),
			p("United States", 25.9),
		}}},
	}
	for i := range samples {
		samples[i].Props.ID = fmt.Sprintf("chart-%d", i+1)
		if samples[i].Props.Height == 0 {
			samples[i].Props.Height = defaultHeight
		}
	}
	return samples
}
