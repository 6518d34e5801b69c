package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spektr-org/statchart/chart"
)

// ============================================================================
// CSV HELPER — Parses CSV data into chart points and groups
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, stdin, upload).
// These helpers convert the raw bytes into the chart data model. Empty, NA,
// N/A, null and "-" cells become null observations, never zero.
//
// Layouts:
//   ParsePoints:         label,value
//   ParseGroups:         ,x1,x2,...       then  group,v1,v2,...
//   ParseGroupsByEntity: entity,variable,x1,x2,...  then  e,var,v1,v2,...
// ============================================================================

// ErrInvalidNumber indicates a cell that is neither a number nor a null marker.
var ErrInvalidNumber = errors.New("invalid number")

// ErrNoRows indicates the CSV had a header but no data rows.
var ErrNoRows = errors.New("csv has no data rows")

var nullMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"-":    true,
}

// ParseValue reads one cell. "$1,200", "12.5%" and "-$5" are accepted.
func ParseValue(cell string) (chart.Value, error) {
	s := strings.TrimSpace(cell)
	if nullMarkers[strings.ToLower(s)] {
		return chart.Null(), nil
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "") // handle "1,234.56"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return chart.Null(), fmt.Errorf("%w: %q", ErrInvalidNumber, cell)
	}
	if neg {
		f = -f
	}
	return chart.Some(f), nil
}

// ParsePoints parses label,value rows. A first row whose value cell is not
// numeric is treated as a header and skipped.
func ParsePoints(data []byte) ([]chart.DataPoint, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0]) > 1 && !isNumeric(rows[0][1]) && !isNull(rows[0][1]) {
		rows = rows[1:]
	}

	points := make([]chart.DataPoint, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			points = append(points, chart.MissingPoint(strings.TrimSpace(row[0])))
			continue
		}
		v, err := ParseValue(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		points = append(points, chart.DataPoint{Label: strings.TrimSpace(row[0]), Value: v})
	}
	return points, nil
}

// ParseGroups parses a table whose header row holds the x labels (after a
// corner cell) and whose rows are one group each.
func ParseGroups(data []byte) ([]chart.DataGroup, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}
	xLabels := trimAll(rows[0][1:])

	groups := make([]chart.DataGroup, 0, len(rows)-1)
	for i, row := range rows[1:] {
		g := chart.DataGroup{Label: strings.TrimSpace(row[0])}
		g.Value, err = rowPoints(xLabels, row[1:])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// ParseGroupsByEntity parses entity,variable,x... rows into an ordered
// entity → groups mapping. Entities keep their first-appearance order.
func ParseGroupsByEntity(data []byte) (chart.GroupsByEntity, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}
	if len(rows[0]) < 3 {
		return nil, fmt.Errorf("header needs entity, variable and at least one x label, got %d columns", len(rows[0]))
	}
	xLabels := trimAll(rows[0][2:])

	out := chart.GroupsByEntity{}
	index := make(map[string]int)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: missing variable column", i+2)
		}
		entity, variable := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		points, err := rowPoints(xLabels, row[2:])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		pos, ok := index[entity]
		if !ok {
			pos = len(out)
			index[entity] = pos
			out = append(out, chart.EntitySeries{Entity: entity})
		}
		out[pos].Groups = append(out[pos].Groups, chart.DataGroup{Label: variable, Value: points})
	}
	return out, nil
}

// XLabels returns the x labels of a ParseGroups table, for kind detection.
func XLabels(data []byte) ([]string, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, nil
	}
	return trimAll(rows[0][1:]), nil
}

func readRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// rowPoints pairs cells with x labels. Short rows are padded with nulls.
func rowPoints(xLabels, cells []string) ([]chart.DataPoint, error) {
	points := make([]chart.DataPoint, len(xLabels))
	for j, label := range xLabels {
		if j >= len(cells) {
			points[j] = chart.MissingPoint(label)
			continue
		}
		v, err := ParseValue(cells[j])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", label, err)
		}
		points[j] = chart.DataPoint{Label: label, Value: v}
	}
	return points, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func isNull(s string) bool {
	return nullMarkers[strings.ToLower(strings.TrimSpace(s))]
}
