package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/statchart/chart"
	"github.com/spektr-org/statchart/setting"
)

const groupsCSV = `,2011,2012,2013
"Staten Island, NY",-10000,,-30000
"Queens, NY",,26000,24000
`

func defaults() renderOptions {
	return renderOptions{kind: "auto", width: 350, height: 300, format: "svg"}
}

func TestRenderInputAutoKind(t *testing.T) {
	scene, err := renderInput([]byte(groupsCSV), "t", defaults(), setting.Default())
	require.NoError(t, err)
	assert.NotEmpty(t, scene.ByClass("line"), "year headers render as lines")
	assert.Empty(t, scene.ByClass("bar"))
}

func TestRenderInputKinds(t *testing.T) {
	o := defaults()
	o.kind = "stack_bar"
	scene, err := renderInput([]byte(groupsCSV), "t", o, setting.Default())
	require.NoError(t, err)
	assert.Len(t, scene.ByClass("bar"), 4)

	o.kind = "SINGLE_BAR"
	o.unit = "$"
	scene, err = renderInput([]byte("a,10\nb,20\n"), "t", o, setting.Default())
	require.NoError(t, err)
	assert.Len(t, scene.ByClass("bar"), 2)

	o.kind = "GROUP_LINE"
	o.unit = ""
	scene, err = renderInput([]byte("entity,variable,2011,2012\nNevada,Total,1,2\nUtah,Total,3,4\n"), "t", o, setting.Default())
	require.NoError(t, err)
	assert.Len(t, scene.ByClass("subchart-title"), 2)
}

func TestRenderInputFaults(t *testing.T) {
	o := defaults()
	o.kind = "PIE"
	_, err := renderInput([]byte(groupsCSV), "t", o, setting.Default())
	assert.ErrorIs(t, err, chart.ErrUnknownKind)

	o = defaults()
	o.unit = "€"
	_, err = renderInput([]byte(groupsCSV), "t", o, setting.Default())
	assert.ErrorIs(t, err, chart.ErrUnknownUnit)

	o = defaults()
	o.width = 0
	_, err = renderInput([]byte(groupsCSV), "t", o, setting.Default())
	assert.ErrorIs(t, err, chart.ErrInvalidWidth)
}

func TestRenderInputProps(t *testing.T) {
	o := defaults()
	o.props = true
	scene, err := renderInput([]byte(`{"type":"HISTOGRAM","dataPoints":[{"label":"a","value":1},{"label":"b","value":3}]}`), "t", o, setting.Default())
	require.NoError(t, err)
	assert.Equal(t, 350.0, scene.Width)
	assert.NotEmpty(t, scene.ByClass("bar"))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "groups.csv")
	out := filepath.Join(dir, "groups.svg")
	require.NoError(t, os.WriteFile(in, []byte(groupsCSV), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", in, "--kind", "GROUP_BAR", "--width", "400", "--out", out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="400"`)
	assert.Equal(t, 4, strings.Count(string(data), `class="bar"`))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "statchart v"+version+"\n", buf.String())
}
