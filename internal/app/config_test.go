package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modalkit/modalscan/internal/survey"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMeasurementSetYAML(t *testing.T) {
	content := `version: "1.0"
description: two channel smoke set
channels:
  P1_X_x: data/p1xx.lvm
  P1_X_y: data/p1xy.lvm
`
	path := writeFile(t, t.TempDir(), "set.yaml", content)

	set, err := LoadMeasurementSet(path)
	require.NoError(t, err)
	require.NoError(t, set.Validate())

	assert.Equal(t, "1.0", set.Version)
	assert.Len(t, set.Channels, 2)
	assert.False(t, set.Complete())
	assert.Len(t, set.MissingChannels(), 14)
}

func TestLoadMeasurementSetJSON(t *testing.T) {
	content := `{"version": "1.0", "channels": {"P2_Y_y": "p2yy.lvm"}}`
	path := writeFile(t, t.TempDir(), "set.json", content)

	set, err := LoadMeasurementSet(path)
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.Equal(t, "p2yy.lvm", set.Channels["P2_Y_y"])
}

func TestLoadMeasurementSetRejectsUnknownChannel(t *testing.T) {
	content := "channels:\n  P5_X_x: bogus.lvm\n"
	path := writeFile(t, t.TempDir(), "set.yaml", content)

	set, err := LoadMeasurementSet(path)
	require.NoError(t, err)
	assert.Error(t, set.Validate())
}

func TestLoadMeasurementSetMissingFile(t *testing.T) {
	_, err := LoadMeasurementSet(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadCurvesResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
	writeFile(t, filepath.Join(dir, "data"), "p1xx.lvm",
		"header\n100,0\t1,0\n105,0\t-0,5\n")

	setPath := writeFile(t, dir, "set.yaml",
		"channels:\n  P1_X_x: data/p1xx.lvm\n")

	set, err := LoadMeasurementSet(setPath)
	require.NoError(t, err)

	curves, err := LoadCurves(set, setPath)
	require.NoError(t, err)
	require.Len(t, curves, 1)

	curve := curves["P1_X_x"]
	require.Len(t, curve, 2)
	assert.InDelta(t, 10.0, curve[0].Frequency, 1e-12)
	assert.InDelta(t, 10.5, curve[1].Frequency, 1e-12)
}

func TestLoadCurvesFrequencyScaleOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p1xx.lvm", "header\n100,0\t1,0\n")
	setPath := writeFile(t, dir, "set.yaml",
		"frequency_scale: 1.0\nchannels:\n  P1_X_x: p1xx.lvm\n")

	set, err := LoadMeasurementSet(setPath)
	require.NoError(t, err)

	curves, err := LoadCurves(set, setPath)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, curves["P1_X_x"][0].Frequency, 1e-12)
}

func TestGenerateExampleSetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example", "set.yaml")
	require.NoError(t, GenerateExampleSet(path))

	set, err := LoadMeasurementSet(path)
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.True(t, set.Complete())
	assert.Len(t, set.Channels, len(survey.ChannelKeys()))
}
