package lvm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempLVM(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurement.lvm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFileScalesAndSorts(t *testing.T) {
	// Header row, decimal commas, frequencies stored as 10×Hz, out of order.
	content := "LabVIEW Measurement\t\n" +
		"120,0\t0,25\n" +
		"100,0\t-0,5\n" +
		"110,0\t1,75\n"

	curve, err := ReadFile(writeTempLVM(t, content), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, curve, 3)

	assert.InDelta(t, 10.0, curve[0].Frequency, 1e-12)
	assert.InDelta(t, 11.0, curve[1].Frequency, 1e-12)
	assert.InDelta(t, 12.0, curve[2].Frequency, 1e-12)

	assert.InDelta(t, -0.5, curve[0].Value, 1e-12)
	assert.InDelta(t, 1.75, curve[1].Value, 1e-12)
	assert.InDelta(t, 0.25, curve[2].Value, 1e-12)
}

func TestReadFileSkipsBlankLines(t *testing.T) {
	content := "header\n" +
		"100,0\t1,0\n" +
		"\n" +
		"101,0\t2,0\n"

	curve, err := ReadFile(writeTempLVM(t, content), DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, curve, 2)
}

func TestReadFileLatin1Header(t *testing.T) {
	// 0xB0 is the Latin-1 degree sign; the header must not break decoding.
	content := "Messung 20\xb0C\n100,0\t1,0\n"

	curve, err := ReadFile(writeTempLVM(t, content), DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, curve, 1)
}

func TestReadFileMalformedRow(t *testing.T) {
	content := "header\n100,0\t1,0\nnot-a-number\t2,0\n"

	_, err := ReadFile(writeTempLVM(t, content), DefaultOptions())
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

func TestReadFileMissingColumn(t *testing.T) {
	content := "header\n100,0\n"

	_, err := ReadFile(writeTempLVM(t, content), DefaultOptions())
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestReadFileCustomScale(t *testing.T) {
	content := "header\n100,0\t1,0\n"

	curve, err := ReadFile(writeTempLVM(t, content), Options{FrequencyScale: 1.0, SkipRows: 1})
	require.NoError(t, err)
	require.Len(t, curve, 1)
	assert.InDelta(t, 100.0, curve[0].Frequency, 1e-12)
}

func TestReadFileMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.lvm"), DefaultOptions())
	assert.Error(t, err)
}
