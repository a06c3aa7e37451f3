package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modalkit/modalscan/pkg/frf"
)

func TestSummarizeCountsAndModes(t *testing.T) {
	params := Params{
		FMin:       5,
		FMax:       50,
		Level:      0.5,
		Tolerance:  0.5,
		MinSupport: 2,
	}

	peaks := map[string][]frf.Peak{
		"P1_X_x": {
			{Frequency: 10.0, Value: 1.2},
			{Frequency: 10.3, Value: -0.9},
			{Frequency: 33.0, Value: 0.7},
		},
		"P1_X_y": {
			{Frequency: 10.1, Value: 0.8},
		},
		"P1_Y_x": {},
	}

	summary := NewSummaryCalculator(nil).Summarize(params, peaks)

	assert.Equal(t, 3, summary.ChannelCount)
	assert.Equal(t, 4, summary.TotalPeaks)
	assert.Equal(t, 3, summary.PeakCounts["P1_X_x"])
	assert.Equal(t, 1, summary.PeakCounts["P1_X_y"])
	assert.Equal(t, 0, summary.PeakCounts["P1_Y_x"])

	// The 10 Hz cluster survives, the lone 33 Hz peak does not.
	require.Len(t, summary.Modes, 1)
	assert.Equal(t, 1, summary.RejectedClusters)

	mode := summary.Modes[0]
	assert.InDelta(t, 10.133333333, mode.Frequency, 1e-6)
	assert.Equal(t, 3, mode.Support)
	assert.Equal(t, 10.0, mode.MinFrequency)
	assert.Equal(t, 10.3, mode.MaxFrequency)
	assert.Greater(t, mode.Spread, 0.0)
}

func TestSummaryRequiresAnalysis(t *testing.T) {
	o, err := NewOrchestrator(Params{
		FMin: 0.5, FMax: 120, Level: 0.01, Tolerance: 0.8, MinSupport: 4,
	}, nil)
	require.NoError(t, err)

	_, err = o.Summary()
	assert.Error(t, err)
}

func TestSummaryMatchesOrchestratorModes(t *testing.T) {
	o, err := NewOrchestrator(Params{
		FMin: 5, FMax: 50, Level: 0.5, Tolerance: 0.8, MinSupport: 2,
	}, nil)
	require.NoError(t, err)

	curves := map[string]frf.Curve{
		"P1_X_x": spikeCurve([]float64{12.0, 30.0}, 1.0),
		"P1_X_y": spikeCurve([]float64{12.2, 30.1}, 1.0),
	}
	require.NoError(t, o.LoadCurves(curves))
	require.NoError(t, o.Analyze())

	summary, err := o.Summary()
	require.NoError(t, err)
	require.Len(t, summary.Modes, len(o.Modes()))
	for i, mode := range summary.Modes {
		assert.InDelta(t, o.Modes()[i], mode.Frequency, 1e-12)
	}
}
