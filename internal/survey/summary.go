package survey

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/modalkit/modalscan/pkg/frf"
	"github.com/modalkit/modalscan/pkg/logging"
)

// SummaryCalculator derives run-level statistics from a completed analysis
type SummaryCalculator struct {
	logger logging.Logger
}

// NewSummaryCalculator creates a new summary calculator
func NewSummaryCalculator(logger logging.Logger) *SummaryCalculator {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &SummaryCalculator{logger: logger}
}

// ModeSummary describes one consensus mode and the cluster behind it
type ModeSummary struct {
	Frequency    float64 `json:"frequency"`
	Support      int     `json:"support"`
	Spread       float64 `json:"spread"`
	MinFrequency float64 `json:"min_frequency"`
	MaxFrequency float64 `json:"max_frequency"`
}

// RunSummary aggregates the outcome of one survey run
type RunSummary struct {
	FMin             float64        `json:"f_min"`
	FMax             float64        `json:"f_max"`
	Level            float64        `json:"level"`
	Tolerance        float64        `json:"tolerance"`
	MinSupport       int            `json:"min_support"`
	ChannelCount     int            `json:"channel_count"`
	PeakCounts       map[string]int `json:"peak_counts"`
	TotalPeaks       int            `json:"total_peaks"`
	Modes            []ModeSummary  `json:"modes"`
	RejectedClusters int            `json:"rejected_clusters"`
}

// Summarize recomputes the cluster structure behind a detection result and
// reports per-channel and per-mode statistics. The cluster pass here is the
// same greedy rule the mode list was built with, so support counts and mode
// frequencies line up exactly.
func (sc *SummaryCalculator) Summarize(params Params, peaks map[string][]frf.Peak) *RunSummary {
	summary := &RunSummary{
		FMin:         params.FMin,
		FMax:         params.FMax,
		Level:        params.Level,
		Tolerance:    params.Tolerance,
		MinSupport:   params.MinSupport,
		ChannelCount: len(peaks),
		PeakCounts:   make(map[string]int, len(peaks)),
	}

	peakFreqs := make([][]float64, 0, len(peaks))
	for key, channelPeaks := range peaks {
		summary.PeakCounts[key] = len(channelPeaks)
		summary.TotalPeaks += len(channelPeaks)
		peakFreqs = append(peakFreqs, frf.PeakFrequencies(channelPeaks))
	}

	for _, group := range frf.ClusterGroups(peakFreqs, params.Tolerance) {
		if len(group) < params.MinSupport {
			summary.RejectedClusters++
			continue
		}

		mode := ModeSummary{
			Frequency:    stat.Mean(group, nil),
			Support:      len(group),
			MinFrequency: group[0],
			MaxFrequency: group[len(group)-1],
		}
		if len(group) > 1 {
			mode.Spread = stat.StdDev(group, nil)
		}
		summary.Modes = append(summary.Modes, mode)
	}

	sc.logger.Debug("run summary computed", logging.Fields{
		"channels":          summary.ChannelCount,
		"total_peaks":       summary.TotalPeaks,
		"modes":             len(summary.Modes),
		"rejected_clusters": summary.RejectedClusters,
	})
	return summary
}

// Summary computes the run summary for a completed analysis.
func (o *Orchestrator) Summary() (*RunSummary, error) {
	if o.state < StateAnalyzed {
		return nil, fmt.Errorf("cannot summarize in state %q: run analysis first", o.state)
	}
	return NewSummaryCalculator(o.logger).Summarize(o.params, o.peaks), nil
}
