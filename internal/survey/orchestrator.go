package survey

import (
	"fmt"

	"github.com/modalkit/modalscan/pkg/frf"
	"github.com/modalkit/modalscan/pkg/logging"
)

// State tracks how far a survey run has progressed.
type State int

const (
	// StateIdle: no curves loaded yet.
	StateIdle State = iota
	// StateLoaded: curves loaded and band-filtered.
	StateLoaded
	// StateAnalyzed: peaks detected and modes clustered.
	StateAnalyzed
	// StateModeSelected: a displacement field has been reconstructed.
	StateModeSelected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoaded:
		return "loaded"
	case StateAnalyzed:
		return "analyzed"
	case StateModeSelected:
		return "mode_selected"
	default:
		return "unknown"
	}
}

// Orchestrator sequences one survey run: band-filter the loaded curves,
// detect peaks per channel, cluster the peak frequencies into modes, and
// reconstruct a displacement field for a selected mode. Each run owns its
// own result set; re-running a stage replaces downstream results instead of
// mutating them in place.
type Orchestrator struct {
	params Params
	logger logging.Logger
	state  State

	raw      map[string]frf.Curve // as loaded, full band
	filtered map[string]frf.Curve
	peaks    map[string][]frf.Peak
	modes    []float64
	field    *DisplacementField
}

// NewOrchestrator creates an orchestrator for the given parameters.
func NewOrchestrator(params Params, logger logging.Logger) (*Orchestrator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis parameters: %w", err)
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Orchestrator{
		params: params,
		logger: logger,
		state:  StateIdle,
	}, nil
}

// State returns the current run state.
func (o *Orchestrator) State() State {
	return o.state
}

// Params returns the active analysis parameters.
func (o *Orchestrator) Params() Params {
	return o.params
}

// LoadCurves takes one sorted curve per channel and band-filters each to
// [f_min, f_max]. Any previous peaks, modes and displacement field are
// discarded. Partial channel sets are accepted; only shape reconstruction
// requires the full set.
func (o *Orchestrator) LoadCurves(curves map[string]frf.Curve) error {
	if len(curves) == 0 {
		return fmt.Errorf("no measurement channels provided")
	}

	raw := make(map[string]frf.Curve, len(curves))
	filtered := make(map[string]frf.Curve, len(curves))
	for key, curve := range curves {
		raw[key] = curve
		filtered[key] = curve.Band(o.params.FMin, o.params.FMax)
	}

	o.raw = raw
	o.filtered = filtered
	o.peaks = nil
	o.modes = nil
	o.field = nil
	o.state = StateLoaded

	o.logger.Debug("curves loaded and band-filtered", logging.Fields{
		"channels": len(filtered),
		"f_min":    o.params.FMin,
		"f_max":    o.params.FMax,
	})
	return nil
}

// SetParams replaces the analysis parameters. Loaded curves are re-filtered
// from the raw data and all detection, clustering and reconstruction results
// are discarded.
func (o *Orchestrator) SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid analysis parameters: %w", err)
	}
	o.params = params

	if o.state == StateIdle {
		return nil
	}

	filtered := make(map[string]frf.Curve, len(o.raw))
	for key, curve := range o.raw {
		filtered[key] = curve.Band(params.FMin, params.FMax)
	}
	o.filtered = filtered
	o.peaks = nil
	o.modes = nil
	o.field = nil
	o.state = StateLoaded
	return nil
}

// Analyze detects peaks in every filtered curve and clusters their
// frequencies into consensus modes. An empty mode list is a valid outcome
// ("no modes found"), not an error.
func (o *Orchestrator) Analyze() error {
	if o.state < StateLoaded {
		return fmt.Errorf("cannot analyze in state %q: no curves loaded", o.state)
	}

	peaks := make(map[string][]frf.Peak, len(o.filtered))
	peakFreqs := make([][]float64, 0, len(o.filtered))
	total := 0
	for key, curve := range o.filtered {
		detected := frf.DetectPeaks(curve, o.params.Level)
		peaks[key] = detected
		peakFreqs = append(peakFreqs, frf.PeakFrequencies(detected))
		total += len(detected)
	}

	o.peaks = peaks
	o.modes = frf.ClusterModes(peakFreqs, o.params.Tolerance, o.params.MinSupport)
	o.field = nil
	o.state = StateAnalyzed

	o.logger.Debug("analysis completed", logging.Fields{
		"channels":    len(peaks),
		"total_peaks": total,
		"modes":       len(o.modes),
		"level":       o.params.Level,
		"tolerance":   o.params.Tolerance,
		"min_support": o.params.MinSupport,
	})
	return nil
}

// FilteredCurves exposes the band-filtered curves by channel.
func (o *Orchestrator) FilteredCurves() map[string]frf.Curve {
	return o.filtered
}

// Peaks exposes the detected peaks by channel.
func (o *Orchestrator) Peaks() map[string][]frf.Peak {
	return o.peaks
}

// Modes returns the consensus mode frequencies in Hz, ascending.
func (o *Orchestrator) Modes() []float64 {
	return o.modes
}

// ValidateShapeChannels checks that every channel required for shape
// reconstruction is loaded and still holds samples after band filtering.
func (o *Orchestrator) ValidateShapeChannels() error {
	for _, key := range ChannelKeys() {
		curve, ok := o.filtered[key]
		if !ok {
			return NewChannelError(key, ErrCodeMissingChannel,
				fmt.Sprintf("channel %s has no measurement data", key), nil)
		}
		if len(curve) == 0 {
			return NewChannelError(key, ErrCodeEmptyChannel,
				fmt.Sprintf("channel %s has no samples in the analysis band", key), nil)
		}
	}
	return nil
}

// DisplacementField reconstructs the deformation shape for one mode
// frequency. Requires a completed analysis and the full 16-channel set; an
// incomplete set is a configuration error surfaced before any lookup runs.
// Only the latest reconstruction is retained; calling again with a different
// mode or window replaces it.
func (o *Orchestrator) DisplacementField(modeFrequency, window float64) (*DisplacementField, error) {
	if o.state < StateAnalyzed {
		return nil, fmt.Errorf("cannot reconstruct shape in state %q: run analysis first", o.state)
	}
	if window < 0 {
		return nil, fmt.Errorf("window must not be negative")
	}
	if err := o.ValidateShapeChannels(); err != nil {
		return nil, err
	}

	raw := make([]frf.Vector, NumCorners)
	for corner := 1; corner <= NumCorners; corner++ {
		pairs := [2]frf.AxisPair{}
		for i, ex := range ExcitationDirections {
			pairs[i] = frf.AxisPair{
				X: o.filtered[ChannelKey(corner, ex, "x")],
				Y: o.filtered[ChannelKey(corner, ex, "y")],
			}
		}
		raw[corner-1] = frf.PointVector(pairs, modeFrequency, window)
	}

	normalized, scale := frf.Normalize(raw)

	corners := make([]CornerDisplacement, NumCorners)
	for i := range corners {
		rest := CornerRest(i + 1)
		display := frf.Vector{
			X: rest.X + o.params.DisplayScale*normalized[i].X,
			Y: rest.Y + o.params.DisplayScale*normalized[i].Y,
		}
		corners[i] = CornerDisplacement{
			Corner:     i + 1,
			Rest:       rest,
			Raw:        raw[i],
			Normalized: normalized[i],
			Display:    display,
		}
	}

	field := &DisplacementField{
		ModeFrequency: modeFrequency,
		Window:        window,
		Scale:         scale,
		Corners:       corners,
	}
	o.field = field
	o.state = StateModeSelected

	o.logger.Debug("displacement field reconstructed", logging.Fields{
		"mode_frequency": modeFrequency,
		"window":         window,
		"scale":          scale,
	})
	return field, nil
}

// Field returns the most recent displacement field, nil if none was
// reconstructed since the last analysis.
func (o *Orchestrator) Field() *DisplacementField {
	return o.field
}
