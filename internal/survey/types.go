package survey

import (
	"fmt"

	"github.com/modalkit/modalscan/pkg/frf"
)

// NumCorners is the number of instrumented structural points on the test
// frame.
const NumCorners = 4

// Excitation directions and measurement axes of the channel naming scheme.
// Each corner carries one curve per (excitation, axis) combination, 16
// channels in total.
var (
	ExcitationDirections = []string{"X", "Y"}
	MeasurementAxes      = []string{"x", "y"}
)

// ChannelKey builds the canonical channel identifier for a corner,
// excitation direction and measurement axis, e.g. "P2_X_y".
func ChannelKey(corner int, excitation, axis string) string {
	return fmt.Sprintf("P%d_%s_%s", corner, excitation, axis)
}

// ChannelKeys returns all 16 channel identifiers in corner-major order.
func ChannelKeys() []string {
	keys := make([]string, 0, NumCorners*len(ExcitationDirections)*len(MeasurementAxes))
	for corner := 1; corner <= NumCorners; corner++ {
		for _, ex := range ExcitationDirections {
			for _, axis := range MeasurementAxes {
				keys = append(keys, ChannelKey(corner, ex, axis))
			}
		}
	}
	return keys
}

// cornerRest holds the undeformed unit-square frame geometry, corners
// numbered counter-clockwise from the origin.
var cornerRest = [NumCorners]frf.Vector{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
}

// CornerRest returns the rest position of corner 1..NumCorners.
func CornerRest(corner int) frf.Vector {
	return cornerRest[corner-1]
}

// Params holds the analysis parameters of one survey run. All values are
// caller supplied; the orchestrator invents no silent defaults.
type Params struct {
	// Analysis frequency band in Hz, bounds inclusive.
	FMin float64 `json:"f_min" yaml:"f_min"`
	FMax float64 `json:"f_max" yaml:"f_max"`

	// Peak magnitude threshold on |imag|.
	Level float64 `json:"level" yaml:"level"`

	// Clustering tolerance in Hz and minimum cluster support.
	Tolerance  float64 `json:"tolerance" yaml:"tolerance"`
	MinSupport int     `json:"min_support" yaml:"min_support"`

	// Half-width in Hz of the value lookup window during reconstruction.
	Window float64 `json:"window" yaml:"window"`

	// Cosmetic deformation scale for the display positions; not consumed by
	// detection or clustering.
	DisplayScale float64 `json:"display_scale" yaml:"display_scale"`
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.FMax <= p.FMin {
		return fmt.Errorf("f_max must be greater than f_min")
	}
	if p.Level < 0 {
		return fmt.Errorf("level must not be negative")
	}
	if p.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive")
	}
	if p.MinSupport < 1 {
		return fmt.Errorf("min_support must be at least 1")
	}
	if p.Window < 0 {
		return fmt.Errorf("window must not be negative")
	}
	if p.DisplayScale < 0 {
		return fmt.Errorf("display_scale must not be negative")
	}
	return nil
}

// CornerDisplacement is the reconstructed displacement of one corner at one
// mode frequency.
type CornerDisplacement struct {
	Corner     int        `json:"corner"`
	Rest       frf.Vector `json:"rest"`
	Raw        frf.Vector `json:"raw"`
	Normalized frf.Vector `json:"normalized"`
	// Display is the deformed frame position: rest + display_scale * normalized.
	Display frf.Vector `json:"display"`
}

// DisplacementField is the reconstructed shape of one mode across all
// corners, plus the normalization divisor applied to the raw vectors.
type DisplacementField struct {
	ModeFrequency float64              `json:"mode_frequency"`
	Window        float64              `json:"window"`
	Scale         float64              `json:"scale"`
	Corners       []CornerDisplacement `json:"corners"`
}
