package frf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// normEpsilon is the threshold below which a field's maximum norm is treated
// as zero during normalization.
const normEpsilon = 1e-12

// Vector is a 2-D displacement estimate for one structural point at one mode
// frequency.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns the vector multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// AxisPair holds the x-axis and y-axis measurement curves recorded for one
// excitation direction at one structural point.
type AxisPair struct {
	X Curve
	Y Curve
}

// PointVector estimates the displacement of one structural point at the
// target frequency. Each excitation direction contributes a window lookup
// per measurement axis; the two direction estimates are summed per axis and
// halved, averaging the independent excitations.
func PointVector(pairs [2]AxisPair, target, window float64) Vector {
	var v Vector
	for _, p := range pairs {
		v.X += p.X.ValueNear(target, window)
		v.Y += p.Y.ValueNear(target, window)
	}
	return v.Scale(0.5)
}

// Normalize scales a set of point vectors by the maximum Euclidean norm in
// the set, returning the normalized copy and the divisor used. An all-zero
// field (maximum norm below normEpsilon) divides by 1, producing a
// legitimate all-zero result. The normalized field only bounds the
// qualitative display amplitude; it carries no physical unit.
func Normalize(vectors []Vector) ([]Vector, float64) {
	if len(vectors) == 0 {
		return nil, 1
	}

	norms := make([]float64, len(vectors))
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	scale := floats.Max(norms)
	if scale < normEpsilon {
		scale = 1
	}

	normalized := make([]Vector, len(vectors))
	for i, v := range vectors {
		normalized[i] = v.Scale(1 / scale)
	}
	return normalized, scale
}
