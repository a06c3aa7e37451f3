package frf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCurve(value float64) Curve {
	return Curve{
		{Frequency: 9, Value: value},
		{Frequency: 10, Value: value},
		{Frequency: 11, Value: value},
	}
}

func TestPointVectorAveragesExcitationDirections(t *testing.T) {
	pairs := [2]AxisPair{
		{X: flatCurve(1.0), Y: flatCurve(3.0)},
		{X: flatCurve(2.0), Y: flatCurve(-1.0)},
	}

	v := PointVector(pairs, 10.0, 0.5)
	assert.InDelta(t, 1.5, v.X, 1e-12)
	assert.InDelta(t, 1.0, v.Y, 1e-12)
}

func TestNormalizeScalesByMaxNorm(t *testing.T) {
	vectors := []Vector{
		{X: 0.5, Y: 0},
		{X: 0, Y: 2.0},
		{X: 1.0, Y: 0},
	}

	normalized, scale := Normalize(vectors)
	require.Len(t, normalized, 3)
	assert.InDelta(t, 2.0, scale, 1e-12)
	assert.InDelta(t, 0.25, normalized[0].Norm(), 1e-12)
	assert.InDelta(t, 1.0, normalized[1].Norm(), 1e-12)
	assert.InDelta(t, 0.5, normalized[2].Norm(), 1e-12)
}

func TestNormalizeDegenerateField(t *testing.T) {
	vectors := []Vector{{X: 0, Y: 0}, {X: 1e-15, Y: 0}}

	normalized, scale := Normalize(vectors)
	assert.Equal(t, 1.0, scale)
	assert.InDelta(t, 0.0, normalized[0].Norm(), 1e-12)
	assert.InDelta(t, 1e-15, normalized[1].Norm(), 1e-18)
}

func TestNormalizeEmpty(t *testing.T) {
	normalized, scale := Normalize(nil)
	assert.Nil(t, normalized)
	assert.Equal(t, 1.0, scale)
}

func TestVectorNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Vector{X: 3, Y: 4}.Norm(), 1e-12)
	assert.InDelta(t, 0.0, Vector{}.Norm(), 1e-12)
}
