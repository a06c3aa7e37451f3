package frf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurveSort(t *testing.T) {
	c := Curve{
		{Frequency: 12.0, Value: 3},
		{Frequency: 10.0, Value: 1},
		{Frequency: 11.0, Value: 2},
	}
	c.Sort()

	assert.Equal(t, 10.0, c[0].Frequency)
	assert.Equal(t, 11.0, c[1].Frequency)
	assert.Equal(t, 12.0, c[2].Frequency)
}

func TestCurveBandInclusiveBounds(t *testing.T) {
	c := Curve{
		{Frequency: 1, Value: 1},
		{Frequency: 2, Value: 2},
		{Frequency: 3, Value: 3},
		{Frequency: 4, Value: 4},
	}

	band := c.Band(2, 3)
	assert.Len(t, band, 2)
	assert.Equal(t, 2.0, band[0].Frequency)
	assert.Equal(t, 3.0, band[1].Frequency)

	assert.Empty(t, c.Band(5, 9))
	assert.Len(t, c.Band(0, 10), 4)
}

func TestValueNearWindowMaximum(t *testing.T) {
	c := Curve{
		{Frequency: 9.8, Value: 1},
		{Frequency: 10.0, Value: 5},
		{Frequency: 10.2, Value: 2},
	}

	// All three samples fall inside the window; the maximum wins.
	assert.Equal(t, 5.0, c.ValueNear(10.0, 0.5))

	// Window maximum, not nearest: 10.2 is closer but 10.0 is larger.
	assert.Equal(t, 5.0, c.ValueNear(10.15, 0.5))
}

func TestValueNearEmptyWindowFallsBackToClosest(t *testing.T) {
	c := Curve{
		{Frequency: 10.0, Value: 5},
		{Frequency: 20.0, Value: 7},
	}

	assert.Equal(t, 5.0, c.ValueNear(12.0, 0.1))
	assert.Equal(t, 7.0, c.ValueNear(18.0, 0.1))

	// Equidistant target: the earlier sample in sorted order wins.
	assert.Equal(t, 5.0, c.ValueNear(15.0, 0.1))
}

func TestValueNearEmptyCurve(t *testing.T) {
	assert.Equal(t, 0.0, Curve{}.ValueNear(10.0, 0.5))
}
