package frf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterModesEmptyInput(t *testing.T) {
	assert.Empty(t, ClusterModes(nil, 0.5, 1))
	assert.Empty(t, ClusterModes([][]float64{}, 0.5, 1))
	assert.Empty(t, ClusterModes([][]float64{{}, nil, {}}, 0.5, 1))
}

func TestClusterModesSeparatedValues(t *testing.T) {
	input := [][]float64{{10, 20}, {30}}

	// Pairwise distances all exceed the tolerance: singleton clusters.
	modes := ClusterModes(input, 0.5, 1)
	assert.Equal(t, []float64{10, 20, 30}, modes)

	// Singletons cannot meet a support requirement above 1.
	assert.Empty(t, ClusterModes(input, 0.5, 2))
}

func TestClusterModesMeanDriftFollowing(t *testing.T) {
	// b joins a's cluster (|1.0-0| <= 1.0). c is farther than the tolerance
	// from a but within it of the running mean 0.5, so it joins too.
	modes := ClusterModes([][]float64{{0, 1.0, 1.5}}, 1.0, 3)
	require.Len(t, modes, 1)
	assert.InDelta(t, (0+1.0+1.5)/3, modes[0], 1e-12)
}

func TestClusterModesAcrossChannels(t *testing.T) {
	input := [][]float64{{10.0, 10.3}, {10.1}}

	modes := ClusterModes(input, 0.5, 2)
	require.Len(t, modes, 1)
	assert.InDelta(t, 10.133333333, modes[0], 1e-6)

	assert.Empty(t, ClusterModes(input, 0.5, 4))
}

func TestClusterModesInputListsNeedNotBeSorted(t *testing.T) {
	modes := ClusterModes([][]float64{{25.0, 10.0}, {10.2, 24.8}}, 0.5, 2)
	require.Len(t, modes, 2)
	assert.InDelta(t, 10.1, modes[0], 1e-12)
	assert.InDelta(t, 24.9, modes[1], 1e-12)
}

func TestClusterModesOutputAscending(t *testing.T) {
	input := [][]float64{{46.05, 12.1}, {46.3, 12.0}, {33.7}}

	modes := ClusterModes(input, 0.8, 2)
	require.Len(t, modes, 2)
	assert.Less(t, modes[0], modes[1])
}
