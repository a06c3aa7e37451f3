package frf

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ClusterGroups groups the peak frequencies of many channels by proximity.
// Every curve places its peaks at slightly different frequencies, so nearby
// peaks across channels are collected into one group.
//
// The grouping is a single greedy left-to-right pass over the sorted,
// flattened frequency list: a value joins the open group iff it lies within
// tolerance of the group's running mean, otherwise it starts a new group.
// Because the membership test uses the running mean rather than the first or
// last member, group boundaries follow mean drift and depend on processing
// order. That behavior is relied upon and must not be replaced by a
// symmetric clustering rule: doing so changes mode counts on real data.
//
// Input lists need not be sorted; empty lists are ignored. Groups are
// returned ascending with their members sorted.
func ClusterGroups(peakFreqs [][]float64, tolerance float64) [][]float64 {
	var flat []float64
	for _, freqs := range peakFreqs {
		flat = append(flat, freqs...)
	}
	if len(flat) == 0 {
		return nil
	}
	sort.Float64s(flat)

	groups := [][]float64{{flat[0]}}
	for _, f := range flat[1:] {
		open := groups[len(groups)-1]
		if math.Abs(f-stat.Mean(open, nil)) <= tolerance {
			groups[len(groups)-1] = append(open, f)
		} else {
			groups = append(groups, []float64{f})
		}
	}
	return groups
}

// ClusterModes merges the peak frequencies of many channels into consensus
// mode frequencies: groups with fewer than minSupport members are discarded
// as noise, and each surviving group contributes its member mean. The result
// is ascending. No peaks anywhere, or no group with enough support, yields an
// empty result; that is a valid "no modes found" outcome, not a fault.
func ClusterModes(peakFreqs [][]float64, tolerance float64, minSupport int) []float64 {
	var modes []float64
	for _, g := range ClusterGroups(peakFreqs, tolerance) {
		if len(g) >= minSupport {
			modes = append(modes, stat.Mean(g, nil))
		}
	}
	return modes
}
