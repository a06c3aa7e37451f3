package frf

import (
	"math"
	"sort"
)

// Sample is one measured point of a frequency-response curve: the excitation
// frequency in Hz and the imaginary part of the transfer function at that
// frequency.
type Sample struct {
	Frequency float64 `json:"frequency"`
	Value     float64 `json:"value"`
}

// Curve is an ordered sequence of samples for one measurement channel.
// All analysis functions require the curve to be sorted ascending by
// frequency; detection on an unsorted curve is undefined.
type Curve []Sample

// Sort orders the curve ascending by frequency in place. Samples with equal
// frequency keep their original relative order.
func (c Curve) Sort() {
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Frequency < c[j].Frequency
	})
}

// Band returns the portion of the curve with frequency in [fMin, fMax],
// bounds inclusive. The receiver must be sorted; the result shares the
// receiver's backing array.
func (c Curve) Band(fMin, fMax float64) Curve {
	lo := sort.Search(len(c), func(i int) bool { return c[i].Frequency >= fMin })
	hi := sort.Search(len(c), func(i int) bool { return c[i].Frequency > fMax })
	if lo >= hi {
		return Curve{}
	}
	return c[lo:hi]
}

// ValueNear returns a representative value of the curve near the target
// frequency: the maximum value among samples with frequency in
// [target-window, target+window]. Taking the window maximum deliberately
// favors a nearby peak even when the consensus mode frequency and this
// channel's measured peak frequency differ slightly.
//
// If the window contains no samples, the value at the sample closest to the
// target is returned, earlier samples winning ties. An empty curve yields 0;
// callers are expected to validate channel completeness beforehand.
func (c Curve) ValueNear(target, window float64) float64 {
	if len(c) == 0 {
		return 0
	}

	found := false
	maxVal := math.Inf(-1)
	for _, s := range c {
		if s.Frequency >= target-window && s.Frequency <= target+window {
			found = true
			if s.Value > maxVal {
				maxVal = s.Value
			}
		}
	}
	if found {
		return maxVal
	}

	// Fallback: nearest sample by absolute frequency distance.
	best := 0
	bestDist := math.Abs(c[0].Frequency - target)
	for i := 1; i < len(c); i++ {
		if d := math.Abs(c[i].Frequency - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return c[best].Value
}
