package frf

// Peak is a single local extremum of one curve. Peaks are produced by the
// detection pass and immutable afterwards.
type Peak struct {
	Frequency float64 `json:"frequency"`
	Value     float64 `json:"value"`
}

// DetectPositivePeaks finds the strict local maxima of a sorted curve whose
// value reaches the magnitude threshold:
//
//	y[i-1] < y[i] > y[i+1]  and  y[i] >= level
//
// Both neighbor comparisons are strict, so a flat-topped plateau produces no
// peak. Curves with fewer than 3 samples have no interior extremum and yield
// an empty list. A level of 0 matches any strict local maximum, including
// ones near the noise floor; choosing the threshold is the caller's job.
func DetectPositivePeaks(c Curve, level float64) []Peak {
	if len(c) < 3 {
		return nil
	}

	var peaks []Peak
	for i := 1; i < len(c)-1; i++ {
		y := c[i].Value
		if c[i-1].Value < y && y > c[i+1].Value && y >= level {
			peaks = append(peaks, Peak{Frequency: c[i].Frequency, Value: y})
		}
	}
	return peaks
}

// DetectNegativePeaks finds the strict local minima whose value reaches
// -level:
//
//	y[i-1] > y[i] < y[i+1]  and  y[i] <= -level
func DetectNegativePeaks(c Curve, level float64) []Peak {
	if len(c) < 3 {
		return nil
	}

	var peaks []Peak
	for i := 1; i < len(c)-1; i++ {
		y := c[i].Value
		if c[i-1].Value > y && y < c[i+1].Value && y <= -level {
			peaks = append(peaks, Peak{Frequency: c[i].Frequency, Value: y})
		}
	}
	return peaks
}

// DetectPeaks returns the positive and negative peaks of a sorted curve
// combined into one list, ascending by frequency. A positive and a negative
// peak cannot share a sample index, so the merge never sees a tie.
func DetectPeaks(c Curve, level float64) []Peak {
	pos := DetectPositivePeaks(c, level)
	neg := DetectNegativePeaks(c, level)

	merged := make([]Peak, 0, len(pos)+len(neg))
	i, j := 0, 0
	for i < len(pos) && j < len(neg) {
		if pos[i].Frequency < neg[j].Frequency {
			merged = append(merged, pos[i])
			i++
		} else {
			merged = append(merged, neg[j])
			j++
		}
	}
	merged = append(merged, pos[i:]...)
	merged = append(merged, neg[j:]...)
	return merged
}

// PeakFrequencies extracts just the frequency positions of a peak list.
// Amplitude information does not propagate into clustering.
func PeakFrequencies(peaks []Peak) []float64 {
	if len(peaks) == 0 {
		return nil
	}
	freqs := make([]float64, len(peaks))
	for i, p := range peaks {
		freqs[i] = p.Frequency
	}
	return freqs
}
