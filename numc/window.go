package numc

import "math"

// Triang returns a triangular window of length m, matching
// scipy.signal.windows.triang. When sym is false the periodic variant is
// returned: a window of length m+1 with the last sample dropped.
func Triang(m int, sym bool) []float64 {
	if m <= 0 {
		return []float64{}
	}
	if m == 1 {
		return []float64{1}
	}

	if !sym {
		m++
	}
	half := (m + 1) / 2

	ramp := make([]float64, half)
	var w []float64
	if m%2 == 0 {
		for i := range ramp {
			ramp[i] = (2*float64(i+1) - 1) / float64(m)
		}
		w = append(ramp, Reverse(ramp)...)
	} else {
		for i := range ramp {
			ramp[i] = 2 * float64(i+1) / (float64(m) + 1)
		}
		w = append(ramp, Reverse(ramp)[1:]...)
	}

	if !sym {
		return w[:len(w)-1]
	}
	return w
}

// Exponential returns an exponential (Poisson) window of length m with decay
// tau, matching scipy.signal.windows.exponential.
//
// A negative center places the peak in the middle of the window. When sym is
// true the center is always the middle of the window. When sym is false and m
// is even, a window of length m+1 is computed and its last sample dropped.
func Exponential(m int, tau float64, sym bool, center float64) []float64 {
	if m < 1 {
		return []float64{}
	}
	if m == 1 {
		return []float64{1}
	}

	extended := !sym && m%2 == 0
	if extended {
		m++
	}
	if sym || center < 0 {
		center = float64(m-1) / 2
	}

	w := make([]float64, m)
	for i := range w {
		w[i] = math.Exp(-math.Abs(float64(i)-center) / tau)
	}

	if extended {
		return w[:m-1]
	}
	return w
}
