// Package numc provides the numeric array helpers used by the series package.
//
// The functions operate on plain []float64 slices and never modify their
// inputs. Reductions are NaN aware: non-finite entries are ignored.
//
// # Reductions
//
//	sum := numc.SumFinite(values)   // 0 when nothing is finite
//	mean := numc.Mean(values)       // NaN when nothing is finite
//	std := numc.Std(values, 1)      // sample standard deviation
//
// # Quantiles
//
// Quantiles follow the NumPy "linear" percentile convention: the finite
// values are sorted and the rank q*(n-1) is interpolated linearly.
//
//	numc.Quantile([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 0.3) // 2.7
//
// # Window Functions
//
// Triangular and exponential windows match scipy.signal:
//
//	numc.Triang(5, true)                  // [1/3 2/3 1 2/3 1/3]
//	numc.Exponential(5, 3.0, false, 1)    // decay centred on position 1
//
// # Comparisons
//
// EqualHandlingNaNs and AlmostEqualHandlingNaNs treat NaN as equal to NaN,
// which ordinary float comparison does not.
package numc
