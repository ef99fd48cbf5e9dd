package stats

import (
	"math"

	"github.com/sartorproj/goseries/timeseries"
)

// ACF calculates the autocorrelation function for lags 0 to maxLag.
// Pairs holding a NaN are left out of each lag sum. Returns nil for an
// empty or constant series.
func ACF(ts *timeseries.TimeSeries, maxLag int) []float64 {
	s := ts.Series()
	n := s.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	dev := s.SubScalar(s.Mean())
	variance := dev.Mul(dev).Sum()
	if math.IsNaN(variance) || variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		acf[k] = dev.ILoc(k, n, 1).Mul(dev.ILoc(0, n-k, 1)).Sum() / variance
	}
	return acf
}

// PACF calculates the partial autocorrelation function for lags 0 to maxLag
// with the Durbin-Levinson recursion. The value at lag 0 is 1.
func PACF(ts *timeseries.TimeSeries, maxLag int) []float64 {
	acf := ACF(ts, maxLag)
	if len(acf) < 2 {
		return nil
	}
	maxLag = len(acf) - 1

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1
	pacf[1] = acf[1]

	// phi holds the coefficients of the AR(k-1) fit, phi[j] for lag j.
	phi := make([]float64, maxLag+1)
	phi[1] = acf[1]
	next := make([]float64, maxLag+1)

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[j] * acf[k-j]
			den -= phi[j] * acf[j]
		}
		if den == 0 {
			break
		}

		pacf[k] = num / den
		for j := 1; j < k; j++ {
			next[j] = phi[j] - pacf[k]*phi[k-j]
		}
		next[k] = pacf[k]
		phi, next = next, phi
	}

	return pacf
}

// Correlogram holds ACF or PACF values with their 95% confidence bound.
type Correlogram struct {
	Lags      []int
	Values    []float64
	ConfBound float64 // ±1.96/sqrt(n) over the finite observations
}

// Significant returns the lags above zero whose value exceeds the bound.
func (c *Correlogram) Significant() []int {
	return SignificantLags(c.Values, c.ConfBound)
}

// ACFWithConfidence calculates the ACF with its confidence bound.
func ACFWithConfidence(ts *timeseries.TimeSeries, maxLag int) *Correlogram {
	return correlogram(ts, ACF(ts, maxLag))
}

// PACFWithConfidence calculates the PACF with its confidence bound.
func PACFWithConfidence(ts *timeseries.TimeSeries, maxLag int) *Correlogram {
	return correlogram(ts, PACF(ts, maxLag))
}

func correlogram(ts *timeseries.TimeSeries, values []float64) *Correlogram {
	if values == nil {
		return nil
	}
	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}
	return &Correlogram{
		Lags:      lags,
		Values:    values,
		ConfBound: 1.96 / math.Sqrt(float64(ts.Series().FiniteLen())),
	}
}

// SignificantLags returns the lags above zero where |values| exceeds confBound.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
