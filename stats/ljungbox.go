package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/sartorproj/goseries/timeseries"
)

// ErrTooFewObservations is returned by the portmanteau tests for series with
// fewer than 10 finite observations.
var ErrTooFewObservations = errors.New("at least 10 finite observations are required")

// PortmanteauResult is the result of a Ljung-Box or Box-Pierce test.
type PortmanteauResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox tests for autocorrelation up to lag lags. The null hypothesis is
// that there is none; a p-value below 0.05 rejects it. fitdf is the number
// of parameters estimated to produce the series, zero for raw data.
func LjungBox(ts *timeseries.TimeSeries, lags, fitdf int) (*PortmanteauResult, error) {
	return portmanteau(ts, lags, fitdf, func(acf []float64, n float64) float64 {
		q := 0.0
		for k := 1; k < len(acf); k++ {
			q += acf[k] * acf[k] / (n - float64(k))
		}
		return n * (n + 2) * q
	})
}

// BoxPierce is the Box-Pierce variant of LjungBox.
func BoxPierce(ts *timeseries.TimeSeries, lags, fitdf int) (*PortmanteauResult, error) {
	return portmanteau(ts, lags, fitdf, func(acf []float64, n float64) float64 {
		q := 0.0
		for k := 1; k < len(acf); k++ {
			q += acf[k] * acf[k]
		}
		return n * q
	})
}

func portmanteau(ts *timeseries.TimeSeries, lags, fitdf int, statistic func(acf []float64, n float64) float64) (*PortmanteauResult, error) {
	n := ts.Series().FiniteLen()
	if n < 10 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewObservations, n)
	}
	if lags < 1 {
		return nil, fmt.Errorf("lags must be positive: got %d", lags)
	}

	acf := ACF(ts, lags)
	if acf == nil {
		return nil, errors.New("autocorrelation is undefined for a constant series")
	}
	lags = len(acf) - 1

	dof := max(lags-fitdf, 1)
	q := statistic(acf, float64(n))
	return &PortmanteauResult{
		Statistic: q,
		PValue:    chiSquaredSurvival(q, dof),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// chiSquaredSurvival returns P(X > x) for X chi-squared with k degrees of
// freedom.
func chiSquaredSurvival(x float64, k int) float64 {
	if x <= 0 {
		return 1
	}
	return mathext.GammaIncRegComp(float64(k)/2, x/2)
}

// DurbinWatson returns the Durbin-Watson statistic of residuals: near 2
// without first order autocorrelation, below 2 for positive and above 2
// for negative autocorrelation. NaN entries are skipped. Returns NaN when
// all residuals are zero.
func DurbinWatson(residuals *timeseries.TimeSeries) float64 {
	s := residuals.Series()
	den := s.Pow(2).Sum()
	if math.IsNaN(den) || den == 0 {
		return math.NaN()
	}
	return s.Diff().Pow(2).Sum() / den
}
