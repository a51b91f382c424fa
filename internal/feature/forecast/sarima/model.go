// Package sarima fits a seasonal autoregressive integrated moving average
// model to a daily price series and projects future values.
//
// The order is fixed: non-seasonal (0,1,1) and seasonal (2,1,1) with period 12,
// matching the reference configuration. It is not auto-selected; changing it
// changes the forecast output for every series.
package sarima

import (
	"fmt"

	"energy_backend/internal/feature/forecast/domain"
)

const (
	// Period is the fixed seasonal period.
	Period = 12

	// minObservations is the minimum series length required to fit: two full
	// seasonal cycles, so the seasonal difference leaves usable residuals.
	minObservations = 2 * Period
)

// Model is an immutable fitted model. Refitting on new data produces a new
// value; a Model never mutates after Fit returns.
type Model struct {
	phi1, phi2 float64 // seasonal AR coefficients at lags Period and 2*Period
	theta      float64 // non-seasonal MA(1) coefficient
	bigTheta   float64 // seasonal MA coefficient at lag Period

	x     []float64 // regularly differenced series
	w     []float64 // seasonally differenced x
	resid []float64 // in-sample residuals at the fitted parameters
	last  float64   // last observed level
}

// Fit estimates the model on the full historical series by minimizing the
// conditional sum of squares. Fitting is a one-time, CPU-bound optimization;
// callers should keep it off the request path.
func Fit(series []float64) (*Model, error) {
	if len(series) < minObservations {
		return nil, fmt.Errorf("%w: need at least %d observations, got %d",
			domain.ErrModelFit, minObservations, len(series))
	}

	x := diff(series)
	w := seasonalDiff(x, Period)

	params := minimize(func(p []float64) float64 {
		return css(w, p)
	}, make([]float64, 4))

	m := &Model{
		phi1:     params[0],
		phi2:     params[1],
		theta:    params[2],
		bigTheta: params[3],
		x:        x,
		w:        w,
		last:     series[len(series)-1],
	}
	m.resid = residuals(w, params)
	return m, nil
}

// Forecast predicts n sequential future levels starting right after the last
// observation. Differencing is inverted internally, so the returned values are
// levels, not differences.
func (m *Model) Forecast(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidArgument, n)
	}

	ws := append(make([]float64, 0, len(m.w)+n), m.w...)
	xs := append(make([]float64, 0, len(m.x)+n), m.x...)
	level := m.last

	out := make([]float64, 0, n)
	for h := 1; h <= n; h++ {
		t := len(ws)
		pred := m.phi1*at(ws, t-Period) +
			m.phi2*at(ws, t-2*Period) +
			m.theta*at(m.resid, t-1) +
			m.bigTheta*at(m.resid, t-Period) +
			m.theta*m.bigTheta*at(m.resid, t-Period-1)
		ws = append(ws, pred)

		// Invert the seasonal difference, then the regular one.
		xNew := pred + xs[t]
		xs = append(xs, xNew)
		level += xNew
		out = append(out, level)
	}
	return out, nil
}

// css is the conditional sum of squares objective with a penalty keeping the
// parameters inside the invertibility/stationarity region.
func css(w []float64, p []float64) float64 {
	phi1, phi2, theta, bigTheta := p[0], p[1], p[2], p[3]

	const bound = 0.99
	if abs(theta) >= bound || abs(bigTheta) >= bound ||
		abs(phi2) >= bound || phi1+phi2 >= bound || phi2-phi1 >= bound {
		return penalty(p)
	}

	var sse float64
	e := make([]float64, len(w))
	for t := range w {
		pred := phi1*at(w, t-Period) +
			phi2*at(w, t-2*Period) +
			theta*at(e, t-1) +
			bigTheta*at(e, t-Period) +
			theta*bigTheta*at(e, t-Period-1)
		e[t] = w[t] - pred
		sse += e[t] * e[t]
	}
	return sse
}

// residuals recomputes the in-sample residual sequence at the given parameters.
func residuals(w []float64, p []float64) []float64 {
	phi1, phi2, theta, bigTheta := p[0], p[1], p[2], p[3]
	e := make([]float64, len(w))
	for t := range w {
		pred := phi1*at(w, t-Period) +
			phi2*at(w, t-2*Period) +
			theta*at(e, t-1) +
			bigTheta*at(e, t-Period) +
			theta*bigTheta*at(e, t-Period-1)
		e[t] = w[t] - pred
	}
	return e
}

// penalty grows with the distance from the origin so the simplex is pushed
// back toward the feasible region.
func penalty(p []float64) float64 {
	v := 1e12
	for _, c := range p {
		v += 1e12 * abs(c)
	}
	return v
}

// at reads s[i], treating positions before the start of the sample as zero.
func at(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func diff(s []float64) []float64 {
	out := make([]float64, len(s)-1)
	for i := range out {
		out[i] = s[i+1] - s[i]
	}
	return out
}

func seasonalDiff(s []float64, period int) []float64 {
	out := make([]float64, len(s)-period)
	for i := range out {
		out[i] = s[i+period] - s[i]
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
