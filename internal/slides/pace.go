package slides

import "time"

const (
	// paceAlpha weights the newest dwell observation in the moving average.
	paceAlpha = 0.3
	// paceBufferSeconds is added to every prediction so auto-advance never
	// fires sooner than the reader's historical average.
	paceBufferSeconds = 2.0
	// paceMinObservations gates autoplay until the estimate has some data
	// behind it.
	paceMinObservations = 3
)

// PaceEstimator predicts per-slide dwell time from observed reading pace
// using an exponential moving average. Session-scoped, never persisted;
// three scalar fields, O(1) everything.
type PaceEstimator struct {
	n   int
	ema float64
}

// NewPaceEstimator returns an estimator with no observations.
func NewPaceEstimator() *PaceEstimator {
	return &PaceEstimator{}
}

// AddObservation records how long one slide was displayed, in seconds.
// The first observation seeds the average directly.
func (p *PaceEstimator) AddObservation(seconds float64) {
	if seconds <= 0 {
		return
	}
	if p.n == 0 {
		p.ema = seconds
	} else {
		p.ema = paceAlpha*seconds + (1-paceAlpha)*p.ema
	}
	p.n++
}

// Predict returns the suggested auto-advance duration in seconds: the
// moving average plus a fixed safety buffer.
func (p *PaceEstimator) Predict() float64 {
	return p.ema + paceBufferSeconds
}

// PredictDelay is Predict as a time.Duration, for timer wiring.
func (p *PaceEstimator) PredictDelay() time.Duration {
	return time.Duration(p.Predict() * float64(time.Second))
}

// Ready reports whether enough dwell times have been observed to trust
// the estimate for autoplay.
func (p *PaceEstimator) Ready() bool {
	return p.n >= paceMinObservations
}

// Observations returns how many dwell times have been recorded.
func (p *PaceEstimator) Observations() int {
	return p.n
}

// Reset clears all state for a new session.
func (p *PaceEstimator) Reset() {
	p.n = 0
	p.ema = 0
}
