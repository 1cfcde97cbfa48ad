package slides

import (
	"math"
	"testing"
)

func TestPaceFirstObservationSeedsAverage(t *testing.T) {
	p := NewPaceEstimator()
	p.AddObservation(10)

	if got, want := p.Predict(), 10+paceBufferSeconds; math.Abs(got-want) > 1e-9 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestPaceEMAUpdate(t *testing.T) {
	p := NewPaceEstimator()
	p.AddObservation(10)
	p.AddObservation(20)

	// 0.3*20 + 0.7*10 = 13
	if got, want := p.Predict(), 13+paceBufferSeconds; math.Abs(got-want) > 1e-9 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestPaceMonotonicity(t *testing.T) {
	// A sustained run of slower reading must eventually raise the
	// prediction.
	p := NewPaceEstimator()
	for i := 0; i < 5; i++ {
		p.AddObservation(5)
	}
	before := p.Predict()

	for i := 0; i < 20; i++ {
		p.AddObservation(15)
	}
	if after := p.Predict(); after <= before {
		t.Errorf("Predict() = %v after slower observations, want > %v", after, before)
	}
}

func TestPaceReadyGating(t *testing.T) {
	p := NewPaceEstimator()
	for i := 0; i < paceMinObservations-1; i++ {
		if p.Ready() {
			t.Fatalf("Ready() true after %d observations", i)
		}
		p.AddObservation(8)
	}
	p.AddObservation(8)
	if !p.Ready() {
		t.Errorf("Ready() false after %d observations", p.Observations())
	}
}

func TestPaceIgnoresNonPositive(t *testing.T) {
	p := NewPaceEstimator()
	p.AddObservation(0)
	p.AddObservation(-3)
	if p.Observations() != 0 {
		t.Errorf("Observations() = %d, want 0", p.Observations())
	}
}

func TestPaceReset(t *testing.T) {
	p := NewPaceEstimator()
	p.AddObservation(10)
	p.AddObservation(10)
	p.AddObservation(10)
	p.Reset()

	if p.Ready() {
		t.Error("Ready() true after Reset")
	}
	if got := p.Predict(); math.Abs(got-paceBufferSeconds) > 1e-9 {
		t.Errorf("Predict() = %v after Reset, want %v", got, paceBufferSeconds)
	}
}
