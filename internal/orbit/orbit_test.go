package orbit

import (
	"math"
	"testing"
)

func TestFocus(t *testing.T) {
	alpha, beta := Focus(Location{X: 0, Y: 0.5}, 0)
	if math.Abs(alpha-(-1.5)) > 1e-12 {
		t.Errorf("alpha = %v, want -1.5", alpha)
	}
	if math.Abs(beta) > 1e-12 {
		t.Errorf("beta = %v, want 0", beta)
	}

	// spin offset shifts azimuth only
	alpha2, beta2 := Focus(Location{X: 0, Y: 0.5}, 0.25)
	if math.Abs((alpha-alpha2)-0.25) > 1e-12 {
		t.Errorf("spin offset not applied: %v vs %v", alpha, alpha2)
	}
	if beta2 != beta {
		t.Error("spin offset leaked into elevation")
	}
}

func TestTrackerConverges(t *testing.T) {
	tr := &Tracker{Target: Location{X: 0.8, Y: 0.2}, Speed: 1}
	alpha, beta := 0.0, 0.0

	arrived := false
	for i := 0; i < 5000; i++ {
		if tr.Step(0, &alpha, &beta) {
			arrived = true
			break
		}
	}
	if !arrived {
		t.Fatal("tracker never arrived")
	}

	wantAlpha := -(0.8 * math.Pi) - 1.5
	wantBeta := 0.2*3 - 1.5
	if math.Abs(alpha-wantAlpha) > 0.05 {
		t.Errorf("alpha = %v, want ~%v", alpha, wantAlpha)
	}
	if math.Abs(beta-wantBeta) > 0.05 {
		t.Errorf("beta = %v, want ~%v", beta, wantBeta)
	}
}

func TestTrackerArrivedIsStable(t *testing.T) {
	tr := &Tracker{Target: Location{X: 0.5, Y: 0.5}, Speed: 1}
	alpha, beta := Focus(Location{X: 0.5, Y: 0.5}, 0)

	if !tr.Step(0, &alpha, &beta) {
		t.Fatal("tracker should report arrival when already on target")
	}
	a0, b0 := alpha, beta
	tr.Step(0, &alpha, &beta)
	if alpha != a0 || beta != b0 {
		t.Error("tracker moved the camera after arrival")
	}
}
