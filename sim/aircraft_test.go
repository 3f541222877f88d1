// sim/aircraft_test.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"testing"

	"github.com/uaspilot/orbit/math"
	"github.com/uaspilot/orbit/nav"
)

func TestRollSlew(t *testing.T) {
	ac := NewAircraft(math.Point2LL{-93.2, 45.1}, 0, 20)

	ac.Step(0.1, 20)
	if ac.Bank != 4 {
		t.Errorf("bank after one step = %f, expected 4 (roll rate limited)", ac.Bank)
	}
	for i := 0; i < 20; i++ {
		ac.Step(0.1, 20)
	}
	if ac.Bank != 20 {
		t.Errorf("bank = %f, expected to settle at command 20", ac.Bank)
	}
}

func TestTurnDirection(t *testing.T) {
	right := NewAircraft(math.Point2LL{-93.2, 45.1}, 0, 20)
	right.Bank = 15
	right.Step(1, 15)
	if right.Heading <= 0 || right.Heading > 90 {
		t.Errorf("positive bank: heading = %f, expected right turn", right.Heading)
	}

	left := NewAircraft(math.Point2LL{-93.2, 45.1}, 0, 20)
	left.Bank = -15
	left.Step(1, -15)
	if left.Heading < 270 || left.Heading >= 360 {
		t.Errorf("negative bank: heading = %f, expected left turn", left.Heading)
	}
}

func TestWindTriangle(t *testing.T) {
	ac := NewAircraft(math.Point2LL{-93.2, 45.1}, 0, 10)
	ac.WindSpeed = 10
	ac.WindTo = 90

	if trk := ac.Track(); math.Abs(trk-45) > 0.01 {
		t.Errorf("track = %f, expected 45 with quartering wind", trk)
	}
	if gs := ac.Groundspeed(); math.Abs(gs-14.142) > 0.01 {
		t.Errorf("groundspeed = %f, expected ~14.142", gs)
	}
}

func TestStationary(t *testing.T) {
	ac := NewAircraft(math.Point2LL{-93.2, 45.1}, 123, 0)
	p0 := ac.Position()
	ac.Step(1, 0)
	if ac.Position() != p0 {
		t.Errorf("stationary aircraft moved: %v -> %v", p0, ac.Position())
	}
	if ac.Track() != 123 {
		t.Errorf("track = %f, expected heading fallback 123", ac.Track())
	}
}

// flyOrbit closes the loop between the guidance law and the aircraft model
// and returns the radial distances observed over the final 100 seconds.
func flyOrbit(t *testing.T, ac *Aircraft, g *nav.Guidance, duration float32) []float32 {
	t.Helper()
	const dt = 0.1
	var tail []float32
	for ts := float32(0); ts < duration; ts += dt {
		out := g.Step(ac.State())
		if out.TargetBank < -nav.DefaultBankLimit || out.TargetBank > nav.DefaultBankLimit {
			t.Fatalf("t=%.1f: bank command %f outside limit", ts, out.TargetBank)
		}
		ac.Step(dt, out.TargetBank)
		if ts > duration-100 {
			tail = append(tail, out.DistanceToCenter)
		}
	}
	return tail
}

func checkConverged(t *testing.T, dists []float32, radius, maxErr, maxMeanErr float32) {
	t.Helper()
	var sum float32
	for _, d := range dists {
		err := math.Abs(d - radius)
		sum += err
		if err > maxErr {
			t.Fatalf("radial error %.1f m exceeds %.1f m after convergence window", err, maxErr)
		}
	}
	if mean := sum / float32(len(dists)); mean > maxMeanErr {
		t.Errorf("mean radial error %.1f m exceeds %.1f m", mean, maxMeanErr)
	}
}

func TestOrbitConvergence(t *testing.T) {
	center := math.Point2LL{-93.2, 45.1}

	tests := []struct {
		name      string
		direction nav.Direction
		bearing   float32 // initial bearing from center
		dist      float32 // initial distance from center
		heading   float32
	}{
		{"ccw from outside", nav.CounterClockwise, 0, 400, 90},
		{"cw from outside", nav.Clockwise, 0, 400, 270},
		{"ccw from inside", nav.CounterClockwise, 90, 40, 0},
		{"cw near center", nav.Clockwise, 200, 5, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := nav.NewGuidance(nav.OrbitSpec{
				Center:    center,
				Radius:    150,
				Direction: tt.direction,
			}, nav.ControlParams{})

			ac := NewAircraft(math.Offset2LL(center, tt.bearing, tt.dist), tt.heading, 20)
			tail := flyOrbit(t, ac, g, 500)
			checkConverged(t, tail, 150, 30, 15)
		})
	}
}

func TestOrbitConvergenceInWind(t *testing.T) {
	// The law consumes groundspeed, so a steady wind changes the bank it
	// commands around the circle without any explicit wind input.
	center := math.Point2LL{-93.2, 45.1}
	g := nav.NewGuidance(nav.OrbitSpec{
		Center:    center,
		Radius:    150,
		Direction: nav.CounterClockwise,
	}, nav.ControlParams{})

	ac := NewAircraft(math.Offset2LL(center, 45, 350), 180, 20)
	ac.WindSpeed = 5
	ac.WindTo = 90
	tail := flyOrbit(t, ac, g, 500)
	checkConverged(t, tail, 150, 40, 20)
}

func TestDirectionReversalMidOrbit(t *testing.T) {
	// Reversing direction mid-orbit must re-converge without manual
	// transition handling.
	center := math.Point2LL{-93.2, 45.1}
	g := nav.NewGuidance(nav.OrbitSpec{
		Center:    center,
		Radius:    150,
		Direction: nav.CounterClockwise,
	}, nav.ControlParams{})

	ac := NewAircraft(math.Offset2LL(center, 0, 150), 270, 20)
	flyOrbit(t, ac, g, 200)

	g.SetDirection(nav.Clockwise)
	tail := flyOrbit(t, ac, g, 500)
	checkConverged(t, tail, 150, 30, 15)
}
