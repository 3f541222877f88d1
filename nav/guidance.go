// nav/guidance.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	gomath "math"
	"sync"

	"github.com/uaspilot/orbit/math"
	"github.com/uaspilot/orbit/util"
)

const gravity = 9.81 // m/s^2

// Guidance owns the orbit parameters and produces one Output per control
// cycle via Step. The computation itself is stateless between cycles; the
// mutex only makes spec/params updates from a supervising mode manager
// safe against a concurrently running control loop.
type Guidance struct {
	mu     sync.Mutex
	spec   OrbitSpec
	params ControlParams
}

func NewGuidance(spec OrbitSpec, params ControlParams) *Guidance {
	g := &Guidance{}
	g.Configure(spec, params)
	return g
}

// Configure installs or replaces the orbit and law parameters; safe to
// call at any time between cycles. Missing or non-positive tunables are
// resolved to their defaults here, once, rather than checked each cycle.
func (g *Guidance) Configure(spec OrbitSpec, params ControlParams) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spec = spec
	g.params = params.withDefaults()
}

func (g *Guidance) SetDirection(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spec.Direction = d
}

func (g *Guidance) SetRadius(radius float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spec.Radius = radius
}

func (g *Guidance) SetCenter(p math.Point2LL) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spec.Center = p
}

// Center returns the currently configured orbit center; mode-transition
// logic uses it to decide when to exit the orbit and resume the route.
func (g *Guidance) Center() math.Point2LL {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spec.Center
}

// Spec returns a snapshot of the current orbit configuration.
func (g *Guidance) Spec() OrbitSpec {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spec
}

// Step runs one guidance cycle. It is a pure function of the snapshotted
// inputs: no state is carried from one cycle to the next, so parameter
// changes simply take effect on the following call.
func (g *Guidance) Step(ac State) Output {
	g.mu.Lock()
	spec, params := g.spec, g.params
	g.mu.Unlock()

	radius := spec.EffectiveRadius()
	sign := spec.Direction.Sign()

	courseToCenter, dist := math.CourseAndDistance(ac.Position, spec.Center)
	course := targetCourse(courseToCenter, dist, radius, sign)
	bank := bankAngle(ac.Track, course, ac.Groundspeed, radius, sign, params)

	// Advisory only: don't report a diverging ETA when nearly stationary.
	eta := util.Select(ac.Groundspeed > 0.1, dist/ac.Groundspeed, 0)

	OrbitLog(OrbitLogState, "dist=%.0f radius=%.0f crs=%.1f bank=%.1f eta=%.0f",
		dist, radius, course, bank, eta)

	return Output{
		TargetCourse:     course,
		TargetBank:       bank,
		DistanceToCenter: dist,
		ETAToCenter:      eta,
	}
}

// targetCourse computes the ground course that both orbits the center and
// drives the radial distance toward the target radius. On the circle it is
// the tangent; inside and outside it is biased by up to 90 degrees in
// proportion to the radial error, so the correction is continuous and
// bounded and never demands a heading reversal.
func targetCourse(courseToCenter, dist, radius, sign float32) float32 {
	// Ideal ground course for an aircraft exactly on the circle.
	ideal := math.NormalizeHeading(courseToCenter + sign*90)

	crs := ideal
	if dist < radius {
		// Inside the circle; swing the course outward to expand. At the
		// center this points directly away from the tangent, i.e. pure
		// expansion.
		crs += sign * 90 * (1 - dist/radius)
	} else if dist > radius {
		// Outside; tighten back toward the circle. The correction
		// saturates at one radius of excess distance.
		excess := min(dist-radius, radius)
		crs -= sign * 90 * excess / radius
	}
	OrbitLog(OrbitLogCourse, "to-center=%.1f ideal=%.1f target=%.1f", courseToCenter, ideal, crs)
	return math.NormalizeHeading(crs)
}

// bankAngle is the L1 lateral-acceleration law: a damped second-order
// response to ground-track error, plus the steady centripetal acceleration
// that holds the circle at the current groundspeed. Using groundspeed
// rather than airspeed makes the law implicitly wind-aware.
func bankAngle(track, targetCourse, gs, radius, sign float32, params ControlParams) float32 {
	courseError := math.SignedHeadingDifference(track, targetCourse)

	omegaA := math.Sqrt(2) * gomath.Pi / params.L1Period
	accel := 2 * math.Sin(math.Radians(courseError)) * gs * omegaA
	idealAccel := sign * gs * gs / radius

	bank := -math.Degrees(math.Atan((idealAccel + accel) / gravity))
	OrbitLog(OrbitLogBank, "err=%.1f accel=%.2f ideal=%.2f bank=%.1f", courseError, accel, idealAccel, bank)
	return math.Clamp(bank, -params.BankLimit, params.BankLimit)
}
