// nav/nav.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package nav implements the orbit guidance mode of the autopilot: given
// the aircraft's position, ground track, and groundspeed each control
// cycle, it produces the ground-track and bank-angle commands that fly a
// circle of the configured radius around a fixed point, tightening or
// widening the turn to converge on that radius.
package nav

import (
	"errors"
	"strings"

	"github.com/uaspilot/orbit/math"
)

var (
	ErrInvalidDirection = errors.New("invalid orbit direction")
)

// MinRadius is the floor in meters applied to the configured orbit radius
// before it is used in any divisor; smaller circles are not physically
// meaningful for control.
const MinRadius = 10

const (
	DefaultBankLimit = 20 // degrees
	DefaultL1Period  = 25 // seconds
)

// Direction gives the direction of travel around the orbit.
type Direction int

const (
	CounterClockwise Direction = iota // "left" in pilot terms
	Clockwise                         // "right"
)

// Sign returns the multiplier applied to every direction-dependent term of
// the guidance law: +1 counter-clockwise, -1 clockwise.
func (d Direction) Sign() float32 {
	if d == Clockwise {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Clockwise {
		return "right"
	}
	return "left"
}

// ParseDirection accepts both the pilot-facing spellings used in task
// configurations ("left"/"right") and the geometric ones.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "ccw", "counterclockwise":
		return CounterClockwise, nil
	case "right", "cw", "clockwise":
		return Clockwise, nil
	}
	return CounterClockwise, ErrInvalidDirection
}

// OrbitSpec is the target to fly around. Radius and Direction may be
// changed mid-orbit by a supervising mode manager; Center is normally set
// once per orbit activation.
type OrbitSpec struct {
	Center    math.Point2LL
	Radius    float32 // meters
	Direction Direction

	// Passthrough targets for the altitude and speed loops, carried from
	// the task configuration but not consumed by the guidance law. Zero
	// means unset.
	TargetAGL   float32 // feet
	TargetSpeed float32 // knots
}

// EffectiveRadius returns the configured radius with the MinRadius floor
// applied.
func (s OrbitSpec) EffectiveRadius() float32 {
	return max(s.Radius, MinRadius)
}

// ControlParams are the tunables of the L1 lateral controller. They vary
// slowly and are resolved against defaults once at configuration time.
type ControlParams struct {
	BankLimit float32 // degrees; positive
	L1Period  float32 // seconds; shorter = more aggressive, less damped
}

func (p ControlParams) withDefaults() ControlParams {
	if !(p.BankLimit > 0) {
		p.BankLimit = DefaultBankLimit
	}
	if !(p.L1Period > 0) {
		p.L1Period = DefaultL1Period
	}
	return p
}

// State is the per-cycle snapshot of the aircraft as resolved by the
// navigation subsystem.
type State struct {
	Position    math.Point2LL
	Heading     float32 // true heading, degrees; not used by the law itself
	Track       float32 // direction of actual travel over ground, degrees [0,360)
	Groundspeed float32 // m/s, non-negative
}

// Output is the result of one guidance cycle. TargetCourse and TargetBank
// feed the flight control system; the distance and ETA are advisory, for
// display and telemetry.
type Output struct {
	TargetCourse     float32 // degrees [0,360)
	TargetBank       float32 // degrees, within [-BankLimit, BankLimit]
	DistanceToCenter float32 // meters
	ETAToCenter      float32 // seconds; 0 when nearly stationary
}
