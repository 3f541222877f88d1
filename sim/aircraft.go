// sim/aircraft.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sim provides a small kinematic aircraft model for exercising the
// guidance law in a closed loop: bank commands roll the aircraft at a
// finite rate, the bank turns the air vector through the coordinated-turn
// relation, and an optional steady wind offsets the ground vector so the
// wind-awareness of the groundspeed-based law can be observed.
package sim

import (
	gomath "math"

	"github.com/uaspilot/orbit/math"
	"github.com/uaspilot/orbit/nav"
)

const gravity = 9.81 // m/s^2

type Aircraft struct {
	Heading  float32 // direction of the air vector, degrees [0,360)
	TAS      float32 // true airspeed, m/s
	Bank     float32 // degrees, negative = left wing down
	RollRate float32 // max bank change, deg/s

	// Wind the aircraft is flying in, m/s.
	WindSpeed float32
	WindTo    float32 // direction the wind blows toward, degrees

	// position is integrated in float64 lat-long so that meter-scale
	// steps don't drown in single-precision rounding.
	lon, lat float64
}

func NewAircraft(p math.Point2LL, heading, tas float32) *Aircraft {
	return &Aircraft{
		Heading:  heading,
		TAS:      tas,
		RollRate: 40,
		lon:      float64(p.Longitude()),
		lat:      float64(p.Latitude()),
	}
}

func (a *Aircraft) Position() math.Point2LL {
	return math.Point2LL{float32(a.lon), float32(a.lat)}
}

// groundVector returns the east/north components of the ground velocity in
// m/s: the air vector plus wind.
func (a *Aircraft) groundVector() [2]float32 {
	h := math.Radians(a.Heading)
	v := [2]float32{a.TAS * math.Sin(h), a.TAS * math.Cos(h)}
	w := math.Radians(a.WindTo)
	v[0] += a.WindSpeed * math.Sin(w)
	v[1] += a.WindSpeed * math.Cos(w)
	return v
}

// Groundspeed returns the magnitude of the ground velocity in m/s.
func (a *Aircraft) Groundspeed() float32 {
	v := a.groundVector()
	return math.Sqrt(math.Sqr(v[0]) + math.Sqr(v[1]))
}

// Track returns the direction of travel over the ground in degrees [0,360).
func (a *Aircraft) Track() float32 {
	v := a.groundVector()
	if v[0] == 0 && v[1] == 0 {
		return a.Heading
	}
	return math.NormalizeHeading(math.Degrees(math.Atan2(v[0], v[1])))
}

// State snapshots the aircraft for a guidance cycle.
func (a *Aircraft) State() nav.State {
	return nav.State{
		Position:    a.Position(),
		Heading:     a.Heading,
		Track:       a.Track(),
		Groundspeed: a.Groundspeed(),
	}
}

// Step advances the aircraft by dt seconds, slewing the bank toward
// bankCmd at the roll rate and turning at the coordinated-turn rate for
// the current bank. Positive bank turns right; the guidance law's negative
// bank for a counter-clockwise orbit therefore turns left.
func (a *Aircraft) Step(dt float32, bankCmd float32) {
	maxDelta := a.RollRate * dt
	a.Bank += math.Clamp(bankCmd-a.Bank, -maxDelta, maxDelta)

	if a.TAS > 0 {
		turnRate := math.Degrees(gravity * math.Tan(math.Radians(a.Bank)) / a.TAS)
		a.Heading = math.NormalizeHeading(a.Heading + turnRate*dt)
	}

	v := a.groundVector()
	gs := math.Sqrt(math.Sqr(v[0]) + math.Sqr(v[1]))
	if gs == 0 {
		return
	}

	// Spherical-earth position step along the ground track.
	trk := float64(math.Atan2(v[0], v[1]))
	d := float64(gs*dt) / math.EarthRadius
	lat1 := a.lat / 180 * gomath.Pi
	lon1 := a.lon / 180 * gomath.Pi

	lat2 := gomath.Asin(gomath.Sin(lat1)*gomath.Cos(d) +
		gomath.Cos(lat1)*gomath.Sin(d)*gomath.Cos(trk))
	lon2 := lon1 + gomath.Atan2(gomath.Sin(trk)*gomath.Sin(d)*gomath.Cos(lat1),
		gomath.Cos(d)-gomath.Sin(lat1)*gomath.Sin(lat2))

	a.lat = lat2 / gomath.Pi * 180
	a.lon = lon2 / gomath.Pi * 180
}
