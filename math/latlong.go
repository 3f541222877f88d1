// math/latlong.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// EarthRadius is the mean earth radius in meters, as used by the
// great-circle formulas below.
const EarthRadius = 6371000

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// CourseAndDistance returns the initial great-circle bearing in degrees
// [0,360) and the great-circle distance in meters from |from| to |to|.
// https://www.movable-type.co.uk/scripts/latlong.html
func CourseAndDistance(from Point2LL, to Point2LL) (course float32, dist float32) {
	rad := func(d float32) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(from[1]), rad(from[0])
	lat2, lon2 := rad(to[1]), rad(to[0])
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	dist = float32(EarthRadius * c)

	y := gomath.Sin(dlon) * gomath.Cos(lat2)
	z := gomath.Cos(lat1)*gomath.Sin(lat2) - gomath.Sin(lat1)*gomath.Cos(lat2)*gomath.Cos(dlon)
	course = NormalizeHeading(float32(gomath.Atan2(y, z) / gomath.Pi * 180))

	return
}

// DistanceM returns the great-circle distance in meters between two
// lat-long coordinates.
func DistanceM(a Point2LL, b Point2LL) float32 {
	_, d := CourseAndDistance(a, b)
	return d
}

// Offset2LL returns the point at distance dist meters along the
// great-circle with initial bearing hdg degrees from the given point.
func Offset2LL(p Point2LL, hdg float32, dist float32) Point2LL {
	rad := func(d float32) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(p[1]), rad(p[0])
	brg := rad(hdg)
	d := float64(dist) / EarthRadius

	lat2 := gomath.Asin(gomath.Sin(lat1)*gomath.Cos(d) +
		gomath.Cos(lat1)*gomath.Sin(d)*gomath.Cos(brg))
	lon2 := lon1 + gomath.Atan2(gomath.Sin(brg)*gomath.Sin(d)*gomath.Cos(lat1),
		gomath.Cos(d)-gomath.Sin(lat1)*gomath.Sin(lat2))

	return Point2LL{float32(lon2 / gomath.Pi * 180), float32(lat2 / gomath.Pi * 180)}
}
