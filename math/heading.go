// math/heading.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// headings and courses

// NormalizeHeading reduces a heading to [0,360).
func NormalizeHeading(h float32) float32 {
	if h < 0 {
		return 360 - NormalizeHeading(-h)
	}
	return Mod(h, 360)
}

// HeadingDifference returns the minimum difference between two
// headings. (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float32, b float32) float32 {
	var d float32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignedHeadingDifference returns a-b wrapped into [-180,180]; negative
// means a is counter-clockwise of b. Working with the wrapped difference
// avoids the discontinuity at the 0/360 boundary in downstream
// trigonometry.
func SignedHeadingDifference(a, b float32) float32 {
	d := NormalizeHeading(a) - NormalizeHeading(b)
	if d < -180 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}

func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}
