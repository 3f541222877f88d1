// math/heading_test.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	h := [][2]float32{{90, 90}, {360, 0}, {-10, 350}, {380, 20}, {-380, 340}, {0, 0}}
	for _, pair := range h {
		if NormalizeHeading(pair[0]) != pair[1] {
			t.Errorf("normalize heading error: %f -> %f, expected %f",
				pair[0], NormalizeHeading(pair[0]), pair[1])
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	type hd struct {
		a, b, d float32
	}

	for _, h := range []hd{{10, 90, 80}, {350, 12, 22}, {340, 120, 140}, {-90, 80, 170},
		{40, 181, 141}, {-170, 160, 30}, {-120, -150, 30}} {
		if HeadingDifference(h.a, h.b) != h.d {
			t.Errorf("headingDifference(%f, %f) -> %f, expected %f", h.a, h.b,
				HeadingDifference(h.a, h.b), h.d)
		}
		if HeadingDifference(h.b, h.a) != h.d {
			t.Errorf("headingDifference(%f, %f) -> %f, expected %f", h.b, h.a,
				HeadingDifference(h.b, h.a), h.d)
		}
	}
}

func TestSignedHeadingDifference(t *testing.T) {
	type hd struct {
		a, b, d float32
	}

	for _, h := range []hd{{90, 10, 80}, {10, 90, -80}, {350, 10, -20}, {10, 350, 20},
		{180, 0, 180}, {270, 240, 30}, {5, 355, 10}, {355, 5, -10}, {120, 120, 0}} {
		if got := SignedHeadingDifference(h.a, h.b); got != h.d {
			t.Errorf("SignedHeadingDifference(%f, %f) = %f, expected %f", h.a, h.b, got, h.d)
		}
	}
}

func TestSignedHeadingDifferenceRange(t *testing.T) {
	for a := float32(0); a < 360; a += 7.5 {
		for b := float32(0); b < 360; b += 7.5 {
			d := SignedHeadingDifference(a, b)
			if d < -180 || d > 180 {
				t.Errorf("SignedHeadingDifference(%f, %f) = %f out of [-180,180]", a, b, d)
			}
		}
	}
}

func TestOppositeHeading(t *testing.T) {
	h := [][2]float32{{90, 270}, {1, 181}, {2, 182}, {350, 170}}
	for _, pair := range h {
		if OppositeHeading(pair[0]) != pair[1] {
			t.Errorf("opposite heading error: %f -> %f, expected %f",
				pair[0], OppositeHeading(pair[0]), pair[1])
		}
		if OppositeHeading(pair[1]) != pair[0] {
			t.Errorf("opposite heading error: %f -> %f, expected %f",
				pair[1], OppositeHeading(pair[1]), pair[0])
		}
	}
}
