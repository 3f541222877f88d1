// cmd/orbitsim/metrics.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"github.com/uaspilot/orbit/math"
	"github.com/uaspilot/orbit/nav"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	distanceGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_distance_to_center_meters"})
	radialErrorGauge  = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_radial_error_meters"})
	targetCourseGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_target_course_degrees"})
	targetBankGauge   = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_target_bank_degrees"})
	trackGauge        = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_ground_track_degrees"})
	groundspeedGauge  = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_groundspeed_mps"})
	etaGauge          = prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbit_eta_to_center_seconds"})
)

func init() {
	prometheus.MustRegister(
		distanceGauge, radialErrorGauge, targetCourseGauge,
		targetBankGauge, trackGauge, groundspeedGauge, etaGauge,
	)
}

func publishMetrics(state nav.State, out nav.Output, radius float32) {
	distanceGauge.Set(float64(out.DistanceToCenter))
	radialErrorGauge.Set(float64(math.Abs(out.DistanceToCenter - radius)))
	targetCourseGauge.Set(float64(out.TargetCourse))
	targetBankGauge.Set(float64(out.TargetBank))
	trackGauge.Set(float64(state.Track))
	groundspeedGauge.Set(float64(state.Groundspeed))
	etaGauge.Set(float64(out.ETAToCenter))
}
