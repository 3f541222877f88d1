// cmd/orbitsim/main.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// orbitsim flies the kinematic aircraft model around a configured orbit
// under the guidance law and reports how the loop behaves: structured logs,
// optional Prometheus gauges, and an optional msgpack frame recording for
// offline analysis.
//
// Usage: orbitsim [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/uaspilot/orbit/log"
	"github.com/uaspilot/orbit/math"
	"github.com/uaspilot/orbit/nav"
	"github.com/uaspilot/orbit/sim"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	lon := flag.Float64("longitude", -93.2, "orbit center longitude, degrees")
	lat := flag.Float64("latitude", 45.1, "orbit center latitude, degrees")
	radius := flag.Float64("radius", 150, "orbit radius, meters")
	direction := flag.String("direction", "left", "orbit direction: left (ccw) or right (cw)")
	bankLimit := flag.Float64("bank-limit", 0, "bank limit, degrees (0 = default)")
	l1Period := flag.Float64("l1-period", 0, "L1 controller period, seconds (0 = default)")
	tas := flag.Float64("speed", 20, "true airspeed, m/s")
	windSpeed := flag.Float64("wind-speed", 0, "wind speed, m/s")
	windTo := flag.Float64("wind-to", 0, "direction the wind blows toward, degrees")
	startDist := flag.Float64("start-dist", 400, "initial distance from the center, meters")
	duration := flag.Duration("duration", 10*time.Minute, "simulated flight time")
	dt := flag.Float64("dt", 0.1, "control cycle period, seconds")
	realtime := flag.Bool("realtime", false, "run at wall-clock rate instead of as fast as possible")
	listen := flag.String("listen", "", "address to serve Prometheus metrics on (empty = disabled)")
	record := flag.String("record", "", "write msgpack.zst frame recording to this file (empty = disabled)")
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir := flag.String("logdir", "", "directory for log files")
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	dir, err := nav.ParseDirection(*direction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *direction, err)
		os.Exit(1)
	}

	center := math.Point2LL{float32(*lon), float32(*lat)}
	guidance := nav.NewGuidance(nav.OrbitSpec{
		Center:    center,
		Radius:    float32(*radius),
		Direction: dir,
	}, nav.ControlParams{
		BankLimit: float32(*bankLimit),
		L1Period:  float32(*l1Period),
	})

	ac := sim.NewAircraft(math.Offset2LL(center, 0, float32(*startDist)), 90, float32(*tas))
	ac.WindSpeed = float32(*windSpeed)
	ac.WindTo = float32(*windTo)

	var rec *recorder
	if *record != "" {
		rec = newRecorder()
	}

	eg, ctx := errgroup.WithContext(context.Background())

	var srv *http.Server
	if *listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{Addr: *listen, Handler: mux}
		eg.Go(func() error {
			lg.Infof("Serving metrics on %s/metrics", *listen)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	eg.Go(func() error {
		defer func() {
			if srv != nil {
				sctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = srv.Shutdown(sctx)
			}
		}()
		return flyOrbit(ctx, lg, guidance, ac, rec, float32(*dt), *duration, *realtime)
	})

	if err := eg.Wait(); err != nil {
		lg.Errorf("orbitsim: %v", err)
		os.Exit(1)
	}

	if rec != nil {
		if err := rec.WriteFile(*record); err != nil {
			lg.Errorf("%s: %v", *record, err)
			os.Exit(1)
		}
		lg.Infof("Wrote %d frames to %s", len(rec.Frames), *record)
	}
}

func flyOrbit(ctx context.Context, lg *log.Logger, guidance *nav.Guidance, ac *sim.Aircraft,
	rec *recorder, dt float32, duration time.Duration, realtime bool) error {
	var tick *time.Ticker
	if realtime {
		tick = time.NewTicker(time.Duration(float64(dt) * float64(time.Second)))
		defer tick.Stop()
	}

	spec := guidance.Spec()
	lg.Info("Starting orbit",
		"center", spec.Center.DDString(),
		"radius", spec.Radius,
		"direction", spec.Direction.String())

	for ts := float32(0); ts < float32(duration.Seconds()); ts += dt {
		state := ac.State()
		out := guidance.Step(state)
		ac.Step(dt, out.TargetBank)

		publishMetrics(state, out, spec.EffectiveRadius())
		if rec != nil {
			rec.Append(ts, state, out)
		}

		if realtime {
			select {
			case <-tick.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	final := guidance.Step(ac.State())
	lg.Info("Orbit complete",
		"distance", final.DistanceToCenter,
		"radial_error", math.Abs(final.DistanceToCenter-spec.EffectiveRadius()),
		"bank", final.TargetBank)
	return nil
}
