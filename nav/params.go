// nav/params.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"fmt"
	"strconv"

	"github.com/uaspilot/orbit/log"
	"github.com/uaspilot/orbit/math"
)

// SpecFromParams builds an OrbitSpec from string-keyed task parameters, the
// form in which mission plans deliver orbit tasks. Recognized keys:
// "longitude-deg", "latitude-deg", "direction", "radius-m",
// "altitude-agl-ft", "speed-kt". Unknown keys are logged and ignored
// rather than failing the task; malformed values for known keys are
// errors.
func SpecFromParams(params map[string]string, lg *log.Logger) (OrbitSpec, error) {
	spec := OrbitSpec{Radius: 100, Direction: CounterClockwise}

	parse := func(key, value string) (float32, error) {
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid value %q: %w", key, value, err)
		}
		return float32(v), nil
	}

	var lon, lat float32
	for key, value := range params {
		var err error
		switch key {
		case "longitude-deg":
			lon, err = parse(key, value)
		case "latitude-deg":
			lat, err = parse(key, value)
		case "direction":
			spec.Direction, err = ParseDirection(value)
			if err != nil {
				err = fmt.Errorf("%s: %q: %w", key, value, err)
			}
		case "radius-m":
			spec.Radius, err = parse(key, value)
		case "altitude-agl-ft":
			spec.TargetAGL, err = parse(key, value)
		case "speed-kt":
			spec.TargetSpeed, err = parse(key, value)
		default:
			lg.Warnf("Unknown orbit task parameter: %s", key)
		}
		if err != nil {
			return OrbitSpec{}, err
		}
	}
	spec.Center = math.Point2LL{lon, lat}

	return spec, nil
}
