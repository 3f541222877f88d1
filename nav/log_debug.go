//go:build orbitlog

// nav/log_debug.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"fmt"
	"strings"
)

var (
	orbitlogEnabled    bool
	orbitlogCategories map[string]bool
)

// InitOrbitLog enables per-cycle guidance logging for the given
// comma-separated categories ("" or "all" enables everything).
func InitOrbitLog(enabled bool, categories string) {
	orbitlogEnabled = enabled
	orbitlogCategories = make(map[string]bool)

	if !enabled {
		return
	}

	if categories == "" || categories == "all" {
		orbitlogCategories[OrbitLogState] = true
		orbitlogCategories[OrbitLogCourse] = true
		orbitlogCategories[OrbitLogBank] = true
	} else {
		for _, cat := range strings.Split(categories, ",") {
			orbitlogCategories[strings.TrimSpace(cat)] = true
		}
	}
}

// OrbitLog logs a message with its category
func OrbitLog(category string, format string, args ...interface{}) {
	if !orbitlogEnabled || !orbitlogCategories[category] {
		return
	}
	fmt.Printf("[%s] %s\n", category, fmt.Sprintf(format, args...))
}

// OrbitLogEnabled returns whether guidance logging is enabled for a given category
func OrbitLogEnabled(category string) bool {
	return orbitlogEnabled && orbitlogCategories[category]
}
