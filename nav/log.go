// nav/log.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

// Available logging categories
const (
	OrbitLogState  = "state"
	OrbitLogCourse = "course"
	OrbitLogBank   = "bank"
)
