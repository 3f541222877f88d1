//go:build !orbitlog

// nav/log_release.go
// Copyright(c) 2024-2026 orbit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

// InitOrbitLog is a no-op in release builds
func InitOrbitLog(enabled bool, categories string) {}

// OrbitLog is a no-op in release builds
func OrbitLog(category string, format string, args ...interface{}) {}

// OrbitLogEnabled always returns false in release builds
func OrbitLogEnabled(category string) bool { return false }
