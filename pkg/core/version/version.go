// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and services
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Toolbox release
	Toolbox = "0.2.0"

	// Service versions
	CaseService = "1.0.0"
	HTTPAPI     = "1.0.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ServiceVersion returns the version for a given service name
func ServiceVersion(name string) string {
	switch name {
	case "caseconv", "grpc":
		return CaseService
	case "http":
		return HTTPAPI
	default:
		return Toolbox
	}
}

// String returns a one-line build description
func String() string {
	return fmt.Sprintf("toolbox %s (commit %s, built %s, %s %s/%s)",
		Toolbox, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
