// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick the log level an error
//              is reported with.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Code mapping for toolbox codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input, e.g. an unknown case name
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround, e.g. a missing optional config file
	SeverityMedium

	// SeverityHigh indicates a failure of the operation itself
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeUnknownCase, CodeInvalidInput, CodeInputTooLarge:
		return SeverityLow
	case CodeConfigNotFound:
		return SeverityMedium
	case CodeConfigInvalid, CodeIO, CodeServiceUnavailable:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
