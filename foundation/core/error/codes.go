// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the toolbox. The case
//              engine itself is total; codes classify failures of the outer
//              layers (configuration, transports, CLI input).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Reduced to toolbox codes, added gRPC mapping

package error

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Case conversion
	CodeUnknownCase   Code = "UNKNOWN_CASE"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Configuration
	CodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	CodeConfigInvalid  Code = "CONFIG_INVALID"

	// Service
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// ParseCode converts a code name back to a Code. Unknown names map to
// CodeUnknown
func ParseCode(s string) Code {
	if c := Code(s); c.IsValid() {
		return c
	}
	return CodeUnknown
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeIO,
		CodeUnknownCase, CodeInputTooLarge,
		CodeConfigNotFound, CodeConfigInvalid,
		CodeServiceUnavailable:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownCase, CodeInputTooLarge, CodeInvalidInput:
		return "conversion"
	case CodeConfigNotFound, CodeConfigInvalid:
		return "configuration"
	case CodeServiceUnavailable:
		return "service"
	case CodeIO:
		return "io"
	default:
		return "generic"
	}
}

// HTTPStatus returns the HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUnknownCase, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeInputTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode returns the gRPC status code for this error code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeUnknownCase, CodeInvalidInput:
		return codes.InvalidArgument
	case CodeInputTooLarge:
		return codes.ResourceExhausted
	case CodeServiceUnavailable:
		return codes.Unavailable
	case CodeConfigNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}
