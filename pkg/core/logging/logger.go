// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     logging
// Description: Simple level type for the key/value logger
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import tblog "github.com/msto63/toolbox/foundation/core/log"

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) foundation() tblog.Level {
	switch l {
	case LevelDebug:
		return tblog.LevelDebug
	case LevelWarn:
		return tblog.LevelWarn
	case LevelError:
		return tblog.LevelError
	default:
		return tblog.LevelInfo
	}
}
