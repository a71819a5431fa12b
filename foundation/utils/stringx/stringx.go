// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers used next to the case converters: blank
//              checks, truncation, line splitting and separator-based
//              slicing of file names and paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Added Before/After/RemoveAll/ReplaceAll/RemoveExtension/Spell,
//                      dropped interning, padding and validation helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate truncates a string to maxLen runes, ending it with ellipsis if
// it was cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// Before returns the part of s before the first sep, or s if sep does not
// occur. An empty sep yields the first character.
// Example: Before("This is my string", " ") -> "This"
func Before(s, sep string) string {
	if sep == "" {
		_, size := utf8.DecodeRuneInString(s)
		return s[:size]
	}
	before, _, _ := strings.Cut(s, sep)
	return before
}

// After returns the part of s after the first sep, or "" if sep does not
// occur. An empty sep yields everything but the first character.
// Example: After("This is my string", " ") -> "is my string"
func After(s, sep string) string {
	if sep == "" {
		_, size := utf8.DecodeRuneInString(s)
		return s[size:]
	}
	_, after, _ := strings.Cut(s, sep)
	return after
}

// RemoveAll removes every occurrence of target from s.
func RemoveAll(s, target string) string {
	if target == "" {
		return s
	}
	return strings.ReplaceAll(s, target, "")
}

// ReplaceAll replaces every occurrence of target in s with with.
func ReplaceAll(s, target, with string) string {
	if target == "" {
		return s
	}
	return strings.ReplaceAll(s, target, with)
}

// RemoveExtension strips everything from the last dot on.
// Example: "MyFile.spec.ts" -> "MyFile.spec"
func RemoveExtension(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// FileNameWithoutExtension returns the last path element of s with the
// extension removed.
// Example: "src/utils/MyFile.ts" -> "MyFile"
func FileNameWithoutExtension(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	return RemoveExtension(s)
}

// Reverse reverses a string rune by rune.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Spell splits s into one string per rune.
func Spell(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
