// File: classify.go
// Title: Word Separator and Capital-Run Classifiers
// Description: Character classes shared by all case converters. Separators
//              are looked up in a table built once at init; capital-run
//              shapes are precompiled regular expressions. Both are
//              read-only after init and safe for concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation of the shared classifiers

package stringx

import (
	"regexp"
	"strings"
)

// asciiSeparators are the ASCII punctuation characters that delimit words.
const asciiSeparators = `\'!"#$%&()*+,-./:;<=>?@[]^_` + "`" + `{|}~`

// asciiSeparator[b] reports whether the byte b separates words.
var asciiSeparator [128]bool

func init() {
	for _, r := range asciiSeparators {
		asciiSeparator[r] = true
	}
	for _, r := range "\t\n\v\f\r " {
		asciiSeparator[r] = true
	}
}

// Capital-run classes. The capital range À-Ý (U+00C0-U+00DD) includes × and Ø
// for kebab boundaries, while single snake capitals skip both; camel words use
// the narrower À-Ü / à-ü ranges.
var (
	capitalPlusLower = regexp.MustCompile(`[A-Z\x{C0}-\x{DD}][a-z\x{E0}-\x{FF}]`)
	capitalRun       = regexp.MustCompile(`[A-Z\x{C0}-\x{DD}]+`)
	snakeCapital     = regexp.MustCompile(`[A-Z\x{C0}-\x{D6}\x{D9}-\x{DD}]`)

	basicCamelWord = regexp.MustCompile(`^[a-z\x{E0}-\x{FC}A-Z\x{C0}-\x{DC}][\d|a-z\x{E0}-\x{FC}A-Z\x{C0}-\x{DC}]*$`)
	allCapsWord    = regexp.MustCompile(`^[A-Z\x{C0}-\x{DC}]+$`)
	acronymRun     = regexp.MustCompile(`[A-Z\x{C0}-\x{DC}]{4,}`)
)

// IsWordSeparator reports whether r delimits words: whitespace, the general
// and supplemental punctuation blocks, and ASCII punctuation.
func IsWordSeparator(r rune) bool {
	if r < 128 {
		return asciiSeparator[r]
	}

	switch {
	case r >= 0x2000 && r <= 0x206F:
		return true
	case r >= 0x2E00 && r <= 0x2E7F:
		return true
	}

	switch r {
	case 0x00A0, 0x1680, 0x3000, 0xFEFF:
		return true
	}
	return false
}

// SplitWords splits s into word tokens. Runs of separators form a single
// boundary and no token is ever empty, so an empty or separator-only input
// yields no tokens.
func SplitWords(s string) []string {
	return strings.FieldsFunc(s, IsWordSeparator)
}

// isCamelWord reports whether word is made of letters and digits only, starts
// with a letter and is not entirely uppercase.
func isCamelWord(word string) bool {
	return basicCamelWord.MatchString(word) && !allCapsWord.MatchString(word)
}
