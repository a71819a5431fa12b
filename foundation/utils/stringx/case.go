// File: case.go
// Title: String Case Conversion Utilities
// Description: Identifier case conversion: kebab-case, snake_case,
//              BOA_CASE, PascalCase and camelCase with acronym-aware word
//              boundaries, plus whole-string and first-letter case folding.
//              Every converter is total and stateless.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-16 v0.2.0: Rewrote converters around shared separator and
//                      capital-run classes, added boa case and acronym de-capping

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToKebabCase converts a string to kebab-case. Every camelCase boundary and
// every run of capitals starts a new word, so acronyms stay together.
// Example: "theQUICKBrownFox" -> "the-quick-brown-fox"
func ToKebabCase(s string) string {
	s = capitalPlusLower.ReplaceAllStringFunc(s, func(m string) string {
		return " " + lowerFirst(m)
	})
	s = capitalRun.ReplaceAllStringFunc(s, func(m string) string {
		return " " + strings.ToLower(m)
	})

	return strings.Trim(strings.Join(SplitWords(s), "-"), "-")
}

// ToSnakeCase converts a string to snake_case. Unlike kebab-case every single
// capital starts a new word, so an acronym is spelled out letter by letter.
// Example: "theQUICKBrownFox" -> "the_q_u_i_c_k_brown_fox"
func ToSnakeCase(s string) string {
	s = snakeCapital.ReplaceAllStringFunc(s, func(m string) string {
		return " " + strings.ToLower(m)
	})

	return strings.Join(SplitWords(s), "_")
}

// ToBoaCase converts a string to upper snake case.
// Example: "theQuickBrownFox" -> "THE_QUICK_BROWN_FOX"
func ToBoaCase(s string) string {
	return ToUpper(ToSnakeCase(s))
}

// ToPascalCase converts a string to PascalCase. Only separators split words;
// the first letter of each word is upper-cased and the rest is kept verbatim.
// Example: "the quick brown fox" -> "TheQuickBrownFox"
func ToPascalCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, word := range SplitWords(s) {
		b.WriteString(Capitalize(word))
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase.
//
// Words made only of letters and digits that are not all caps keep their inner
// casing, except that capital runs of four or more letters are folded to a
// capitalized word (see decap). All-caps words and words with other content
// are lowercased after their first letter. The first word starts lowercase,
// every following word uppercase.
//
// Examples:
//
//	"The quick brown FOX" -> "theQuickBrownFox"
//	"DAQuickBrownFox"     -> "dAQuickBrownFox"
//	"theQUICKBrownFox"    -> "theQuickBrownFox"
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i, word := range SplitWords(s) {
		camel := isCamelWord(word)
		if camel {
			word = decapAcronyms(word)
		}

		_, size := utf8.DecodeRuneInString(word)
		first, rest := word[:size], word[size:]

		if i == 0 {
			b.WriteString(ToLower(first))
		} else {
			b.WriteString(ToUpper(first))
		}

		if camel {
			b.WriteString(rest)
		} else {
			b.WriteString(ToLower(rest))
		}
	}
	return b.String()
}

// decapAcronyms replaces every capital run of four or more letters in word.
func decapAcronyms(word string) string {
	matches := acronymRun.FindAllStringIndex(word, -1)
	if matches == nil {
		return word
	}

	var b strings.Builder
	b.Grow(len(word))

	last := 0
	for _, m := range matches {
		b.WriteString(word[last:m[0]])
		b.WriteString(decap(word[m[0]:m[1]], m[1] == len(word)))
		last = m[1]
	}
	b.WriteString(word[last:])
	return b.String()
}

// decap folds a capital run toward a capitalized word: the first letter is
// upper, the interior lower. The last letter is lowered only when the run ends
// the word; otherwise it is the first letter of the following word.
// Example: ("QUICKB", false) -> "QuickB", ("FOXX", true) -> "Foxx"
func decap(run string, endOfWord bool) string {
	runes := []rune(run)
	n := len(runes)
	if n == 0 {
		return run
	}

	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < n-1; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	if n > 1 && endOfWord {
		runes[n-1] = unicode.ToLower(runes[n-1])
	}
	return string(runes)
}

// ToUpper upper-cases s using full Unicode case mapping ("ß" -> "SS").
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLower lower-cases s using full Unicode case mapping.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize upper-cases the first character of s and leaves the rest untouched.
// Example: "many Words" -> "Many Words"
func Capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return ToUpper(s[:size]) + s[size:]
}

// Uncapitalize lower-cases the first character of s and leaves the rest untouched.
// Example: "Many Words" -> "many Words"
func Uncapitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return ToLower(s[:size]) + s[size:]
}

// lowerFirst lower-cases the first rune of a regexp match.
func lowerFirst(m string) string {
	r, size := utf8.DecodeRuneInString(m)
	return string(unicode.ToLower(r)) + m[size:]
}
