// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx converts identifiers between naming
//              conventions and carries the small string helpers that go
//              with them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-16 v0.2.0: Refocused on the case conversion engine

// Package stringx converts identifiers between naming conventions.
//
// Overview
//
// Five converters rebuild a string in a target convention:
//
//	ToKebabCase("theQUICKBrownFox")  // "the-quick-brown-fox"
//	ToSnakeCase("theQUICKBrownFox")  // "the_q_u_i_c_k_brown_fox"
//	ToBoaCase("theQuickBrownFox")    // "THE_QUICK_BROWN_FOX"
//	ToPascalCase("the quick fox")    // "TheQuickFox"
//	ToCamelCase("THEQuickBrownFox")  // "theQuickBrownFox"
//
// and four fold case without touching word boundaries: ToUpper, ToLower,
// Capitalize and Uncapitalize.
//
// Word boundaries
//
// Words are separated by whitespace, by the Unicode general and supplemental
// punctuation blocks, and by ASCII punctuation (see IsWordSeparator). Runs of
// separators collapse into one boundary. Kebab-case additionally breaks
// before every capital that starts a lowercase word and around every capital
// run; snake-case breaks before every single capital. Pascal and camel only
// split on separators.
//
// Acronyms
//
// In camelCase a run of four or more capitals inside a word is folded to a
// capitalized word ("THEQuick" -> "TheQuick"); shorter runs are kept.
//
// Dispatch
//
// When the target convention arrives as data, ParseCase resolves its name and
// Convert applies it. Of wraps a string for chained calls:
//
//	stringx.Of("src/my_file.go").FileNameWithoutExtension().Case().Pascal() // "MyFile"
//
// Thread Safety
//
// All functions are pure. The character classes are built once at package
// initialization and never modified.
package stringx
