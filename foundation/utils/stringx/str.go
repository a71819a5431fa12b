// File: str.go
// Title: Fluent String Wrapper
// Description: Str wraps a string value so conversions and helpers can be
//              chained: stringx.Of("file_name.txt").RemoveExtension().Case().Pascal().
//              Str is an immutable value type; every method returns a new Str.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package stringx

// Str is an immutable string with chainable helpers.
type Str struct {
	value string
}

// Of wraps s.
func Of(s string) Str {
	return Str{value: s}
}

// Value returns the wrapped string.
func (s Str) Value() string { return s.value }

// String implements fmt.Stringer.
func (s Str) String() string { return s.value }

// Len returns the length in runes.
func (s Str) Len() int { return len([]rune(s.value)) }

// Case gives access to the case conversions.
func (s Str) Case() StrCase { return StrCase{value: s.value} }

// First returns the part before the first sep.
func (s Str) First(sep string) Str { return Of(Before(s.value, sep)) }

// Last returns the part after the first sep.
func (s Str) Last(sep string) Str { return Of(After(s.value, sep)) }

// RemoveAll removes every occurrence of target.
func (s Str) RemoveAll(target string) Str { return Of(RemoveAll(s.value, target)) }

// ReplaceAll replaces every occurrence of target with with.
func (s Str) ReplaceAll(target, with string) Str { return Of(ReplaceAll(s.value, target, with)) }

// RemoveExtension strips the file extension.
func (s Str) RemoveExtension() Str { return Of(RemoveExtension(s.value)) }

// FileNameWithoutExtension returns the base file name without extension.
func (s Str) FileNameWithoutExtension() Str { return Of(FileNameWithoutExtension(s.value)) }

// Reverse reverses the runes.
func (s Str) Reverse() Str { return Of(Reverse(s.value)) }

// Spell returns the characters one string per rune.
func (s Str) Spell() []string { return Spell(s.value) }

// StrCase exposes the case conversions of a Str.
type StrCase struct {
	value string
}

// Kebab converts to kebab-case.
func (c StrCase) Kebab() Str { return Of(ToKebabCase(c.value)) }

// Snake converts to snake_case.
func (c StrCase) Snake() Str { return Of(ToSnakeCase(c.value)) }

// Boa converts to BOA_CASE.
func (c StrCase) Boa() Str { return Of(ToBoaCase(c.value)) }

// Camel converts to camelCase.
func (c StrCase) Camel() Str { return Of(ToCamelCase(c.value)) }

// Pascal converts to PascalCase.
func (c StrCase) Pascal() Str { return Of(ToPascalCase(c.value)) }

// Upper converts to upper case.
func (c StrCase) Upper() Str { return Of(ToUpper(c.value)) }

// Lower converts to lower case.
func (c StrCase) Lower() Str { return Of(ToLower(c.value)) }

// Capitalize upper-cases the first character.
func (c StrCase) Capitalize() Str { return Of(Capitalize(c.value)) }

// Uncapitalize lower-cases the first character.
func (c StrCase) Uncapitalize() Str { return Of(Uncapitalize(c.value)) }

// To applies the conversion k.
func (c StrCase) To(k Case) Str { return Of(Convert(k, c.value)) }
