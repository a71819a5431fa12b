// File: kind.go
// Title: Case Kinds and Dispatch
// Description: Names the nine case conversions so callers that receive the
//              target case as data (CLI flags, requests, config) can dispatch
//              to the matching converter.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package stringx

import (
	"strings"

	tberror "github.com/msto63/toolbox/foundation/core/error"
)

// Case identifies a case conversion.
type Case int

const (
	CaseKebab Case = iota
	CaseSnake
	CaseBoa
	CaseCamel
	CasePascal
	CaseUpper
	CaseLower
	CaseCapitalize
	CaseUncapitalize
)

var caseNames = [...]string{
	CaseKebab:        "kebab",
	CaseSnake:        "snake",
	CaseBoa:          "boa",
	CaseCamel:        "camel",
	CasePascal:       "pascal",
	CaseUpper:        "upper",
	CaseLower:        "lower",
	CaseCapitalize:   "capitalize",
	CaseUncapitalize: "uncapitalize",
}

var caseConverters = [...]func(string) string{
	CaseKebab:        ToKebabCase,
	CaseSnake:        ToSnakeCase,
	CaseBoa:          ToBoaCase,
	CaseCamel:        ToCamelCase,
	CasePascal:       ToPascalCase,
	CaseUpper:        ToUpper,
	CaseLower:        ToLower,
	CaseCapitalize:   Capitalize,
	CaseUncapitalize: Uncapitalize,
}

// caseAliases maps accepted spellings, normalized by normalizeCaseName, to kinds.
var caseAliases = map[string]Case{
	"kebab":          CaseKebab,
	"spinal":         CaseKebab,
	"dash":           CaseKebab,
	"snake":          CaseSnake,
	"underscore":     CaseSnake,
	"boa":            CaseBoa,
	"screamingsnake": CaseBoa,
	"uppersnake":     CaseBoa,
	"constant":       CaseBoa,
	"camel":          CaseCamel,
	"lowercamel":     CaseCamel,
	"pascal":         CasePascal,
	"uppercamel":     CasePascal,
	"upper":          CaseUpper,
	"lower":          CaseLower,
	"capitalize":     CaseCapitalize,
	"uncapitalize":   CaseUncapitalize,
}

// String returns the canonical name of the case.
func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return "unknown"
	}
	return caseNames[c]
}

// IsValid reports whether c names a known conversion.
func (c Case) IsValid() bool {
	return c >= 0 && int(c) < len(caseNames)
}

// MarshalText implements encoding.TextMarshaler.
func (c Case) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, tberror.Newf("unknown case %d", int(c)).WithCode(tberror.CodeUnknownCase)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Case can be read
// directly from TOML, YAML or JSON.
func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCase resolves a case name. Separators and a trailing "case" are
// ignored, so "kebab", "kebab-case", "KebabCase" and "SCREAMING_SNAKE_CASE"
// are all accepted.
func ParseCase(name string) (Case, error) {
	if c, ok := caseAliases[normalizeCaseName(name)]; ok {
		return c, nil
	}
	return CaseKebab, tberror.Newf("unknown case %q", name).
		WithCode(tberror.CodeUnknownCase).
		WithDetail("case", name).
		WithOperation("ParseCase")
}

func normalizeCaseName(name string) string {
	n := strings.ToLower(strings.Join(SplitWords(name), ""))
	if n != "case" {
		n = strings.TrimSuffix(n, "case")
	}
	return n
}

// AllCases returns every case in declaration order.
func AllCases() []Case {
	all := make([]Case, len(caseNames))
	for i := range all {
		all[i] = Case(i)
	}
	return all
}

// Convert applies the conversion c to s. An invalid c returns s unchanged.
func Convert(c Case, s string) string {
	if !c.IsValid() {
		return s
	}
	return caseConverters[c](s)
}

// ConvertAll applies every conversion to s.
func ConvertAll(s string) map[Case]string {
	out := make(map[Case]string, len(caseConverters))
	for i, convert := range caseConverters {
		out[Case(i)] = convert(s)
	}
	return out
}
