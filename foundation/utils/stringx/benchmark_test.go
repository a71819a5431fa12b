// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the case converters on short identifiers and
//              on longer sentences.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-16 v0.2.0: Benchmarks for the case conversion engine

package stringx

import (
	"strings"
	"testing"
)

var benchInputs = []string{
	"theQUICKBrownFox",
	"the quick brown fox",
	"HTTPServerConfig",
	strings.Repeat("someLongIdentifier_with-MIXEDSeparators ", 16),
}

func benchmarkConverter(b *testing.B, convert func(string) string) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = convert(benchInputs[i%len(benchInputs)])
	}
}

func BenchmarkToKebabCase(b *testing.B)  { benchmarkConverter(b, ToKebabCase) }
func BenchmarkToSnakeCase(b *testing.B)  { benchmarkConverter(b, ToSnakeCase) }
func BenchmarkToBoaCase(b *testing.B)    { benchmarkConverter(b, ToBoaCase) }
func BenchmarkToPascalCase(b *testing.B) { benchmarkConverter(b, ToPascalCase) }
func BenchmarkToCamelCase(b *testing.B)  { benchmarkConverter(b, ToCamelCase) }

func BenchmarkSplitWords(b *testing.B) {
	benchmarkConverter(b, func(s string) string {
		return strings.Join(SplitWords(s), "")
	})
}

func BenchmarkConvertAll(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ConvertAll(benchInputs[i%len(benchInputs)])
	}
}
