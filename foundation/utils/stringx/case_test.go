// File: case_test.go
// Title: Unit Tests for Case Conversion Functions
// Description: Table tests for the five identifier converters and the four
//              case folding transforms, including acronym handling, Latin-1
//              letters, idempotence and concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for case conversions
// - 2026-10-16 v0.2.0: Acronym, boa and idempotence cases

package stringx

import (
	"sync"
	"testing"
)

type caseTest struct {
	name     string
	input    string
	expected string
}

func runCaseTests(t *testing.T, fn string, convert func(string) string, tests []caseTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convert(tt.input)
			if result != tt.expected {
				t.Errorf("%s(%q) = %q; want %q", fn, tt.input, result, tt.expected)
			}
		})
	}
}

func TestToKebabCase(t *testing.T) {
	runCaseTests(t, "ToKebabCase", ToKebabCase, []caseTest{
		{"empty string", "", ""},
		{"spaces", "the quick brown fox", "the-quick-brown-fox"},
		{"acronym run", "theQUICKBrownFox", "the-quick-brown-fox"},
		{"PascalCase", "TheQuickBrownFox", "the-quick-brown-fox"},
		{"leading acronym", "HTTPServer", "http-server"},
		{"trailing acronym", "version2API", "version2-api"},
		{"snake_case", "hello_world", "hello-world"},
		{"mixed separators", "hello_world-test case", "hello-world-test-case"},
		{"surrounding separators", "--foo--", "foo"},
		{"only separators", " -_. ", ""},
		{"latin-1 capital", "Ærø", "ærø"},
		{"already kebab", "the-quick-brown-fox", "the-quick-brown-fox"},
	})
}

func TestToSnakeCase(t *testing.T) {
	runCaseTests(t, "ToSnakeCase", ToSnakeCase, []caseTest{
		{"empty string", "", ""},
		{"single word", "hello", "hello"},
		{"acronym spelled out", "theQUICKBrownFox", "the_q_u_i_c_k_brown_fox"},
		{"PascalCase", "HelloWorld", "hello_world"},
		{"kebab-case", "hello-world", "hello_world"},
		{"all caps", "HTTP", "h_t_t_p"},
		{"surrounding separators", "__foo__", "foo"},
		{"multiple underscores", "hello__world", "hello_world"},
		{"unicode lower", "helloWörld", "hello_wörld"},
		{"latin-1 capital", "helloÖl", "hello_öl"},
		{"excluded capital", "aØb", "aØb"},
	})
}

func TestToBoaCase(t *testing.T) {
	runCaseTests(t, "ToBoaCase", ToBoaCase, []caseTest{
		{"empty string", "", ""},
		{"camelCase", "theQuickBrownFox", "THE_QUICK_BROWN_FOX"},
		{"spaces", "the quick brown fox", "THE_QUICK_BROWN_FOX"},
		{"full case mapping", "straße Weg", "STRASSE_WEG"},
	})
}

func TestToPascalCase(t *testing.T) {
	runCaseTests(t, "ToPascalCase", ToPascalCase, []caseTest{
		{"empty string", "", ""},
		{"inner casing kept", "theQUICKBrownFox", "TheQUICKBrownFox"},
		{"noisy separators", "the - quick * brown# fox", "TheQuickBrownFox"},
		{"acronym word", "the QUICK BrownFox", "TheQUICKBrownFox"},
		{"snake_case", "hello_world", "HelloWorld"},
		{"accented", "élan vital", "ÉlanVital"},
		{"only separators", "***", ""},
	})
}

func TestToCamelCase(t *testing.T) {
	runCaseTests(t, "ToCamelCase", ToCamelCase, []caseTest{
		{"empty string", "", ""},
		{"single letter", "x", "x"},
		{"leading 4+ run", "THEQuickBrownFox", "theQuickBrownFox"},
		{"leading 2 run", "DAQuickBrownFox", "dAQuickBrownFox"},
		{"trailing 3 run", "TheQuickBrownFOX", "theQuickBrownFOX"},
		{"trailing 4 run", "TheQuickBrownFOXX", "theQuickBrownFoxx"},
		{"inner 4+ run", "theCOOLBrownFox", "theCoolBrownFox"},
		{"inner acronym", "theQUICKBrownFox", "theQuickBrownFox"},
		{"all caps word", "The quick brown FOX", "theQuickBrownFox"},
		{"all caps", "HELLO", "hello"},
		{"snake_case", "hello_world", "helloWorld"},
		{"single letter words", "a_b_c", "aBC"},
		{"digit word", "version_2_api", "version2Api"},
		{"mixed separators", "hello_world-test case", "helloWorldTestCase"},
		{"leading separators", "__foo", "foo"},
		{"unicode", "hello_wörld", "helloWörld"},
	})
}

func TestToUpperLower(t *testing.T) {
	runCaseTests(t, "ToUpper", ToUpper, []caseTest{
		{"empty string", "", ""},
		{"ascii", "Hello World", "HELLO WORLD"},
		{"sharp s", "straße", "STRASSE"},
	})
	runCaseTests(t, "ToLower", ToLower, []caseTest{
		{"empty string", "", ""},
		{"ascii", "Hello World", "hello world"},
		{"accented", "ÀÉÎ", "àéî"},
	})
}

func TestCapitalize(t *testing.T) {
	runCaseTests(t, "Capitalize", Capitalize, []caseTest{
		{"empty string", "", ""},
		{"words", "many Words", "Many Words"},
		{"punctuation first", "!exclaim", "!exclaim"},
		{"accented", "élan", "Élan"},
		{"sharp s", "ßa", "SSa"},
	})
	runCaseTests(t, "Uncapitalize", Uncapitalize, []caseTest{
		{"empty string", "", ""},
		{"words", "Many Words", "many Words"},
		{"accented", "ÉLAN", "éLAN"},
	})
}

func TestDecap(t *testing.T) {
	tests := []struct {
		run       string
		endOfWord bool
		expected  string
	}{
		{"QUICKB", false, "QuickB"},
		{"THEQ", false, "TheQ"},
		{"FOXX", true, "Foxx"},
		{"ÀÉÎÔ", true, "Àéîô"},
		{"", true, ""},
	}

	for _, tt := range tests {
		if got := decap(tt.run, tt.endOfWord); got != tt.expected {
			t.Errorf("decap(%q, %v) = %q; want %q", tt.run, tt.endOfWord, got, tt.expected)
		}
	}
}

func TestConvertersIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"the quick brown fox",
		"theQUICKBrownFox",
		"THEQuickBrownFox",
		"DAQuickBrownFox",
		"TheQuickBrownFOXX",
		"HTTPServer",
		"hello_world-test case",
		"version2API",
	}
	converters := map[string]func(string) string{
		"kebab":  ToKebabCase,
		"snake":  ToSnakeCase,
		"pascal": ToPascalCase,
		"camel":  ToCamelCase,
	}

	for name, convert := range converters {
		for _, in := range inputs {
			once := convert(in)
			if twice := convert(once); twice != once {
				t.Errorf("%s not idempotent for %q: %q then %q", name, in, once, twice)
			}
		}
	}
}

func TestConvertersConcurrent(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := ToKebabCase("theQUICKBrownFox"); got != "the-quick-brown-fox" {
					t.Errorf("ToKebabCase = %q", got)
					return
				}
				if got := ToCamelCase("THEQuickBrownFox"); got != "theQuickBrownFox" {
					t.Errorf("ToCamelCase = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
