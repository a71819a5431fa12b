package stringx

import (
	"encoding/json"
	"testing"

	tberror "github.com/msto63/toolbox/foundation/core/error"
)

func TestParseCase(t *testing.T) {
	tests := []struct {
		name     string
		expected Case
	}{
		{"kebab", CaseKebab},
		{"kebab-case", CaseKebab},
		{"KebabCase", CaseKebab},
		{"spinal", CaseKebab},
		{"snake_case", CaseSnake},
		{"SCREAMING_SNAKE_CASE", CaseBoa},
		{"boa", CaseBoa},
		{"camelCase", CaseCamel},
		{"PascalCase", CasePascal},
		{"upper", CaseUpper},
		{"UPPERCASE", CaseUpper},
		{"lower", CaseLower},
		{"capitalize", CaseCapitalize},
		{"Uncapitalize", CaseUncapitalize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCase(tt.name)
			if err != nil {
				t.Fatalf("ParseCase(%q) error: %v", tt.name, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCase(%q) = %v; want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParseCaseUnknown(t *testing.T) {
	for _, name := range []string{"", "case", "title", "-"} {
		_, err := ParseCase(name)
		if err == nil {
			t.Errorf("ParseCase(%q) expected error", name)
			continue
		}
		if !tberror.HasCode(err, tberror.CodeUnknownCase) {
			t.Errorf("ParseCase(%q) code = %v; want %v", name, tberror.GetCode(err), tberror.CodeUnknownCase)
		}
	}
}

func TestCaseString(t *testing.T) {
	if CasePascal.String() != "pascal" {
		t.Errorf("CasePascal.String() = %q", CasePascal.String())
	}
	if Case(99).String() != "unknown" {
		t.Errorf("Case(99).String() = %q", Case(99).String())
	}
	if Case(-1).IsValid() {
		t.Error("Case(-1) should be invalid")
	}
}

func TestAllCasesRoundTripNames(t *testing.T) {
	all := AllCases()
	if len(all) != 9 {
		t.Fatalf("AllCases() returned %d cases; want 9", len(all))
	}
	for _, c := range all {
		parsed, err := ParseCase(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCase(%q) = %v, %v; want %v", c.String(), parsed, err, c)
		}
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(CaseKebab, "theQUICKBrownFox"); got != "the-quick-brown-fox" {
		t.Errorf("Convert(kebab) = %q", got)
	}
	if got := Convert(CaseBoa, "theQuickBrownFox"); got != "THE_QUICK_BROWN_FOX" {
		t.Errorf("Convert(boa) = %q", got)
	}
	if got := Convert(Case(42), "keep me"); got != "keep me" {
		t.Errorf("Convert(invalid) = %q; want input unchanged", got)
	}
}

func TestConvertAll(t *testing.T) {
	got := ConvertAll("the quick brown fox")
	expected := map[Case]string{
		CaseKebab:        "the-quick-brown-fox",
		CaseSnake:        "the_quick_brown_fox",
		CaseBoa:          "THE_QUICK_BROWN_FOX",
		CaseCamel:        "theQuickBrownFox",
		CasePascal:       "TheQuickBrownFox",
		CaseUpper:        "THE QUICK BROWN FOX",
		CaseLower:        "the quick brown fox",
		CaseCapitalize:   "The quick brown fox",
		CaseUncapitalize: "the quick brown fox",
	}

	if len(got) != len(expected) {
		t.Fatalf("ConvertAll returned %d entries; want %d", len(got), len(expected))
	}
	for c, want := range expected {
		if got[c] != want {
			t.Errorf("ConvertAll[%v] = %q; want %q", c, got[c], want)
		}
	}
}

func TestCaseTextMarshaling(t *testing.T) {
	var payload struct {
		Target Case `json:"target"`
	}
	if err := json.Unmarshal([]byte(`{"target":"snake-case"}`), &payload); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if payload.Target != CaseSnake {
		t.Errorf("Target = %v; want snake", payload.Target)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `{"target":"snake"}` {
		t.Errorf("Marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"target":"title"}`), &payload); err == nil {
		t.Error("expected error for unknown case")
	}
}
