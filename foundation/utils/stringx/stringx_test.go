// File: stringx_test.go
// Title: Unit Tests for Core String Utility Functions
// Description: Table tests for the blank checks, truncation, line splitting
//              and separator helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Tests for Before/After, extension and spelling helpers

package stringx

import (
	"reflect"
	"testing"
)

func TestIsEmptyAndBlank(t *testing.T) {
	tests := []struct {
		input string
		empty bool
		blank bool
	}{
		{"", true, true},
		{"   ", false, true},
		{"\t\n", false, true},
		{"hello", false, false},
		{" hello ", false, false},
	}

	for _, tt := range tests {
		if got := IsEmpty(tt.input); got != tt.empty {
			t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, got, tt.empty)
		}
		if got := IsBlank(tt.input); got != tt.blank {
			t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.blank)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"no truncation", "hello", 10, "...", "hello"},
		{"exact length", "hello", 5, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"unicode", "héllo wörld", 7, "…", "héllo …"},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\r\nc\rd")
	if !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("SplitLines = %q", got)
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "x", "y"); got != "x" {
		t.Errorf("FirstNonBlank = %q; want x", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank = %q; want empty", got)
	}
}

func TestBeforeAfter(t *testing.T) {
	tests := []struct {
		input  string
		sep    string
		before string
		after  string
	}{
		{"This is my string", " ", "This", "is my string"},
		{"a.b.c", ".", "a", "b.c"},
		{"nosep", "-", "nosep", ""},
		{"héllo", "", "h", "éllo"},
		{"", "-", "", ""},
	}

	for _, tt := range tests {
		if got := Before(tt.input, tt.sep); got != tt.before {
			t.Errorf("Before(%q, %q) = %q; want %q", tt.input, tt.sep, got, tt.before)
		}
		if got := After(tt.input, tt.sep); got != tt.after {
			t.Errorf("After(%q, %q) = %q; want %q", tt.input, tt.sep, got, tt.after)
		}
	}
}

func TestRemoveAndReplaceAll(t *testing.T) {
	if got := RemoveAll("a-b-c", "-"); got != "abc" {
		t.Errorf("RemoveAll = %q", got)
	}
	if got := RemoveAll("abc", ""); got != "abc" {
		t.Errorf("RemoveAll empty target = %q", got)
	}
	if got := ReplaceAll("a-b-c", "-", "+"); got != "a+b+c" {
		t.Errorf("ReplaceAll = %q", got)
	}
	if got := ReplaceAll("abc", "", "+"); got != "abc" {
		t.Errorf("ReplaceAll empty target = %q", got)
	}
}

func TestRemoveExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		base     string
	}{
		{"MyFile.spec.ts", "MyFile.spec", "MyFile.spec"},
		{"src/utils/MyFile.ts", "src/utils/MyFile", "MyFile"},
		{"src/v1.2/Makefile", "src/v1", "Makefile"},
		{"README", "README", "README"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := RemoveExtension(tt.input); got != tt.expected {
			t.Errorf("RemoveExtension(%q) = %q; want %q", tt.input, got, tt.expected)
		}
		if got := FileNameWithoutExtension(tt.input); got != tt.base {
			t.Errorf("FileNameWithoutExtension(%q) = %q; want %q", tt.input, got, tt.base)
		}
	}
}

func TestReverseAndSpell(t *testing.T) {
	if got := Reverse("héllo"); got != "olléh" {
		t.Errorf("Reverse = %q", got)
	}
	if got := Reverse(""); got != "" {
		t.Errorf("Reverse empty = %q", got)
	}
	if got := Spell("ab"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Spell = %q", got)
	}
	if got := Spell(""); len(got) != 0 {
		t.Errorf("Spell empty = %q", got)
	}
}
