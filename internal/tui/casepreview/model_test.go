package casepreview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/toolbox/foundation/utils/stringx"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModel_Typing(t *testing.T) {
	m := New("", stringx.CaseKebab)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("fooBar")})
	if m.Value() != "fooBar" {
		t.Fatalf("Value() = %q, want fooBar", m.Value())
	}
	if got := m.Result(stringx.CaseSnake); got != "foo_bar" {
		t.Errorf("Result(snake) = %q, want foo_bar", got)
	}

	view := m.View()
	for _, want := range []string{"kebab", "foo-bar", "FOO_BAR", "FooBar"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_TabCyclesSelection(t *testing.T) {
	m := New("x", stringx.CaseUncapitalize)
	if m.Selected() != stringx.CaseUncapitalize {
		t.Fatalf("Selected() = %v, want uncapitalize", m.Selected())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != stringx.CaseKebab {
		t.Errorf("after tab Selected() = %v, want kebab (wrap around)", m.Selected())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Selected() != stringx.CaseCapitalize {
		t.Errorf("after shift+tab Selected() = %v, want capitalize", m.Selected())
	}
}

func TestModel_EnterAccepts(t *testing.T) {
	m := New("theQUICKBrownFox", stringx.CaseCamel)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter command is not tea.Quit")
	}

	chosen, ok := m.Chosen()
	if !ok || chosen != "theQuickBrownFox" {
		t.Errorf("Chosen() = (%q, %v), want (theQuickBrownFox, true)", chosen, ok)
	}
	if m.View() != "" {
		t.Error("View() after quitting should be empty")
	}
}

func TestModel_EscQuitsWithoutResult(t *testing.T) {
	m := New("foo", stringx.CaseKebab)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if _, ok := m.Chosen(); ok {
		t.Error("esc should not accept a result")
	}
}
