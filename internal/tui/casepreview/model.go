// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     casepreview
// Description: Bubbletea model showing every case conversion of the typed
//              text as it changes
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package casepreview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/toolbox/foundation/utils/stringx"
)

// Model is the Bubbletea model for the case preview
type Model struct {
	input    textinput.Model
	cases    []stringx.Case
	selected int
	width    int

	chosen   string
	accepted bool
	quitting bool
}

// New creates a preview model. initial prefills the input and selected is
// highlighted first
func New(initial string, selected stringx.Case) Model {
	ti := textinput.New()
	ti.Placeholder = "type an identifier..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 48
	ti.SetValue(initial)
	ti.Focus()

	cases := stringx.AllCases()
	index := 0
	for i, c := range cases {
		if c == selected {
			index = i
		}
	}

	return Model{
		input:    ti,
		cases:    cases,
		selected: index,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			m.chosen = m.Result(m.Selected())
			m.accepted = true
			m.quitting = true
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			m.selected = (m.selected + 1) % len(m.cases)
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.selected = (m.selected - 1 + len(m.cases)) % len(m.cases)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 8; w > 10 {
			m.input.Width = w
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Case Preview"))
	b.WriteString("\n")
	b.WriteString(InputStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	for i, c := range m.cases {
		name, result := CaseNameStyle, ResultStyle
		marker := "  "
		if i == m.selected {
			name, result = SelectedCaseNameStyle, SelectedResultStyle
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(name.Render(c.String()))
		b.WriteString(result.Render(m.Result(c)))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("tab/↓ next • shift+tab/↑ previous • enter accept • esc quit"))
	return b.String()
}

// Value returns the current input
func (m Model) Value() string {
	return m.input.Value()
}

// Selected returns the highlighted case
func (m Model) Selected() stringx.Case {
	return m.cases[m.selected]
}

// Result converts the current input with c
func (m Model) Result(c stringx.Case) string {
	return stringx.Convert(c, m.input.Value())
}

// Chosen returns the accepted result and whether enter was pressed
func (m Model) Chosen() (string, bool) {
	return m.chosen, m.accepted
}
