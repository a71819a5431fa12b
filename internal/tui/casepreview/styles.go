// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     casepreview
// Description: Styles for the case preview TUI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package casepreview

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	CaseNameStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(14)

	SelectedCaseNameStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(14)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	SelectedResultStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
