// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/wslenv/internal/discovery"

	"github.com/charmbracelet/lipgloss"
)

// Palette for CLI output; adaptive so light terminals stay readable.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorOK      = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorFail    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorCommand = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	// TitleStyle renders section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// SubtitleStyle renders secondary text and table borders.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	// SuccessStyle renders values and healthy states.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorOK)
	// WarningStyle renders recoverable problems.
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarn)
	// ErrorStyle renders failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFail)
	// CmdStyle renders field names, keys and command lines.
	CmdStyle = lipgloss.NewStyle().Foreground(colorCommand)

	tableHeaderStyle = TitleStyle.Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	// missingCellStyle dims placeholder cells such as an unknown version.
	missingCellStyle = SubtitleStyle.Padding(0, 1)
)

// severityLabel renders the prefix printed before a diagnostic message.
func severityLabel(sev discovery.Severity) string {
	if sev == discovery.SeverityError {
		return ErrorStyle.Render("error:")
	}
	return WarningStyle.Render("warning:")
}
