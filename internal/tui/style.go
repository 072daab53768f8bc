package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AmmannChristian/pwstrength/internal/strength"
)

const meterWidth = 20

var (
	verdictStyles = map[strength.Verdict]lipgloss.Style{
		strength.VeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		strength.Weak:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8C16")).Bold(true),
		strength.Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		strength.Strong:     lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D")).Bold(true),
		strength.VeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("#36CFC9")).Bold(true),
	}
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	issueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// RenderVerdict returns the verdict label in its color.
func RenderVerdict(v strength.Verdict) string {
	style, ok := verdictStyles[v]
	if !ok {
		return v.String()
	}
	return style.Render(v.String())
}

// Meter draws a bar filled in proportion to the verdict level.
func Meter(v strength.Verdict) string {
	levels := int(strength.VeryStrong) + 1
	filled := (int(v) + 1) * meterWidth / levels
	if filled < 0 {
		filled = 0
	}
	if filled > meterWidth {
		filled = meterWidth
	}
	bar := strings.Repeat("█", filled)
	rest := strings.Repeat("░", meterWidth-filled)
	style, ok := verdictStyles[v]
	if !ok {
		return bar + mutedStyle.Render(rest)
	}
	return style.Render(bar) + mutedStyle.Render(rest)
}

// RenderReport formats an analysis with its diagnostics for terminal output.
func RenderReport(a strength.Analysis, specialChars string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  score %d\n", Meter(a.Verdict), RenderVerdict(a.Verdict), a.Score())
	for _, issue := range strength.Diagnose(a, specialChars) {
		b.WriteString(issueStyle.Render("  - "+issue) + "\n")
	}
	return b.String()
}
