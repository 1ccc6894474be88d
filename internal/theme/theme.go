package theme

import (
	"charm.land/lipgloss/v2"
)

// Theme styles CLI status output.
type Theme struct {
	base    lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

func New() Theme {
	return Theme{
		base:    lipgloss.NewStyle().Foreground(ColorWhite),
		label:   lipgloss.NewStyle().Foreground(ColorDim),
		value:   lipgloss.NewStyle().Foreground(ColorAccent).Bold(true),
		success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		failure: lipgloss.NewStyle().Foreground(ColorFailure).Bold(true),
		info:    lipgloss.NewStyle().Foreground(ColorInfo),
	}
}

func (t Theme) Base() lipgloss.Style { return t.base }

// Field renders "label: value" on one line.
func (t Theme) Field(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, t.label.Render(label+": "), t.value.Render(value))
}

func (t Theme) Success(msg string) string { return t.success.Render("✓ " + msg) }
func (t Theme) Failure(msg string) string { return t.failure.Render("✗ " + msg) }
func (t Theme) Info(msg string) string    { return t.info.Render(msg) }
