package wizard

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Dark-background palette of the prompts.
const (
	ColorPrimary   = "#07C160"
	ColorSecondary = "#1677FF"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

var (
	primary   = lipgloss.AdaptiveColor{Light: "#06A050", Dark: ColorPrimary}
	secondary = lipgloss.AdaptiveColor{Light: "#0958D9", Dark: ColorSecondary}
	green     = lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red       = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text      = lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}
)

// newFormTheme creates the huh theme used by FormPrompter.
func newFormTheme(noColor bool) *huh.Theme {
	t := huh.ThemeBase()
	if noColor {
		return t
	}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}

// searchStyles styles the fuzzy search picker.
type searchStyles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Cursor      lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Match       lipgloss.Style
	Help        lipgloss.Style
}

func newSearchStyles(noColor bool) searchStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return searchStyles{
			Title:       plain.Bold(true),
			Description: plain,
			Cursor:      plain,
			Item:        plain,
			Selected:    plain,
			Match:       plain.Underline(true),
			Help:        plain,
		}
	}
	return searchStyles{
		Title:       lipgloss.NewStyle().Foreground(primary).Bold(true),
		Description: lipgloss.NewStyle().Foreground(muted),
		Cursor:      lipgloss.NewStyle().Foreground(primary),
		Item:        lipgloss.NewStyle().Foreground(text),
		Selected:    lipgloss.NewStyle().Foreground(green),
		Match:       lipgloss.NewStyle().Foreground(secondary).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(muted),
	}
}
