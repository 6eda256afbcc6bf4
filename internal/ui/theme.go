// Package ui holds terminal helpers shared by mpgen commands: headless
// detection, colors and copy progress output.
package ui

// ThemeColors holds the hex colors used by interactive output.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme controls how progress output is drawn.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// NewTheme returns the default theme. noColor forces plain output.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: ThemeColors{
			Primary:   "#07C160",
			Secondary: "#1677FF",
			Success:   "#10B981",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
	}
}
