package tui

import (
	"github.com/charmbracelet/lipgloss"

	"utask/internal/config"
)

// Theme holds the lipgloss styles for one color scheme.
type Theme struct {
	Name      string
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	Dim       lipgloss.Style
	Completed lipgloss.Style
	Tag       lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	FormLabel lipgloss.Style
	Focused   lipgloss.Style
}

func darkTheme() Theme {
	return Theme{
		Name:      config.ThemeDark,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FormLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

func lightTheme() Theme {
	return Theme{
		Name:      config.ThemeLight,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161")),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FormLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
	}
}

// themeFor returns the theme matching a config value.
func themeFor(name string) Theme {
	if name == config.ThemeLight {
		return lightTheme()
	}
	return darkTheme()
}
