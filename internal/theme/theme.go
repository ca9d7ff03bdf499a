// Package theme provides the colour palettes used by the TUI.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colours used by the screens.
type Theme struct {
	Name      string
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // text drawn on Accent
	Border    lipgloss.Color
	BorderDim lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	SuccessFg lipgloss.Color
	ErrorFg   lipgloss.Color
	Light     bool
}

// Theme names.
const (
	DraculaName      = "dracula"
	DraculaLightName = "dracula-light"
	GruvboxDarkName  = "gruvbox-dark"
	GruvboxLightName = "gruvbox-light"
	NordName         = "nord"
	MonokaiName      = "monokai"
)

var palettes = map[string]Theme{
	DraculaName: {
		Accent: "#BD93F9", AccentFg: "#282A36",
		Border: "#6272A4", BorderDim: "#44475A",
		MutedFg: "#6272A4", TextFg: "#F8F8F2",
		SuccessFg: "#50FA7B", ErrorFg: "#FF5555",
	},
	DraculaLightName: {
		Accent: "#C6DBE5", AccentFg: "#24292F",
		Border: "#D0D7DE", BorderDim: "#E8E8E8",
		MutedFg: "#6E7781", TextFg: "#24292F",
		SuccessFg: "#059669", ErrorFg: "#DC2626",
		Light: true,
	},
	GruvboxDarkName: {
		Accent: "#FABD2F", AccentFg: "#282828",
		Border: "#504945", BorderDim: "#3C3836",
		MutedFg: "#928374", TextFg: "#EBDBB2",
		SuccessFg: "#B8BB26", ErrorFg: "#FB4934",
	},
	GruvboxLightName: {
		Accent: "#D79921", AccentFg: "#FBF1C7",
		Border: "#D5C4A1", BorderDim: "#C0B58A",
		MutedFg: "#7C6F64", TextFg: "#3C3836",
		SuccessFg: "#79740E", ErrorFg: "#9D0006",
		Light: true,
	},
	NordName: {
		Accent: "#88C0D0", AccentFg: "#2E3440",
		Border: "#4C566A", BorderDim: "#434C5E",
		MutedFg: "#81A1C1", TextFg: "#E5E9F0",
		SuccessFg: "#A3BE8C", ErrorFg: "#BF616A",
	},
	MonokaiName: {
		Accent: "#A6E22E", AccentFg: "#272822",
		Border: "#75715E", BorderDim: "#3E3D32",
		MutedFg: "#75715E", TextFg: "#F8F8F2",
		SuccessFg: "#A6E22E", ErrorFg: "#F92672",
	},
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = DraculaName
		p = palettes[name]
	}
	p.Name = name
	return &p
}

// Dracula returns the default dark theme.
func Dracula() *Theme {
	return GetTheme(DraculaName)
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return DraculaLightName
}

// Detect picks the default theme matching the terminal background.
func Detect() string {
	if lipgloss.HasDarkBackground() {
		return DefaultDark()
	}
	return DefaultLight()
}

// AvailableThemes returns the known theme names in sorted order.
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
