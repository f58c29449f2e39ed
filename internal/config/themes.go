package config

import "strings"

// ThemeConfig holds the color palette for a theme.
type ThemeConfig struct {
	Primary    string // Main brand color
	Secondary  string // Secondary accent color
	Background string // Main background
	Foreground string // Main text color
	Comment    string // Muted text, borders
	Success    string // For positive status
	Warning    string // For warnings
	Error      string // For errors
	Accent     string // For selected items, cursors
}

// UIColors maps a palette onto the elements the screens draw.
type UIColors struct {
	TitleFG     string
	HelpFG      string
	Divider     string
	ChipBorder  string
	ChipSquare  string
	Selected    string
	Highlight   string
	ButtonFG    string
	ButtonBG    string
	ButtonHotBG string
	Affordance  string
	Warning     string
}

var themes = map[string]ThemeConfig{
	"dracula": {
		Primary:    "#ff2e63",
		Secondary:  "#ff8c00",
		Background: "#0d0221",
		Foreground: "#f0f0f0",
		Comment:    "#5c527f",
		Success:    "#00f5d4",
		Warning:    "#f9f871",
		Error:      "#ff2e63",
		Accent:     "#9d4edd",
	},
	"jade": {
		Primary:    "#50fa7b",
		Secondary:  "#8be9fd",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Comment:    "#6272a4",
		Success:    "#50fa7b",
		Warning:    "#f1fa8c",
		Error:      "#ff5555",
		Accent:     "#50fa7b",
	},
	"nord": {
		Primary:    "#0077be",
		Secondary:  "#5e81ac",
		Background: "#0a192f",
		Foreground: "#e5e9f0",
		Comment:    "#4c566a",
		Success:    "#a3be8c",
		Warning:    "#ebcb8b",
		Error:      "#bf616a",
		Accent:     "#0077be",
	},
	"everforest": {
		Primary:    "#4a7c59",
		Secondary:  "#a7c080",
		Background: "#2d353b",
		Foreground: "#d3c6aa",
		Comment:    "#5c6a72",
		Success:    "#a7c080",
		Warning:    "#dbbc7f",
		Error:      "#e67e80",
		Accent:     "#4a7c59",
	},
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{"dracula", "everforest", "jade", "nord"}
}

// GetTheme returns the named palette, falling back to dracula.
func GetTheme(name string) ThemeConfig {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["dracula"]
}

// MapThemeToUI assigns palette colors to UI elements.
func MapThemeToUI(t ThemeConfig) UIColors {
	return UIColors{
		TitleFG:     t.Primary,
		HelpFG:      t.Comment,
		Divider:     t.Comment,
		ChipBorder:  t.Foreground,
		ChipSquare:  t.Secondary,
		Selected:    t.Accent,
		Highlight:   t.Error,
		ButtonFG:    t.Background,
		ButtonBG:    t.Foreground,
		ButtonHotBG: t.Success,
		Affordance:  t.Primary,
		Warning:     t.Warning,
	}
}
