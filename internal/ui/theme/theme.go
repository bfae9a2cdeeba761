// Package theme holds the terminal colour scheme and the styles derived from it.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/compat"
)

// Theme defines all colors used throughout the UI.
type Theme struct {
	// Base colors
	Primary color.Color

	// Text colors
	Text      compat.CompleteAdaptiveColor
	TextMuted compat.CompleteAdaptiveColor

	// Status bar
	StatusBarBg compat.CompleteAdaptiveColor
	StatusText  compat.CompleteAdaptiveColor

	// Border colors
	Border      compat.AdaptiveColor
	BorderFocus color.Color

	// Selection
	SelectedFg compat.AdaptiveColor
	SelectedBg compat.AdaptiveColor

	// Toast levels
	Success compat.AdaptiveColor
	Error   compat.AdaptiveColor
	Warning compat.AdaptiveColor
	Info    compat.AdaptiveColor

	// JSON tokens
	JSONKey    compat.AdaptiveColor
	JSONString compat.AdaptiveColor
	JSONNumber compat.AdaptiveColor
}

// DefaultTheme is the adaptive color scheme used by default.
// Use Open Color palette when possible to define colors: https://yeun.github.io/open-color/
var DefaultTheme = Theme{
	Primary: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#5F3DC4"), ANSI256: lipgloss.Color("61"), ANSI: lipgloss.Color("5")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#9775FA"), ANSI256: lipgloss.Color("141"), ANSI: lipgloss.Color("13")},
	},

	Text: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#212529"), ANSI256: lipgloss.Color("0"), ANSI: lipgloss.Color("0")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#F8F9FA"), ANSI256: lipgloss.Color("15"), ANSI: lipgloss.Color("15")},
	},
	TextMuted: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#868E96"), ANSI256: lipgloss.Color("245"), ANSI: lipgloss.Color("8")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#ADB5BD"), ANSI256: lipgloss.Color("250"), ANSI: lipgloss.Color("7")},
	},

	StatusBarBg: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#5F3DC4"), ANSI256: lipgloss.Color("61"), ANSI: lipgloss.Color("5")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#7048E8"), ANSI256: lipgloss.Color("62"), ANSI: lipgloss.Color("5")},
	},
	StatusText: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#F8F9FA"), ANSI256: lipgloss.Color("255"), ANSI: lipgloss.Color("15")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#F8F9FA"), ANSI256: lipgloss.Color("255"), ANSI: lipgloss.Color("15")},
	},

	Border: compat.AdaptiveColor{
		Light: lipgloss.Color("#CED4DA"), // Gray-4
		Dark:  lipgloss.Color("#495057"), // Gray-7
	},
	BorderFocus: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#5F3DC4"), ANSI256: lipgloss.Color("61"), ANSI: lipgloss.Color("5")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#9775FA"), ANSI256: lipgloss.Color("141"), ANSI: lipgloss.Color("13")},
	},

	SelectedFg: compat.AdaptiveColor{
		Light: lipgloss.Color("229"),
		Dark:  lipgloss.Color("229"),
	},
	SelectedBg: compat.AdaptiveColor{
		Light: lipgloss.Color("57"),
		Dark:  lipgloss.Color("57"),
	},

	Success: compat.AdaptiveColor{
		Light: lipgloss.Color("#2B8A3E"),
		Dark:  lipgloss.Color("#51CF66"),
	},
	Error: compat.AdaptiveColor{
		Light: lipgloss.Color("#C92A2A"),
		Dark:  lipgloss.Color("#FF6B6B"),
	},
	Warning: compat.AdaptiveColor{
		Light: lipgloss.Color("#E67700"),
		Dark:  lipgloss.Color("#FCC419"),
	},
	Info: compat.AdaptiveColor{
		Light: lipgloss.Color("#1864AB"),
		Dark:  lipgloss.Color("#4DABF7"),
	},

	JSONKey: compat.AdaptiveColor{
		Light: lipgloss.Color("#1864AB"),
		Dark:  lipgloss.Color("#74C0FC"),
	},
	JSONString: compat.AdaptiveColor{
		Light: lipgloss.Color("#2B8A3E"),
		Dark:  lipgloss.Color("#8CE99A"),
	},
	JSONNumber: compat.AdaptiveColor{
		Light: lipgloss.Color("#E67700"),
		Dark:  lipgloss.Color("#FFD43B"),
	},
}

// WithAccent returns t with the primary and focus colours replaced by hex.
// Invalid or empty values leave t unchanged.
func (t Theme) WithAccent(hex string) Theme {
	if len(hex) != 7 || hex[0] != '#' {
		return t
	}
	c := lipgloss.Color(hex)
	t.Primary = c
	t.BorderFocus = c
	return t
}

// Styles holds all lipgloss styles derived from a theme
type Styles struct {
	// Status bar
	StatusBar   lipgloss.Style
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	StatusSep   lipgloss.Style

	// Footer
	FooterBar  lipgloss.Style
	FooterKey  lipgloss.Style
	FooterItem lipgloss.Style

	// Content
	ViewTitle lipgloss.Style
	ViewText  lipgloss.Style
	ViewMuted lipgloss.Style

	// Table
	TableHeader    lipgloss.Style
	TableSelected  lipgloss.Style
	TableSeparator lipgloss.Style

	// Panels and dialogs
	BorderStyle lipgloss.Style
	FocusBorder lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style

	// Chart raster
	ChartAxis  lipgloss.Style
	ChartLabel lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style

	// JSON
	JSONKey    lipgloss.Style
	JSONString lipgloss.Style
	JSONNumber lipgloss.Style
	JSONBool   lipgloss.Style
	JSONNull   lipgloss.Style
}

// NewStyles creates a Styles instance from the default adaptive theme.
func NewStyles() Styles {
	return StylesFor(DefaultTheme)
}

// StylesFor derives styles from t.
func StylesFor(t Theme) Styles {
	return Styles{
		StatusBar: lipgloss.NewStyle().
			Foreground(t.StatusText).
			Background(t.StatusBarBg).
			Padding(0, 1),

		StatusLabel: lipgloss.NewStyle().
			Foreground(t.StatusText).
			Background(t.StatusBarBg),

		StatusValue: lipgloss.NewStyle().
			Foreground(t.StatusText).
			Background(t.StatusBarBg).
			Bold(true),

		StatusSep: lipgloss.NewStyle().
			Foreground(t.StatusText).
			Background(t.StatusBarBg).
			Faint(true),

		FooterBar: lipgloss.NewStyle().
			Padding(0, 1),

		FooterKey: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Border).
			Padding(0, 1),

		FooterItem: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			PaddingRight(1),

		ViewTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		ViewText: lipgloss.NewStyle().
			Foreground(t.Text),

		ViewMuted: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		TableHeader: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),

		TableSelected: lipgloss.NewStyle().
			Foreground(t.SelectedFg).
			Background(t.SelectedBg),

		TableSeparator: lipgloss.NewStyle().
			Foreground(t.Border),

		BorderStyle: lipgloss.NewStyle().
			Foreground(t.Border),

		FocusBorder: lipgloss.NewStyle().
			Foreground(t.BorderFocus),

		Button: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Border).
			Padding(0, 1),

		ButtonFocus: lipgloss.NewStyle().
			Foreground(t.StatusText).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),

		ChartAxis: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		ChartLabel: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(t.Success),

		ToastError: lipgloss.NewStyle().
			Foreground(t.Error),

		ToastWarning: lipgloss.NewStyle().
			Foreground(t.Warning),

		ToastInfo: lipgloss.NewStyle().
			Foreground(t.Info),

		JSONKey: lipgloss.NewStyle().
			Foreground(t.JSONKey),

		JSONString: lipgloss.NewStyle().
			Foreground(t.JSONString),

		JSONNumber: lipgloss.NewStyle().
			Foreground(t.JSONNumber),

		JSONBool: lipgloss.NewStyle().
			Foreground(t.Primary),

		JSONNull: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),
	}
}
