package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lookout/internal/dashboard"
)

// Theme is a named palette. StateColors is keyed by statusKey plus "busy";
// NoticeColors colours the notice modal by level.
type Theme struct {
	Name string

	Background string
	Surface    string // header, footer
	SurfaceAlt string // table boxes
	FocusBg    string // focused box

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string

	StateColors  map[string]string
	NoticeColors map[dashboard.NoticeLevel]string
}

// Styles are the lipgloss styles the view renders with.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	states   map[string]string
	fallback string
}

// Styles builds the styles for t.
func (t Theme) Styles() Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	bar := lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)).Padding(0, 1)

	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header: bar.Foreground(lipgloss.Color(t.Text)),
		Footer: bar.Foreground(lipgloss.Color(t.Muted)),
		Logo:   fg(t.Warning).Bold(true),

		states:   t.StateColors,
		fallback: t.Muted,
	}
}

// StatusText returns a bold foreground style for a monitor state or "busy".
// Unknown states render muted.
func (s Styles) StatusText(state string) lipgloss.Style {
	color, ok := s.states[state]
	if !ok || color == "" {
		color = s.fallback
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// WithBackground returns a copy whose text styles paint bgColor behind
// every glyph, for text placed on the header and footer bars.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, style := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.WarningText, &out.DangerText, &out.Header, &out.Footer, &out.Logo,
	} {
		*style = style.Background(bg)
	}
	return out
}

// NoticeColor returns the accent for a notice level, defaulting to Accent.
func (t Theme) NoticeColor(level dashboard.NoticeLevel) string {
	if c := t.NoticeColors[level]; c != "" {
		return c
	}
	return t.Accent
}

func stateColors(pending, healthy, failed, busy string) map[string]string {
	return map[string]string{
		"pending": pending,
		"healthy": healthy,
		"failed":  failed,
		"busy":    busy,
	}
}

func noticeColors(info, success, failure string) map[dashboard.NoticeLevel]string {
	return map[dashboard.NoticeLevel]string{
		dashboard.NoticeInfo:    info,
		dashboard.NoticeSuccess: success,
		dashboard.NoticeError:   failure,
	}
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

var themes = map[string]func() Theme{
	"Nightfox": nightfoxTheme,
	"Kanagawa": kanagawaTheme,
	"Slate":    slateTheme,
}

// GetTheme returns the named theme, or Nightfox.
func GetTheme(name string) Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return nightfoxTheme()
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns the theme names in cycle order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

// https://github.com/EdenEast/nightfox.nvim
func nightfoxTheme() Theme {
	const (
		bg0, bg1, bg2, bg3, bg4 = "#131a24", "#192330", "#212e3f", "#29394f", "#39506d"
		sel0, fg1, fg3, comment = "#2b3b51", "#cdcecf", "#71839b", "#738091"
		blue, cyan, green       = "#719cd6", "#63cdcf", "#81b29a"
		yellow, red             = "#dbc074", "#c94f6d"
	)
	return Theme{
		Name:       "Nightfox",
		Background: bg0, Surface: bg1, SurfaceAlt: bg2, FocusBg: bg3,
		SelectionBg: sel0, SelectionText: fg1,
		Border: bg4, BorderFocus: blue,
		Text: fg1, Muted: comment, Faint: fg3, Accent: blue, Warning: yellow, Danger: red,
		StateColors:  stateColors(comment, green, red, yellow),
		NoticeColors: noticeColors(cyan, green, red),
	}
}

// https://github.com/rebelot/kanagawa.nvim
func kanagawaTheme() Theme {
	const (
		sumiInk0, sumiInk3, sumiInk4, sumiInk6   = "#16161D", "#1F1F28", "#2A2A37", "#54546D"
		waveBlue1, fujiWhite, oldWhite, fujiGray = "#2D4F67", "#DCD7BA", "#C8C093", "#727169"
		crystalBlue, springBlue, springGreen     = "#7E9CD8", "#7FB4CA", "#98BB6C"
		carpYellow, waveRed                      = "#E6C384", "#E46876"
	)
	return Theme{
		Name:       "Kanagawa",
		Background: sumiInk0, Surface: sumiInk3, SurfaceAlt: sumiInk4, FocusBg: sumiInk4,
		SelectionBg: waveBlue1, SelectionText: fujiWhite,
		Border: sumiInk6, BorderFocus: crystalBlue,
		Text: fujiWhite, Muted: oldWhite, Faint: fujiGray, Accent: crystalBlue, Warning: carpYellow, Danger: waveRed,
		StateColors:  stateColors(fujiGray, springGreen, waveRed, carpYellow),
		NoticeColors: noticeColors(springBlue, springGreen, waveRed),
	}
}

// Tailwind slate and sky: https://tailwindcss.com/docs/colors
func slateTheme() Theme {
	const (
		slate950, slate900, slate800, slate700 = "#020617", "#0f172a", "#1e293b", "#334155"
		slate500, slate400, slate100, slate50  = "#64748b", "#94a3b8", "#f1f5f9", "#f8fafc"
		sky600, sky400, cyan500, green500      = "#0284c7", "#38bdf8", "#06b6d4", "#22c55e"
		amber500, red500, red600               = "#f59e0b", "#ef4444", "#dc2626"
	)
	return Theme{
		Name:       "Slate",
		Background: slate950, Surface: slate900, SurfaceAlt: slate800, FocusBg: "#283548",
		SelectionBg: sky600, SelectionText: slate50,
		Border: slate700, BorderFocus: sky400,
		Text: slate100, Muted: slate400, Faint: slate500, Accent: sky400, Warning: amber500, Danger: red500,
		StateColors:  stateColors(slate500, green500, red600, amber500),
		NoticeColors: noticeColors(cyan500, green500, red500),
	}
}
