package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	dim       lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Color
	tabActive lipgloss.Color
	tabBg     lipgloss.Color
	surface   lipgloss.Color
	statusBg  lipgloss.Color
	statusFg  lipgloss.Color
	green     lipgloss.Color
	gold      lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   "#7571F9",
		secondary: "#ABABAB",
		dim:       "#626262",
		accent:    "#F25D94",
		border:    "#383838",
		tabActive: "#7571F9",
		tabBg:     "#2A2A3E",
		surface:   "#1E1E2E",
		statusBg:  "#16213E",
		statusFg:  "#ABABAB",
		green:     "#25D366",
		gold:      "#F5C542",
	}
	lightPalette = palette{
		primary:   "#5A56E0",
		secondary: "#3D3D3D",
		dim:       "#9B9B9B",
		accent:    "#D6336C",
		border:    "#DBDBDB",
		tabActive: "#5A56E0",
		tabBg:     "#EEEEEE",
		surface:   "#F7F7F7",
		statusBg:  "#E8E8E8",
		statusFg:  "#3D3D3D",
		green:     "#04B575",
		gold:      "#B8860B",
	}
)

type styles struct {
	header        lipgloss.Style
	headerDate    lipgloss.Style
	listPane      lipgloss.Style
	previewPane   lipgloss.Style
	itemTitle     lipgloss.Style
	itemSelected  lipgloss.Style
	itemRead      lipgloss.Style
	itemSource    lipgloss.Style
	itemTime      lipgloss.Style
	savedMark     lipgloss.Style
	previewTitle  lipgloss.Style
	previewSource lipgloss.Style
	previewBody   lipgloss.Style
	previewLink   lipgloss.Style
	placeholder   lipgloss.Style
	bullet        lipgloss.Style
	tabActive     lipgloss.Style
	tabInactive   lipgloss.Style
	tabSeparator  lipgloss.Style
	tabBar        lipgloss.Style
	badge         lipgloss.Style
	statusBar     lipgloss.Style
	spinner       lipgloss.Style
	message       lipgloss.Style
	errorText     lipgloss.Style
	helpCard      lipgloss.Style
	helpDim       lipgloss.Style
}

// newStyles builds the style set for theme "dark" or "light". Anything
// else is dark.
func newStyles(theme string) styles {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}

	return styles{
		header:     lipgloss.NewStyle().Bold(true).Foreground(p.primary).PaddingLeft(1),
		headerDate: lipgloss.NewStyle().Foreground(p.dim).Align(lipgloss.Right),

		listPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
		previewPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),

		itemTitle:    lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		itemSelected: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		itemRead:     lipgloss.NewStyle().Foreground(p.dim),
		itemSource:   lipgloss.NewStyle().Foreground(p.green),
		itemTime:     lipgloss.NewStyle().Foreground(p.dim),
		savedMark:    lipgloss.NewStyle().Foreground(p.gold).Bold(true),

		previewTitle:  lipgloss.NewStyle().Bold(true).Foreground(p.primary).MarginBottom(1),
		previewSource: lipgloss.NewStyle().Foreground(p.green).MarginBottom(1),
		previewBody:   lipgloss.NewStyle().Foreground(p.secondary),
		previewLink:   lipgloss.NewStyle().Foreground(p.dim).Italic(true).MarginTop(1),
		placeholder:   lipgloss.NewStyle().Foreground(p.dim).Italic(true),
		bullet:        lipgloss.NewStyle().Foreground(p.accent),

		tabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.tabActive).
			Padding(0, 1).
			Bold(true),
		tabInactive: lipgloss.NewStyle().
			Foreground(p.secondary).
			Background(p.tabBg).
			Padding(0, 1),
		tabSeparator: lipgloss.NewStyle().Foreground(p.dim),
		tabBar:       lipgloss.NewStyle().Background(p.surface).PaddingLeft(1),
		badge:        lipgloss.NewStyle().Foreground(p.gold).Bold(true),

		statusBar: lipgloss.NewStyle().
			Background(p.statusBg).
			Foreground(p.statusFg).
			PaddingLeft(1).
			PaddingRight(1),

		spinner:   lipgloss.NewStyle().Foreground(p.accent),
		message:   lipgloss.NewStyle().Foreground(p.secondary),
		errorText: lipgloss.NewStyle().Foreground(p.accent).Bold(true),

		helpCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),
		helpDim: lipgloss.NewStyle().Foreground(p.dim),
	}
}
