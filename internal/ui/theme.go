package ui

import lipgloss "charm.land/lipgloss/v2"

type Theme struct {
	Header       lipgloss.Style
	Status       lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelBorder  lipgloss.Style
	PanelBody    lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Accent       lipgloss.Style
	ActiveItem   lipgloss.Style
	Cursor       lipgloss.Style
	Pass         lipgloss.Style
	Fail         lipgloss.Style
	Pending      lipgloss.Style
	Muted        lipgloss.Style
}

func DefaultTheme() Theme {
	return ThemeForVariant("indigo_suite")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "slate_ledger":
		return slateLedgerTheme()
	default:
		return indigoSuiteTheme()
	}
}

func indigoSuiteTheme() Theme {
	indigo := lipgloss.Color("#6D6DF0")
	ink := lipgloss.Color("#14142B")
	slate := lipgloss.Color("#242447")
	paper := lipgloss.Color("#EFEFFA")
	mint := lipgloss.Color("#6FE3B4")
	rose := lipgloss.Color("#F06D91")
	amber := lipgloss.Color("#F0C46D")
	border := lipgloss.Color("#4A4A85")

	return Theme{
		Header: lipgloss.NewStyle().
			Background(ink).
			Foreground(paper).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Background(slate).
			Foreground(paper).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(indigo).
			Bold(true),
		PanelBorder: lipgloss.NewStyle().
			Foreground(border),
		PanelBody: lipgloss.NewStyle().
			Foreground(paper),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(indigo).
			Background(ink).
			Foreground(paper).
			Padding(0, 1),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(indigo).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(indigo).
			Bold(true),
		ActiveItem: lipgloss.NewStyle().
			Background(indigo).
			Foreground(ink).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(amber).
			Bold(true),
		Pass: lipgloss.NewStyle().
			Foreground(mint).
			Bold(true),
		Fail: lipgloss.NewStyle().
			Foreground(rose).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(amber),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8E8EB8")),
	}
}

func slateLedgerTheme() Theme {
	steel := lipgloss.Color("#7FA8C9")
	coal := lipgloss.Color("#10161C")
	gunmetal := lipgloss.Color("#1F2B36")
	paper := lipgloss.Color("#EDF2F6")
	sage := lipgloss.Color("#8FC9A8")
	brick := lipgloss.Color("#D98080")
	gold := lipgloss.Color("#D4AF37")

	return Theme{
		Header:      lipgloss.NewStyle().Background(coal).Foreground(paper).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(gunmetal).Foreground(paper).Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Foreground(gold).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(gunmetal),
		PanelBody:   lipgloss.NewStyle().Foreground(paper),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(gold).
			Background(coal).
			Foreground(paper).
			Padding(0, 1),
		OverlayTitle: lipgloss.NewStyle().Foreground(gold).Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(steel).Bold(true),
		ActiveItem:   lipgloss.NewStyle().Background(steel).Foreground(coal).Bold(true),
		Cursor:       lipgloss.NewStyle().Foreground(gold).Bold(true),
		Pass:         lipgloss.NewStyle().Foreground(sage).Bold(true),
		Fail:         lipgloss.NewStyle().Foreground(brick).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(gold),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("#6E8091")),
	}
}
