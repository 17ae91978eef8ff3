package nav

// Icon is the closed set of sidebar glyphs the console can render. Menu
// entries arrive with free-form icon names; ParseIcon maps every input to
// one of these, unknown names included.
type Icon int

const (
	IconGeneric Icon = iota
	IconHome
	IconUsers
	IconCalendar
	IconDollar
	IconTrending
	IconBarChart
	IconSettings
	IconUser
	IconShield
	IconActivity
)

// ParseIcon maps a backend icon name to an Icon. The mapping is total:
// anything unrecognized becomes IconGeneric.
func ParseIcon(name string) Icon {
	switch name {
	case "home", "dashboard":
		return IconHome
	case "users", "people", "employees":
		return IconUsers
	case "calendar", "attendance":
		return IconCalendar
	case "dollar", "dollar-sign", "payroll":
		return IconDollar
	case "trending", "trending-up", "analytics":
		return IconTrending
	case "bar-chart", "bar-chart-2", "chart":
		return IconBarChart
	case "settings", "gear":
		return IconSettings
	case "user", "profile":
		return IconUser
	case "shield", "security":
		return IconShield
	case "activity":
		return IconActivity
	default:
		return IconGeneric
	}
}

// Glyph renders the icon as a short terminal marker. ASCII mode avoids
// characters that narrow terminal fonts drop.
func (i Icon) Glyph(ascii bool) string {
	if ascii {
		switch i {
		case IconHome:
			return "H"
		case IconUsers:
			return "U"
		case IconCalendar:
			return "C"
		case IconDollar:
			return "$"
		case IconTrending:
			return "^"
		case IconBarChart:
			return "#"
		case IconSettings:
			return "*"
		case IconUser:
			return "@"
		case IconShield:
			return "S"
		case IconActivity:
			return "~"
		default:
			return "-"
		}
	}
	switch i {
	case IconHome:
		return "⌂"
	case IconUsers:
		return "◫"
	case IconCalendar:
		return "▦"
	case IconDollar:
		return "$"
	case IconTrending:
		return "↗"
	case IconBarChart:
		return "▥"
	case IconSettings:
		return "⚙"
	case IconUser:
		return "◉"
	case IconShield:
		return "▣"
	case IconActivity:
		return "∿"
	default:
		return "·"
	}
}
