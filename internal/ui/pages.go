package ui

import (
	"fmt"
	"strings"
)

// pageContent returns the panel title and body lines for the current
// route. Pages are informational placeholders; the sidebar and the
// routes it serves are the interactive surface.
func (r *Root) pageContent(path string, width int) (string, []string) {
	switch path {
	case "", "/app":
		return "Dashboard", r.dashboardLines(width)
	case "/app/employees":
		return "Employees", r.tablePage(width,
			[]string{"Name", "Department", "Position"},
			[][]string{
				{"(directory loads from the employee service)", "", ""},
			})
	case "/app/attendance":
		return "Attendance", []string{
			"Attendance records are tracked per employee per day.",
			"",
			r.theme.Muted.Render("Select an employee from the Employees page to drill in."),
		}
	case "/app/payroll":
		return "Payroll", []string{
			"Payroll runs are generated monthly from attendance data.",
			"",
			r.theme.Muted.Render("Disbursement history appears once a run completes."),
		}
	case "/app/analytics":
		return "Analytics", []string{
			"Workforce analytics aggregate headcount, attrition and leave.",
			"",
			r.theme.Muted.Render("Charts are served by the reporting backend."),
		}
	case "/app/profile":
		return "My Profile", r.profileLines(width)
	case "/app/settings":
		return "Settings", r.settingsLines()
	default:
		return "Not Found", []string{
			fmt.Sprintf("No page is registered for %q.", path),
			"",
			r.theme.Muted.Render("Pick an entry from the sidebar."),
		}
	}
}

func (r *Root) dashboardLines(width int) []string {
	ident := r.ws.Identity
	greet := "Welcome back"
	if ident.DisplayName != "" {
		greet = "Welcome back, " + ident.DisplayName
	}
	lines := []string{
		r.theme.Accent.Render(trimForWidth(greet, width)),
		"",
	}
	if ident.RoleLabel != "" {
		lines = append(lines, "Signed in as "+ident.RoleLabel+".")
	}
	switch r.ws.MenuStatus {
	case MenuLoading:
		lines = append(lines, "", r.waitSpin.View()+" Loading your workspace...")
	case MenuError:
		msg := r.ws.MenuError
		if msg == "" {
			msg = "The menu service is unavailable."
		}
		lines = append(lines, "", r.theme.Fail.Render(trimForWidth(msg, width)),
			r.theme.Muted.Render("Press ctrl+r to retry."))
	default:
		lines = append(lines, "",
			fmt.Sprintf("You have access to %d top-level sections.", len(r.ws.Menu)))
	}
	return lines
}

func (r *Root) profileLines(width int) []string {
	p := r.ws.Profile
	if !p.Loaded {
		return []string{
			r.waitSpin.View() + " Loading profile...",
		}
	}
	field := func(label, value string) string {
		if value == "" {
			value = r.theme.Muted.Render("(not set)")
		}
		return fmt.Sprintf("%-12s %s", label, trimForWidth(value, max(1, width-13)))
	}
	return []string{
		r.theme.Accent.Render(p.Username),
		"",
		field("Email", p.Email),
		field("Phone", p.Phone),
		field("Location", p.Location),
		field("Position", p.Position),
		field("Department", p.Department),
		field("Picture", p.ProfileURL),
	}
}

func (r *Root) settingsLines() []string {
	glyphs := "unicode"
	if r.ascii {
		glyphs = "ascii"
	}
	variant := r.variant
	if variant == "" {
		variant = "indigo_suite"
	}
	return []string{
		"Theme variant: " + variant,
		"Glyph set:     " + glyphs,
		"",
		r.theme.Muted.Render("Set HRCONSOLE_THEME and HRCONSOLE_ASCII before launch to change these."),
	}
}

// tablePage renders a minimal aligned table for list pages.
func (r *Root) tablePage(width int, headers []string, rows [][]string) []string {
	colW := max(8, (width-2)/max(1, len(headers)))
	line := func(cells []string, style func(...string) string) string {
		var b strings.Builder
		for _, c := range cells {
			b.WriteString(padRune(trimForWidth(c, colW-1), colW))
		}
		return style(b.String())
	}
	out := []string{
		line(headers, r.theme.PanelTitle.Render),
	}
	for _, row := range rows {
		out = append(out, line(row, r.theme.PanelBody.Render))
	}
	return out
}
