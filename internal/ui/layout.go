package ui

// LayoutMode selects how the workspace arranges itself.
type LayoutMode int

const (
	// LayoutWide shows the sidebar next to the content.
	LayoutWide LayoutMode = iota
	// LayoutCompact hides the sidebar; it slides in as the mobile drawer.
	LayoutCompact
	// LayoutTooSmall blocks everything behind a resize prompt.
	LayoutTooSmall
)

func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < 60 || rows < 18 {
		return LayoutTooSmall
	}
	if cols < 96 {
		return LayoutCompact
	}
	return LayoutWide
}

// Sidebar widths for the two desktop modes.
const (
	sidebarWidthExpanded  = 26
	sidebarWidthCollapsed = 6
)

func sidebarWidth(collapsed bool) int {
	if collapsed {
		return sidebarWidthCollapsed
	}
	return sidebarWidthExpanded
}
