package nav

// GroupState is the visible state of one sidebar group.
type GroupState int

const (
	GroupClosed GroupState = iota
	GroupOpenInline
	GroupOpenFlyout
)

// Shell is the navigation shell's interaction state. It is pure state: the
// view reads it, intent handlers mutate it, and nothing here touches the
// network or the session.
//
// Collapsed and mobile-open are independent axes. Inline group flags are
// independent of each other; flyouts are exclusive, at most one open.
type Shell struct {
	collapsed  bool
	mobileOpen bool

	inlineOpen map[string]bool
	flyoutID   string
	flyoutRow  int

	currentPath string
}

func NewShell(startPath string) *Shell {
	return &Shell{
		inlineOpen:  map[string]bool{},
		currentPath: startPath,
	}
}

func (s *Shell) Collapsed() bool  { return s.collapsed }
func (s *Shell) MobileOpen() bool { return s.mobileOpen }

// SetCollapsed switches the sidebar between full and icon-only mode.
// Leaving collapsed mode force-closes any open flyout; inline flags keep
// their values so groups reopen where the user left them.
func (s *Shell) SetCollapsed(collapsed bool) {
	if s.collapsed && !collapsed {
		s.CloseFlyout()
	}
	s.collapsed = collapsed
}

func (s *Shell) ToggleCollapsed() {
	s.SetCollapsed(!s.collapsed)
}

// SetMobileOpen slides the whole shell in or out on small layouts without
// touching the desktop collapsed state.
func (s *Shell) SetMobileOpen(open bool) {
	s.mobileOpen = open
}

func (s *Shell) ToggleMobile() {
	s.mobileOpen = !s.mobileOpen
}

// ToggleGroup handles a click on a group toggle. In expanded mode it flips
// the group's own inline flag. In collapsed mode it opens a flyout anchored
// at the toggle's on-screen row, replacing whichever flyout was open.
func (s *Shell) ToggleGroup(groupID string, row int) {
	if !s.collapsed {
		s.inlineOpen[groupID] = !s.inlineOpen[groupID]
		return
	}
	if s.flyoutID == groupID {
		s.CloseFlyout()
		return
	}
	s.flyoutID = groupID
	s.flyoutRow = row
}

// CloseFlyout dismisses the open flyout, if any. Used for outside clicks
// and mode switches.
func (s *Shell) CloseFlyout() {
	s.flyoutID = ""
	s.flyoutRow = 0
}

// GroupState reports how the group should render right now.
func (s *Shell) GroupState(groupID string) GroupState {
	if s.collapsed {
		if s.flyoutID == groupID {
			return GroupOpenFlyout
		}
		return GroupClosed
	}
	if s.inlineOpen[groupID] {
		return GroupOpenInline
	}
	return GroupClosed
}

// Flyout returns the anchored flyout, when one is open.
func (s *Shell) Flyout() (groupID string, row int, open bool) {
	if s.flyoutID == "" {
		return "", 0, false
	}
	return s.flyoutID, s.flyoutRow, true
}

// Navigate records the new location. Leaf navigation leaves inline group
// flags alone; overlays (flyout, mobile drawer) dismiss because the page
// under them changed.
func (s *Shell) Navigate(path string) {
	s.currentPath = path
	s.CloseFlyout()
	s.mobileOpen = false
}

func (s *Shell) CurrentPath() string { return s.currentPath }

// IsActive reports whether a leaf with the given normalized path is the
// current location. Exact match only; prefixes do not highlight.
func (s *Shell) IsActive(path string) bool {
	return path == s.currentPath
}

// Reset drops all interaction state. Called on login/logout transitions so
// one identity's open groups never leak into the next.
func (s *Shell) Reset(startPath string) {
	s.collapsed = false
	s.mobileOpen = false
	s.inlineOpen = map[string]bool{}
	s.CloseFlyout()
	s.currentPath = startPath
}
