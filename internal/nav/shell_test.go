package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineGroupsToggleIndependently(t *testing.T) {
	s := NewShell("/app")

	s.ToggleGroup("people", 0)
	s.ToggleGroup("admin", 0)
	assert.Equal(t, GroupOpenInline, s.GroupState("people"))
	assert.Equal(t, GroupOpenInline, s.GroupState("admin"))

	s.ToggleGroup("people", 0)
	assert.Equal(t, GroupClosed, s.GroupState("people"))
	assert.Equal(t, GroupOpenInline, s.GroupState("admin"), "other groups keep their own flag")
}

func TestCollapsedToggleOpensFlyoutAtRow(t *testing.T) {
	s := NewShell("/app")
	s.SetCollapsed(true)

	s.ToggleGroup("people", 7)
	assert.Equal(t, GroupOpenFlyout, s.GroupState("people"))
	id, row, open := s.Flyout()
	assert.True(t, open)
	assert.Equal(t, "people", id)
	assert.Equal(t, 7, row)

	// Toggling the same group again closes it.
	s.ToggleGroup("people", 7)
	_, _, open = s.Flyout()
	assert.False(t, open)
}

func TestOnlyOneFlyoutOpenAtATime(t *testing.T) {
	s := NewShell("/app")
	s.SetCollapsed(true)

	s.ToggleGroup("a", 3)
	s.ToggleGroup("b", 9)

	assert.Equal(t, GroupClosed, s.GroupState("a"), "opening B closes A's flyout")
	assert.Equal(t, GroupOpenFlyout, s.GroupState("b"))
	id, row, open := s.Flyout()
	assert.True(t, open)
	assert.Equal(t, "b", id)
	assert.Equal(t, 9, row)
}

func TestExpandingShellForceClosesFlyout(t *testing.T) {
	s := NewShell("/app")
	s.SetCollapsed(true)
	s.ToggleGroup("people", 4)

	s.SetCollapsed(false)
	_, _, open := s.Flyout()
	assert.False(t, open)
	// The inline flag was never set by the flyout.
	assert.Equal(t, GroupClosed, s.GroupState("people"))
}

func TestMobileAndCollapsedAreIndependentAxes(t *testing.T) {
	s := NewShell("/app")
	s.SetCollapsed(true)

	s.ToggleMobile()
	assert.True(t, s.MobileOpen())
	assert.True(t, s.Collapsed(), "opening the mobile drawer leaves desktop collapse alone")

	s.ToggleMobile()
	assert.False(t, s.MobileOpen())
	assert.True(t, s.Collapsed())
}

func TestNavigateKeepsInlineFlagsAndDismissesOverlays(t *testing.T) {
	s := NewShell("/app")
	s.ToggleGroup("people", 0)
	s.SetMobileOpen(true)

	s.Navigate("/app/employees")

	assert.Equal(t, "/app/employees", s.CurrentPath())
	assert.Equal(t, GroupOpenInline, s.GroupState("people"), "leaf navigation must not change group state")
	assert.False(t, s.MobileOpen())
}

func TestActivePathIsExactMatchOnly(t *testing.T) {
	s := NewShell("/app/employees")

	assert.True(t, s.IsActive("/app/employees"))
	assert.False(t, s.IsActive("/app/employee"), "prefix must not match")
	assert.False(t, s.IsActive("/app"))
	assert.False(t, s.IsActive("/app/employees/1"))
}

func TestResetDropsAllInteractionState(t *testing.T) {
	s := NewShell("/app")
	s.SetCollapsed(true)
	s.ToggleGroup("people", 2)
	s.SetMobileOpen(true)

	s.Reset("/app")

	assert.False(t, s.Collapsed())
	assert.False(t, s.MobileOpen())
	assert.Equal(t, GroupClosed, s.GroupState("people"))
	_, _, open := s.Flyout()
	assert.False(t, open)
	assert.Equal(t, "/app", s.CurrentPath())
}

func TestParseIconIsTotalWithFallback(t *testing.T) {
	assert.Equal(t, IconHome, ParseIcon("home"))
	assert.Equal(t, IconUsers, ParseIcon("users"))
	assert.Equal(t, IconDollar, ParseIcon("dollar-sign"))
	assert.Equal(t, IconGeneric, ParseIcon("sparkles"))
	assert.Equal(t, IconGeneric, ParseIcon(""))
}

func TestGlyphNeverEmpty(t *testing.T) {
	for i := IconGeneric; i <= IconActivity; i++ {
		assert.NotEmpty(t, i.Glyph(true), "ascii glyph for %d", i)
		assert.NotEmpty(t, i.Glyph(false), "unicode glyph for %d", i)
	}
}
