package ui

import "github.com/Sashibhusan12/HrSystem-Repo/internal/nav"

// Controller receives user intents from the view. Implementations must be
// safe to call from the UI goroutine; the view dispatches each callback on
// its own goroutine so slow handlers never stall rendering.
type Controller interface {
	OnLoginSubmit(email, password string)
	OnSendOTP(email string)
	OnVerifyOTP(email, code string)
	OnSendResetLink(email string)
	OnResetPassword(email, token, newPassword, confirm string)
	OnLogout()

	OnNavigate(path string)
	OnToggleGroup(groupID string, row int)
	OnCloseFlyout()
	OnToggleCollapse()
	OnToggleMobile()
	OnReloadMenus()

	OnQuit()
	OnResize(cols, rows int)
}

// Screen selects which top-level view renders.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenReset
	ScreenWorkspace
)

// MenuStatus mirrors the loader states for presentation.
type MenuStatus int

const (
	MenuLoading MenuStatus = iota
	MenuReady
	MenuError
)

// MenuItem is one node of the navigation forest as the view renders it.
type MenuItem struct {
	ID       string
	Title    string
	Path     string
	Icon     nav.Icon
	Children []MenuItem
}

// NavState is the shell's interaction state snapshot pushed by the
// controller; the view never mutates it directly.
type NavState struct {
	Collapsed   bool
	MobileOpen  bool
	FlyoutGroup string
	FlyoutRow   int
	CurrentPath string
	GroupOpen   map[string]bool
}

// Identity is what the shell shows about the signed-in user.
type Identity struct {
	DisplayName string
	RoleLabel   string
	Email       string
}

// ProfileState backs the profile page.
type ProfileState struct {
	Loaded     bool
	Username   string
	Email      string
	Phone      string
	Location   string
	Position   string
	Department string
	ProfileURL string
}

// WorkspaceState is everything the workspace screen needs to draw.
type WorkspaceState struct {
	Menu       []MenuItem
	MenuStatus MenuStatus
	MenuError  string
	Identity   Identity
	Nav        NavState
	Profile    ProfileState
}
