package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/Sashibhusan12/HrSystem-Repo/internal/auth"
)

type applyMsg struct {
	fn func(*Root)
}

type drawMsg struct{}
type animateMsg time.Time

// loginMode selects which form the login screen shows.
type loginMode int

const (
	modePassword loginMode = iota
	modeOTPEmail
	modeOTPCode
	modeForgot
)

type shellKeyMap struct {
	Collapse key.Binding
	Drawer   key.Binding
	Reload   key.Binding
	Logout   key.Binding
	Quit     key.Binding
}

func (k shellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Collapse, k.Drawer, k.Reload, k.Logout, k.Quit}
}

func (k shellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Collapse, k.Drawer, k.Reload}, {k.Logout, k.Quit}}
}

// sidebarRow is one visible line of the sidebar, flattened from the menu
// forest according to the current shell state.
type sidebarRow struct {
	item  MenuItem
	depth int
	group bool
	row   int
}

type Options struct {
	ASCIIOnly    bool
	Debug        bool
	StyleVariant string
}

// Root is the bubbletea model for the whole console. All state mutation
// from the controller goes through apply(), which routes through the
// program's message loop while it runs.
type Root struct {
	theme   Theme
	variant string
	ascii   bool
	debug   bool
	ctrl    Controller

	mu      sync.Mutex
	program *tea.Program
	running bool

	screen Screen
	layout LayoutMode
	cols   int
	rows   int

	ws        WorkspaceState
	busy      bool
	status    string
	errFlash  string
	shakeLeft int

	mode       loginMode
	loginFocus int
	emailInput textinput.Model
	passInput  textinput.Model
	codeInput  textinput.Model

	resetFocus  int
	resetInputs []textinput.Model

	navIndex    int
	flyoutIndex int

	helpView help.Model
	keymap   shellKeyMap
	waitSpin spinner.Model
	logger   *clog.Logger

	drawerPos float64
	drawerVel float64
	spring    harmonica.Spring

	drawPending atomic.Bool
}

func New(opts Options) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "hrconsole-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	theme := ThemeForVariant(opts.StyleVariant)

	h := help.New()
	h.Styles = help.DefaultDarkStyles()

	waitSpin := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(theme.Pending),
	)

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 80

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 80
	pass.EchoMode = textinput.EchoPassword

	code := textinput.New()
	code.Placeholder = "6-digit code"
	code.CharLimit = 6

	resetInputs := make([]textinput.Model, 4)
	for i, placeholder := range []string{"email", "reset token", "new password", "confirm password"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 120
		if i >= 2 {
			ti.EchoMode = textinput.EchoPassword
		}
		resetInputs[i] = ti
	}

	r := &Root{
		theme:       theme,
		variant:     opts.StyleVariant,
		ascii:       opts.ASCIIOnly,
		debug:       opts.Debug,
		screen:      ScreenLogin,
		layout:      LayoutWide,
		cols:        120,
		rows:        30,
		helpView:    h,
		waitSpin:    waitSpin,
		logger:      logger,
		spring:      harmonica.NewSpring(harmonica.FPS(60), 9.0, 0.85),
		emailInput:  email,
		passInput:   pass,
		codeInput:   code,
		resetInputs: resetInputs,
	}
	r.keymap = shellKeyMap{
		Collapse: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "Collapse")),
		Drawer:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "Drawer")),
		Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "Reload menus")),
		Logout:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "Sign out")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "Quit")),
	}
	r.emailInput.Focus()
	return r
}

func (r *Root) Init() tea.Cmd {
	return tea.Batch(spinnerTickCmd(r.waitSpin), animateTickCmd())
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		r.dispatchController(func(c Controller) { c.OnResize(msg.Width, msg.Height) })
		return r, nil
	case applyMsg:
		if msg.fn != nil {
			msg.fn(r)
		}
		return r, r.animateIfNeeded()
	case drawMsg:
		r.drawPending.Store(false)
		return r, nil
	case animateMsg:
		target := 0.0
		if r.ws.Nav.MobileOpen && r.layout == LayoutCompact {
			target = 1.0
		}
		r.drawerPos, r.drawerVel = r.spring.Update(r.drawerPos, r.drawerVel, target)
		if r.shouldAnimate(target) {
			return r, animateTickCmd()
		}
		r.drawerPos = target
		r.drawerVel = 0
		return r, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		r.waitSpin, cmd = r.waitSpin.Update(msg)
		return r, cmd
	case tea.MouseClickMsg:
		return r.handleMouseClick(msg)
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec)
			width := max(1, r.cols)
			view = tea.NewView(r.theme.Fail.Width(width).Render("UI recovered from a rendering panic. Check logs."))
		}
	}()

	if r.cols < 1 {
		r.cols = 120
	}
	if r.rows < 1 {
		r.rows = 30
	}

	var base string
	switch r.screen {
	case ScreenLogin:
		base = r.renderLogin()
	case ScreenReset:
		base = r.renderReset()
	default:
		base = r.renderWorkspace()
	}

	v := tea.NewView(base)
	v.AltScreen = true
	return v
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
}

func (r *Root) SetScreen(screen Screen) {
	r.apply(func(m *Root) {
		if m.screen == ScreenLogin && screen != ScreenLogin {
			m.passInput.SetValue("")
			m.codeInput.SetValue("")
		}
		m.screen = screen
		m.errFlash = ""
		if screen == ScreenLogin {
			m.mode = modePassword
			m.loginFocus = 0
			m.focusLoginInputs()
		}
		if screen == ScreenWorkspace {
			m.navIndex = 0
			m.flyoutIndex = 0
		}
	})
}

// SetWorkspace replaces the workspace snapshot. The controller pushes a
// fresh one after every state change: menu load, navigation, shell toggle.
func (r *Root) SetWorkspace(ws WorkspaceState) {
	r.apply(func(m *Root) {
		hadFlyout := m.ws.Nav.FlyoutGroup != ""
		m.ws = ws
		rowsVisible := len(m.sidebarRows())
		if m.navIndex >= rowsVisible {
			m.navIndex = max(0, rowsVisible-1)
		}
		if ws.Nav.FlyoutGroup == "" || !hadFlyout {
			m.flyoutIndex = 0
		}
	})
}

func (r *Root) SetBusy(busy bool) {
	r.apply(func(m *Root) {
		m.busy = busy
	})
}

func (r *Root) FlashStatus(msg string) {
	r.apply(func(m *Root) {
		m.status = msg
		m.errFlash = ""
	})
}

// FlashError shows the failure affordance: the message renders in the
// fail style and the form header shakes for a few frames.
func (r *Root) FlashError(msg string) {
	r.apply(func(m *Root) {
		m.errFlash = msg
		m.status = ""
		m.shakeLeft = 4
	})
}

func (r *Root) RequestDraw() {
	r.mu.Lock()
	p := r.program
	running := r.running
	r.mu.Unlock()
	if !running || p == nil {
		return
	}
	if !r.drawPending.CompareAndSwap(false, true) {
		return
	}
	time.AfterFunc(16*time.Millisecond, func() {
		r.mu.Lock()
		p := r.program
		running := r.running
		r.mu.Unlock()
		if !running || p == nil {
			r.drawPending.Store(false)
			return
		}
		p.Send(drawMsg{})
	})
}

func (r *Root) apply(fn func(*Root)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	p := r.program
	running := r.running
	if !running || p == nil {
		fn(r)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	p.Send(applyMsg{fn: fn})
}

func (r *Root) dispatchController(fn func(Controller)) {
	if fn == nil || r.ctrl == nil {
		return
	}
	ctrl := r.ctrl
	go fn(ctrl)
}

// ── input handling ─────────────────────────────────────────────────────

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, r.keymap.Quit) {
		r.dispatchController(func(c Controller) { c.OnQuit() })
		return r, nil
	}

	switch r.screen {
	case ScreenLogin:
		return r.handleLoginKey(msg)
	case ScreenReset:
		return r.handleResetKey(msg)
	default:
		return r.handleWorkspaceKey(msg)
	}
}

func (r *Root) handleLoginKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Code == tea.KeyTab:
		r.loginFocus = (r.loginFocus + 1) % r.loginFieldCount()
		r.focusLoginInputs()
		return r, nil
	case msg.Code == tea.KeyEnter:
		r.submitLogin()
		return r, nil
	case msg.Code == tea.KeyEsc:
		if r.mode != modePassword {
			r.mode = modePassword
			r.loginFocus = 0
			r.errFlash = ""
			r.focusLoginInputs()
		}
		return r, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+o"))):
		r.mode = modeOTPEmail
		r.loginFocus = 0
		r.errFlash = ""
		r.focusLoginInputs()
		return r, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+f"))):
		r.mode = modeForgot
		r.loginFocus = 0
		r.errFlash = ""
		r.focusLoginInputs()
		return r, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+t"))):
		r.screen = ScreenReset
		r.resetFocus = 0
		r.errFlash = ""
		r.focusResetInputs()
		return r, nil
	}

	var cmd tea.Cmd
	switch r.focusedLoginField() {
	case "email":
		r.emailInput, cmd = r.emailInput.Update(msg)
	case "password":
		r.passInput, cmd = r.passInput.Update(msg)
	case "code":
		r.codeInput, cmd = r.codeInput.Update(msg)
	}
	return r, cmd
}

func (r *Root) loginFieldCount() int {
	switch r.mode {
	case modePassword:
		return 2
	default:
		return 1
	}
}

func (r *Root) focusedLoginField() string {
	switch r.mode {
	case modePassword:
		if r.loginFocus == 1 {
			return "password"
		}
		return "email"
	case modeOTPCode:
		return "code"
	default:
		return "email"
	}
}

func (r *Root) focusLoginInputs() {
	r.emailInput.Blur()
	r.passInput.Blur()
	r.codeInput.Blur()
	switch r.focusedLoginField() {
	case "email":
		r.emailInput.Focus()
	case "password":
		r.passInput.Focus()
	case "code":
		r.codeInput.Focus()
	}
}

func (r *Root) submitLogin() {
	email := strings.TrimSpace(r.emailInput.Value())
	switch r.mode {
	case modePassword:
		password := r.passInput.Value()
		r.dispatchController(func(c Controller) { c.OnLoginSubmit(email, password) })
	case modeOTPEmail:
		r.dispatchController(func(c Controller) { c.OnSendOTP(email) })
	case modeOTPCode:
		code := strings.TrimSpace(r.codeInput.Value())
		r.dispatchController(func(c Controller) { c.OnVerifyOTP(email, code) })
	case modeForgot:
		r.dispatchController(func(c Controller) { c.OnSendResetLink(email) })
	}
}

// AdvanceToOTPCode moves the login form from the email step to the code
// step after a code was dispatched.
func (r *Root) AdvanceToOTPCode() {
	r.apply(func(m *Root) {
		m.mode = modeOTPCode
		m.loginFocus = 0
		m.focusLoginInputs()
	})
}

func (r *Root) handleResetKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.Code {
	case tea.KeyEsc:
		r.screen = ScreenLogin
		r.mode = modePassword
		r.loginFocus = 0
		r.errFlash = ""
		r.focusLoginInputs()
		return r, nil
	case tea.KeyTab:
		r.resetFocus = (r.resetFocus + 1) % len(r.resetInputs)
		r.focusResetInputs()
		return r, nil
	case tea.KeyEnter:
		email := strings.TrimSpace(r.resetInputs[0].Value())
		token := strings.TrimSpace(r.resetInputs[1].Value())
		pw := r.resetInputs[2].Value()
		confirm := r.resetInputs[3].Value()
		r.dispatchController(func(c Controller) { c.OnResetPassword(email, token, pw, confirm) })
		return r, nil
	}
	var cmd tea.Cmd
	r.resetInputs[r.resetFocus], cmd = r.resetInputs[r.resetFocus].Update(msg)
	return r, cmd
}

func (r *Root) focusResetInputs() {
	for i := range r.resetInputs {
		r.resetInputs[i].Blur()
	}
	r.resetInputs[r.resetFocus].Focus()
}

func (r *Root) handleWorkspaceKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// An open flyout captures navigation keys first.
	if r.ws.Nav.FlyoutGroup != "" {
		return r.handleFlyoutKey(msg)
	}

	switch {
	case key.Matches(msg, r.keymap.Collapse):
		r.dispatchController(func(c Controller) { c.OnToggleCollapse() })
		return r, nil
	case key.Matches(msg, r.keymap.Drawer):
		r.dispatchController(func(c Controller) { c.OnToggleMobile() })
		return r, nil
	case key.Matches(msg, r.keymap.Reload):
		r.dispatchController(func(c Controller) { c.OnReloadMenus() })
		return r, nil
	case key.Matches(msg, r.keymap.Logout):
		r.dispatchController(func(c Controller) { c.OnLogout() })
		return r, nil
	}

	switch msg.Code {
	case tea.KeyUp:
		if r.navIndex > 0 {
			r.navIndex--
		}
		return r, nil
	case tea.KeyDown:
		if r.navIndex < len(r.sidebarRows())-1 {
			r.navIndex++
		}
		return r, nil
	case tea.KeyEnter:
		r.activateSidebarRow(r.navIndex)
		return r, nil
	case tea.KeyEsc:
		if r.ws.Nav.MobileOpen {
			r.dispatchController(func(c Controller) { c.OnToggleMobile() })
		}
		return r, nil
	}
	return r, nil
}

func (r *Root) handleFlyoutKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	children := r.flyoutChildren()
	switch msg.Code {
	case tea.KeyEsc:
		r.dispatchController(func(c Controller) { c.OnCloseFlyout() })
		return r, nil
	case tea.KeyUp:
		if r.flyoutIndex > 0 {
			r.flyoutIndex--
		}
		return r, nil
	case tea.KeyDown:
		if r.flyoutIndex < len(children)-1 {
			r.flyoutIndex++
		}
		return r, nil
	case tea.KeyEnter:
		if r.flyoutIndex < len(children) {
			path := children[r.flyoutIndex].Path
			r.dispatchController(func(c Controller) { c.OnNavigate(path) })
		}
		return r, nil
	}
	// Any other key falls through as an outside interaction and closes
	// the flyout, same as clicking elsewhere.
	r.dispatchController(func(c Controller) { c.OnCloseFlyout() })
	return r, nil
}

func (r *Root) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	m := msg.Mouse()
	if m.Button != tea.MouseLeft || r.screen != ScreenWorkspace {
		return r, nil
	}

	// Click inside an open flyout selects a child; anywhere else closes it.
	if r.ws.Nav.FlyoutGroup != "" {
		if idx, ok := r.flyoutHit(m.X, m.Y); ok {
			children := r.flyoutChildren()
			if idx < len(children) {
				path := children[idx].Path
				r.dispatchController(func(c Controller) { c.OnNavigate(path) })
			}
			return r, nil
		}
		r.dispatchController(func(c Controller) { c.OnCloseFlyout() })
		return r, nil
	}

	if r.layout == LayoutWide || (r.layout == LayoutCompact && r.ws.Nav.MobileOpen) {
		width := sidebarWidth(r.ws.Nav.Collapsed)
		if m.X < width {
			idx := m.Y - sidebarBodyTop
			if idx >= 0 && idx < len(r.sidebarRows()) {
				r.navIndex = idx
				r.activateSidebarRow(idx)
			}
			return r, nil
		}
	}
	return r, nil
}

// activateSidebarRow runs the click/enter semantics for one row: leaves
// navigate, groups toggle inline or open a flyout anchored at their row.
func (r *Root) activateSidebarRow(idx int) {
	rows := r.sidebarRows()
	if idx < 0 || idx >= len(rows) {
		return
	}
	row := rows[idx]
	if row.group {
		id := row.item.ID
		screenRow := sidebarBodyTop + row.row
		r.flyoutIndex = 0
		r.dispatchController(func(c Controller) { c.OnToggleGroup(id, screenRow) })
		return
	}
	path := row.item.Path
	r.dispatchController(func(c Controller) { c.OnNavigate(path) })
}

// ── sidebar flattening ─────────────────────────────────────────────────

// sidebarBodyTop is the screen row where the first sidebar item renders:
// header row, then the panel's top border, then the brand row.
const sidebarBodyTop = 3

func (r *Root) sidebarRows() []sidebarRow {
	out := make([]sidebarRow, 0, len(r.ws.Menu)*2)
	rowNo := 0
	for _, item := range r.ws.Menu {
		group := len(item.Children) > 0
		out = append(out, sidebarRow{item: item, group: group, row: rowNo})
		rowNo++
		if group && !r.ws.Nav.Collapsed && r.ws.Nav.GroupOpen[item.ID] {
			for _, child := range item.Children {
				out = append(out, sidebarRow{item: child, depth: 1, row: rowNo})
				rowNo++
			}
		}
	}
	return out
}

func (r *Root) flyoutChildren() []MenuItem {
	id := r.ws.Nav.FlyoutGroup
	if id == "" {
		return nil
	}
	for _, item := range r.ws.Menu {
		if item.ID == id {
			return item.Children
		}
	}
	return nil
}

func (r *Root) flyoutHit(x, y int) (int, bool) {
	children := r.flyoutChildren()
	if len(children) == 0 {
		return 0, false
	}
	left := sidebarWidth(true)
	top := r.ws.Nav.FlyoutRow
	// One border row above the first child.
	idx := y - top - 1
	if x < left || x >= left+flyoutWidth || idx < 0 || idx >= len(children) {
		return 0, false
	}
	return idx, true
}

const flyoutWidth = 24

// ── rendering ──────────────────────────────────────────────────────────

func (r *Root) renderLogin() string {
	w, h := r.cols, r.rows
	title := "HR Elite"
	subtitle := map[loginMode]string{
		modePassword: "Sign in to the admin console",
		modeOTPEmail: "Sign in with a one-time code",
		modeOTPCode:  "Enter the code we sent you",
		modeForgot:   "Request a password reset link",
	}[r.mode]

	lines := []string{
		r.theme.Accent.Render(title),
		r.theme.Muted.Render(subtitle),
		"",
	}

	focusMark := func(focused bool) string {
		if focused {
			return r.theme.Cursor.Render("> ")
		}
		return "  "
	}

	switch r.mode {
	case modePassword:
		lines = append(lines,
			focusMark(r.loginFocus == 0)+"Email    "+r.emailInput.View(),
			focusMark(r.loginFocus == 1)+"Password "+r.passInput.View(),
		)
	case modeOTPEmail, modeForgot:
		lines = append(lines, focusMark(true)+"Email    "+r.emailInput.View())
	case modeOTPCode:
		lines = append(lines,
			"  Email    "+r.theme.Muted.Render(r.emailInput.Value()),
			focusMark(true)+"Code     "+r.codeInput.View(),
		)
	}

	lines = append(lines, "")
	if r.busy {
		lines = append(lines, r.waitSpin.View()+" "+r.theme.Pending.Render("Contacting server..."))
	} else if r.errFlash != "" {
		lines = append(lines, r.theme.Fail.Render(r.shakePrefix()+r.errFlash))
	} else if r.status != "" {
		lines = append(lines, r.theme.Pass.Render(r.status))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines,
		"",
		r.theme.Muted.Render("enter submit · tab next field · ctrl+o code sign-in"),
		r.theme.Muted.Render("ctrl+f forgot password · ctrl+t redeem reset link · ctrl+q quit"),
	)

	panel := r.drawPanel("Sign in", lines, min(64, max(44, w/2)), len(lines)+2)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
}

func (r *Root) renderReset() string {
	w, h := r.cols, r.rows
	labels := []string{"Email   ", "Token   ", "New     ", "Confirm "}

	lines := []string{
		r.theme.Accent.Render("Reset password"),
		r.theme.Muted.Render("Use the email and token from your reset link"),
		"",
	}
	for i, input := range r.resetInputs {
		mark := "  "
		if i == r.resetFocus {
			mark = r.theme.Cursor.Render("> ")
		}
		lines = append(lines, mark+labels[i]+input.View())
	}
	strength := passwordStrengthHint(r.resetInputs[2].Value())
	lines = append(lines, "", r.theme.Muted.Render(strength))
	if r.busy {
		lines = append(lines, r.waitSpin.View()+" "+r.theme.Pending.Render("Contacting server..."))
	} else if r.errFlash != "" {
		lines = append(lines, r.theme.Fail.Render(r.shakePrefix()+r.errFlash))
	} else if r.status != "" {
		lines = append(lines, r.theme.Pass.Render(r.status))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "", r.theme.Muted.Render("enter submit · tab next field · esc back to sign-in"))

	panel := r.drawPanel("Reset", lines, min(70, max(48, w/2)), len(lines)+2)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
}

func (r *Root) renderWorkspace() string {
	w, h := r.cols, r.rows
	mode := DetermineLayoutMode(w, h)
	r.layout = mode

	if mode == LayoutTooSmall {
		msg := []string{
			"Terminal too small",
			fmt.Sprintf("Current: %dx%d", w, h),
			"Minimum: 60x18",
			"Resize the terminal to continue.",
		}
		panel := r.drawPanel("Resize Required", msg, min(50, w), min(10, h))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
	}

	header := r.headerText()
	status := r.statusText()
	bodyH := max(3, h-2)

	var body string
	if mode == LayoutWide {
		sbW := sidebarWidth(r.ws.Nav.Collapsed)
		sidebar := r.renderSidebar(sbW, bodyH)
		content := r.renderContent(max(20, w-sbW), bodyH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	} else {
		body = r.renderContent(w, bodyH)
	}

	base := header + "\n" + body + "\n" + status

	// Mobile drawer slides over the content on compact layouts.
	if mode == LayoutCompact && (r.ws.Nav.MobileOpen || r.drawerPos > 0.01) {
		sbW := sidebarWidth(false)
		drawer := r.renderSidebar(sbW, bodyH)
		offset := int((1 - r.drawerPos) * float64(sbW))
		base = composeOverlayAt(base, drawer, w, h, 1, -offset)
	}

	// Flyout overlay in collapsed mode.
	if r.ws.Nav.FlyoutGroup != "" && mode == LayoutWide {
		fly := r.renderFlyout()
		if fly != "" {
			base = composeOverlayAt(base, fly, w, h, r.ws.Nav.FlyoutRow, sidebarWidth(true))
		}
	}
	return base
}

func (r *Root) headerText() string {
	ident := r.ws.Identity
	left := "HR Elite"
	if r.ws.Nav.CurrentPath != "" {
		left += "  " + r.ws.Nav.CurrentPath
	}
	right := ident.DisplayName
	if ident.RoleLabel != "" {
		right += " (" + ident.RoleLabel + ")"
	}
	gap := r.cols - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return r.theme.Header.Width(max(1, r.cols)).Render(left + strings.Repeat(" ", gap) + right)
}

func (r *Root) statusText() string {
	var s string
	switch {
	case r.busy:
		s = r.waitSpin.View() + " working..."
	case r.errFlash != "":
		s = r.theme.Fail.Render(r.errFlash)
	case r.status != "":
		s = r.status
	default:
		s = r.helpView.View(r.keymap)
	}
	return r.theme.Status.Width(max(1, r.cols)).Render(trimForWidth(s, max(1, r.cols-2)))
}

func (r *Root) renderSidebar(width, height int) string {
	rows := r.sidebarRows()
	lines := make([]string, 0, len(rows)+2)
	if r.ws.Nav.Collapsed {
		lines = append(lines, r.theme.PanelTitle.Render("HR"))
	} else {
		lines = append(lines, r.theme.PanelTitle.Render("HR Elite"))
	}

	switch r.ws.MenuStatus {
	case MenuLoading:
		lines = append(lines, r.waitSpin.View()+" loading")
	case MenuError:
		if r.ws.Nav.Collapsed {
			lines = append(lines, r.theme.Fail.Render("!"))
		} else {
			lines = append(lines, r.theme.Fail.Render(trimForWidth("menus unavailable", width-4)))
		}
	}

	innerW := width - 2
	for i, row := range rows {
		line := r.sidebarLine(row, innerW, i == r.navIndex)
		lines = append(lines, line)
	}

	if !r.ws.Nav.Collapsed {
		lines = append(lines, "", r.theme.Muted.Render(trimForWidth(r.ws.Identity.Email, innerW)))
	}
	return r.drawPanel("", lines, width, height)
}

func (r *Root) sidebarLine(row sidebarRow, width int, selected bool) string {
	icon := row.item.Icon.Glyph(r.ascii)
	var text string
	if r.ws.Nav.Collapsed {
		text = " " + icon
		if row.group {
			text += r.chevron(r.ws.Nav.FlyoutGroup == row.item.ID)
		}
	} else {
		indent := strings.Repeat("  ", row.depth)
		text = indent + icon + " " + row.item.Title
		if row.group {
			text += " " + r.chevron(r.ws.Nav.GroupOpen[row.item.ID])
		}
	}
	text = trimForWidth(text, max(1, width-2))

	active := !row.group && r.ws.Nav.CurrentPath == row.item.Path
	switch {
	case selected && active:
		return r.theme.Cursor.Render(">") + r.theme.ActiveItem.Render(text)
	case selected:
		return r.theme.Cursor.Render(">") + r.theme.PanelBody.Render(text)
	case active:
		return " " + r.theme.ActiveItem.Render(text)
	default:
		return " " + r.theme.PanelBody.Render(text)
	}
}

func (r *Root) chevron(open bool) string {
	if r.ascii {
		if open {
			return "v"
		}
		return ">"
	}
	if open {
		return "▾"
	}
	return "▸"
}

func (r *Root) renderFlyout() string {
	children := r.flyoutChildren()
	if len(children) == 0 {
		return ""
	}
	lines := make([]string, 0, len(children))
	for i, child := range children {
		mark := "  "
		if i == r.flyoutIndex {
			mark = r.theme.Cursor.Render("> ")
		}
		text := child.Icon.Glyph(r.ascii) + " " + child.Title
		if r.ws.Nav.CurrentPath == child.Path {
			text = r.theme.ActiveItem.Render(text)
		}
		lines = append(lines, mark+trimForWidth(text, flyoutWidth-4))
	}
	return r.drawPanel("", lines, flyoutWidth, len(lines)+2)
}

func (r *Root) renderContent(width, height int) string {
	title, lines := r.pageContent(r.ws.Nav.CurrentPath, width-4)
	return r.drawPanel(title, lines, width, height)
}

func (r *Root) shakePrefix() string {
	if r.shakeLeft <= 0 {
		return ""
	}
	r.shakeLeft--
	if r.shakeLeft%2 == 0 {
		return " "
	}
	return ""
}

func (r *Root) drawPanel(title string, lines []string, width, height int) string {
	width = max(4, width)
	height = max(3, height)
	innerW := width - 2
	innerH := height - 2

	h := "─"
	v := "│"
	tl, tr, bl, br := "┌", "┐", "└", "┘"
	if r.ascii {
		h = "-"
		v = "|"
		tl, tr, bl, br = "+", "+", "+", "+"
	}

	top := tl + strings.Repeat(h, innerW) + tr
	if title != "" && innerW > 2 {
		t := " " + title + " "
		runes := []rune(top)
		for i, ch := range []rune(t) {
			pos := 1 + i
			if pos >= len(runes)-1 {
				break
			}
			runes[pos] = ch
		}
		top = string(runes)
	}

	out := make([]string, 0, height)
	out = append(out, r.theme.PanelBorder.Render(top))
	for row := 0; row < innerH; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		line = padRune(line, innerW)
		out = append(out, r.theme.PanelBorder.Render(v)+line+r.theme.PanelBorder.Render(v))
	}
	out = append(out, r.theme.PanelBorder.Render(bl+strings.Repeat(h, innerW)+br))
	return strings.Join(out, "\n")
}

func (r *Root) animateIfNeeded() tea.Cmd {
	target := 0.0
	if r.ws.Nav.MobileOpen && r.layout == LayoutCompact {
		target = 1.0
	}
	if r.shouldAnimate(target) {
		return animateTickCmd()
	}
	return nil
}

func (r *Root) shouldAnimate(target float64) bool {
	const eps = 0.01
	if r.drawerPos < target-eps || r.drawerPos > target+eps {
		return true
	}
	return r.drawerVel > eps || r.drawerVel < -eps
}

func (r *Root) onModelPanic(where string, recovered any) {
	r.logger.Error("ui panic", "where", where, "recovered", recovered)
}

// ── helpers ────────────────────────────────────────────────────────────

func animateTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return animateMsg(t) })
}

func spinnerTickCmd(s spinner.Model) tea.Cmd {
	return s.Tick
}

func passwordStrengthHint(pwd string) string {
	if pwd == "" {
		return "Strength: (type a new password)"
	}
	return "Strength: " + auth.PasswordStrength(pwd).Label
}

func composeOverlayAt(base, overlay string, cols, rows, startRow, startCol int) string {
	if cols <= 0 || rows <= 0 {
		return base
	}
	base = ansi.Strip(base)
	overlay = ansi.Strip(overlay)
	baseLines := strings.Split(base, "\n")
	if len(baseLines) < rows {
		pad := make([]string, rows-len(baseLines))
		baseLines = append(baseLines, pad...)
	}
	for i := 0; i < rows; i++ {
		baseLines[i] = padRune(baseLines[i], cols)
	}

	overlayLines := strings.Split(strings.TrimRight(overlay, "\n"), "\n")
	if len(overlayLines) == 0 {
		return strings.Join(baseLines[:rows], "\n")
	}
	ow := 1
	for _, line := range overlayLines {
		if lw := len([]rune(line)); lw > ow {
			ow = lw
		}
	}
	if ow > cols {
		ow = cols
	}
	if startRow < 0 {
		startRow = 0
	}

	for i, line := range overlayLines {
		row := startRow + i
		if row < 0 || row >= rows {
			continue
		}
		dst := []rune(baseLines[row])
		src := []rune(line)
		if len(src) > ow {
			src = src[:ow]
		}
		for j := 0; j < ow; j++ {
			col := startCol + j
			if col < 0 || col >= len(dst) {
				continue
			}
			dst[col] = ' '
		}
		for j := 0; j < len(src); j++ {
			col := startCol + j
			if col < 0 || col >= len(dst) {
				continue
			}
			dst[col] = src[j]
		}
		baseLines[row] = string(dst)
	}
	return strings.Join(baseLines[:rows], "\n")
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(ansi.Strip(s), "\n", " "))
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func padRune(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
