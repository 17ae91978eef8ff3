package app

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sashibhusan12/HrSystem-Repo/internal/auth"
	"github.com/Sashibhusan12/HrSystem-Repo/internal/menu"
	"github.com/Sashibhusan12/HrSystem-Repo/internal/nav"
	"github.com/Sashibhusan12/HrSystem-Repo/internal/session"
	"github.com/Sashibhusan12/HrSystem-Repo/internal/telemetry"
	"github.com/Sashibhusan12/HrSystem-Repo/internal/ui"
)

const (
	authTimeout   = 10 * time.Second
	menuTimeout   = 10 * time.Second
	uploadTimeout = 30 * time.Second
)

// App wires the session store, the auth gateway, the menu loader and the
// navigation shell behind the view's Controller interface. View callbacks
// arrive on their own goroutines, so all mutable state lives under mu.
type App struct {
	cfg Config

	logger  *telemetry.EventLogger
	store   *session.Store
	gateway *auth.Gateway
	menus   *menu.Loader
	view    *ui.Root

	clientID string

	mu       sync.Mutex
	shell    *nav.Shell
	sess     session.Session
	hasSess  bool
	menuSnap menu.Snapshot
	profile  ui.ProfileState
}

func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	clientID := uuid.NewString()
	logger, err := telemetry.NewEventLogger(cfg.LogPath, clientID)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(filepath.Join(cfg.DataDir, "session.db"))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		_ = store.Close()
		_ = logger.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	view := ui.New(ui.Options{
		ASCIIOnly:    cfg.ASCIIOnly,
		Debug:        cfg.Debug,
		StyleVariant: cfg.StyleVariant,
	})

	a := &App{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		gateway:  auth.NewGateway(cfg.APIBaseURL, httpClient, store),
		menus:    menu.NewLoader(cfg.APIBaseURL, httpClient),
		view:     view,
		clientID: clientID,
		shell:    nav.NewShell(menu.PathPrefix),
		menuSnap: menu.Snapshot{Status: menu.StatusReady},
	}
	view.SetController(a)
	return a, nil
}

// Run restores any persisted session, picks the starting screen with the
// route guard, and hands control to the view's event loop.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", map[string]any{"api": a.cfg.APIBaseURL})

	sess, ok, err := a.store.Get(ctx)
	if err != nil {
		a.logger.Error("session.restore_failed", map[string]any{"error": err.Error()})
		ok = false
	}

	if GuardRoute(ok) == RouteAllow {
		a.mu.Lock()
		a.sess = sess
		a.hasSess = true
		a.shell.Reset(auth.LandingPath(sess.Role))
		a.mu.Unlock()
		a.logger.Info("session.restored", map[string]any{"role": sess.Role})
		a.view.SetScreen(ui.ScreenWorkspace)
		go a.loadMenus(sess.Token)
		go a.loadProfile(sess.UserID)
	} else {
		a.view.SetScreen(ui.ScreenLogin)
	}
	a.pushWorkspace()

	return a.view.Run()
}

func (a *App) Close() {
	_ = a.store.Close()
	_ = a.logger.Close()
}

// ── auth callbacks ─────────────────────────────────────────────────────

func (a *App) OnLoginSubmit(email, password string) {
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	a.view.SetBusy(true)
	res := a.gateway.Login(ctx, email, password)
	a.view.SetBusy(false)
	if !res.Success {
		a.logger.Info("auth.login_rejected", map[string]any{"reason": res.Message})
		a.view.FlashError(res.Message)
		return
	}
	a.enterWorkspace(ctx, res)
}

func (a *App) OnSendOTP(email string) {
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	a.view.SetBusy(true)
	res := a.gateway.SendOTP(ctx, email)
	a.view.SetBusy(false)
	if !res.Success {
		a.view.FlashError(res.Message)
		return
	}
	a.view.AdvanceToOTPCode()
	a.view.FlashStatus(res.Message)
}

func (a *App) OnVerifyOTP(email, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	a.view.SetBusy(true)
	res := a.gateway.VerifyOTP(ctx, email, code)
	a.view.SetBusy(false)
	if !res.Success {
		a.logger.Info("auth.otp_rejected", map[string]any{"reason": res.Message})
		a.view.FlashError(res.Message)
		return
	}
	a.enterWorkspace(ctx, res)
}

func (a *App) OnSendResetLink(email string) {
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	a.view.SetBusy(true)
	res := a.gateway.SendResetLink(ctx, email)
	a.view.SetBusy(false)
	if !res.Success {
		a.view.FlashError(res.Message)
		return
	}
	a.view.FlashStatus(res.Message)
}

func (a *App) OnResetPassword(email, token, newPassword, confirm string) {
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	a.view.SetBusy(true)
	res := a.gateway.ResetPassword(ctx, email, token, newPassword, confirm)
	a.view.SetBusy(false)
	if !res.Success {
		a.view.FlashError(res.Message)
		return
	}
	a.view.SetScreen(ui.ScreenLogin)
	a.view.FlashStatus(res.Message)
}

func (a *App) OnLogout() {
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	if err := a.gateway.Logout(ctx); err != nil {
		a.logger.Error("auth.logout_failed", map[string]any{"error": err.Error()})
	}

	a.mu.Lock()
	a.sess = session.Session{}
	a.hasSess = false
	a.menuSnap = menu.Snapshot{Status: menu.StatusReady}
	a.profile = ui.ProfileState{}
	a.shell.Reset(menu.PathPrefix)
	a.mu.Unlock()

	a.logger.Info("auth.logout", nil)
	a.view.SetScreen(ui.ScreenLogin)
	a.pushWorkspace()
}

// enterWorkspace runs after any successful sign-in. The gateway has
// already persisted the session, so the store read here cannot race a
// missing token.
func (a *App) enterWorkspace(ctx context.Context, res auth.Result) {
	sess, ok, err := a.store.Get(ctx)
	if err != nil || !ok {
		a.logger.Error("session.read_after_login_failed", map[string]any{})
		a.view.FlashError("Something went wrong. Please try again.")
		return
	}

	a.mu.Lock()
	a.sess = sess
	a.hasSess = true
	a.menuSnap = menu.Snapshot{Status: menu.StatusLoading, Token: sess.Token}
	a.profile = ui.ProfileState{}
	a.shell.Reset(auth.LandingPath(res.Role))
	a.mu.Unlock()

	a.logger.Info("auth.login", map[string]any{"role": sess.Role})
	a.view.SetScreen(ui.ScreenWorkspace)
	a.pushWorkspace()
	go a.loadMenus(sess.Token)
	go a.loadProfile(sess.UserID)
}

// ── navigation callbacks ───────────────────────────────────────────────

func (a *App) OnNavigate(path string) {
	normalized := menu.NormalizePath(path)
	a.mu.Lock()
	a.shell.Navigate(normalized)
	userID := a.sess.UserID
	profileLoaded := a.profile.Loaded
	a.mu.Unlock()

	a.logger.Info("nav.navigate", map[string]any{"path": normalized})
	if normalized == menu.PathPrefix+"/profile" && !profileLoaded && userID != "" {
		go a.loadProfile(userID)
	}
	a.pushWorkspace()
}

func (a *App) OnToggleGroup(groupID string, row int) {
	a.mu.Lock()
	a.shell.ToggleGroup(groupID, row)
	a.mu.Unlock()
	a.pushWorkspace()
}

func (a *App) OnCloseFlyout() {
	a.mu.Lock()
	a.shell.CloseFlyout()
	a.mu.Unlock()
	a.pushWorkspace()
}

func (a *App) OnToggleCollapse() {
	a.mu.Lock()
	a.shell.ToggleCollapsed()
	a.mu.Unlock()
	a.pushWorkspace()
}

func (a *App) OnToggleMobile() {
	a.mu.Lock()
	a.shell.ToggleMobile()
	a.mu.Unlock()
	a.pushWorkspace()
}

func (a *App) OnReloadMenus() {
	a.mu.Lock()
	token := a.sess.Token
	a.menuSnap = menu.Snapshot{Status: menu.StatusLoading, Token: token}
	a.mu.Unlock()
	a.pushWorkspace()
	a.loadMenus(token)
}

func (a *App) OnQuit() {
	a.logger.Info("app.quit", nil)
	a.view.Stop()
}

func (a *App) OnResize(cols, rows int) {
	a.logger.Info("ui.resize", map[string]any{"cols": cols, "rows": rows})
}

// ── data loading ───────────────────────────────────────────────────────

// loadMenus fetches the menu forest for the given token. The snapshot is
// dropped if the session token changed while the request was in flight,
// so a logout or re-login can never see a stale forest.
func (a *App) loadMenus(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), menuTimeout)
	defer cancel()

	snap := a.menus.Fetch(ctx, token)

	a.mu.Lock()
	if a.sess.Token != snap.Token {
		a.mu.Unlock()
		a.logger.Info("menu.stale_dropped", map[string]any{})
		return
	}
	a.menuSnap = snap
	a.mu.Unlock()

	if snap.Status == menu.StatusError {
		a.logger.Error("menu.load_failed", map[string]any{"error": snap.Err})
	} else {
		a.logger.Info("menu.loaded", map[string]any{"nodes": menu.CountNodes(snap.Roots)})
	}
	a.pushWorkspace()
}

func (a *App) loadProfile(userID string) {
	if userID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
	defer cancel()

	profile, res := a.gateway.FetchProfile(ctx, userID)
	if !res.Success {
		a.logger.Error("profile.load_failed", map[string]any{"reason": res.Message})
		return
	}

	a.mu.Lock()
	if a.sess.UserID != userID {
		a.mu.Unlock()
		return
	}
	a.profile = ui.ProfileState{
		Loaded:     true,
		Username:   profile.Username,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Location:   profile.Location,
		Position:   profile.Position,
		Department: profile.Department,
		ProfileURL: profile.ProfileURL,
	}
	a.mu.Unlock()
	a.pushWorkspace()
}

// ── view state ─────────────────────────────────────────────────────────

// pushWorkspace projects the current controller state into one immutable
// WorkspaceState and hands it to the view.
func (a *App) pushWorkspace() {
	a.mu.Lock()
	ws := a.workspaceStateLocked()
	a.mu.Unlock()
	a.view.SetWorkspace(ws)
	a.view.RequestDraw()
}

func (a *App) workspaceStateLocked() ui.WorkspaceState {
	items := menuItems(a.menuSnap.Roots)
	flyoutID, flyoutRow, flyoutOpen := a.shell.Flyout()
	if !flyoutOpen {
		flyoutID, flyoutRow = "", 0
	}

	groupOpen := map[string]bool{}
	for _, item := range items {
		if len(item.Children) > 0 && a.shell.GroupState(item.ID) == nav.GroupOpenInline {
			groupOpen[item.ID] = true
		}
	}

	status := ui.MenuReady
	switch a.menuSnap.Status {
	case menu.StatusLoading:
		status = ui.MenuLoading
	case menu.StatusError:
		status = ui.MenuError
	}

	return ui.WorkspaceState{
		Menu:       items,
		MenuStatus: status,
		MenuError:  a.menuSnap.Err,
		Identity: ui.Identity{
			DisplayName: a.sess.DisplayName,
			RoleLabel:   auth.RoleLabel(a.sess.Role),
			Email:       a.sess.Email,
		},
		Nav: ui.NavState{
			Collapsed:   a.shell.Collapsed(),
			MobileOpen:  a.shell.MobileOpen(),
			FlyoutGroup: flyoutID,
			FlyoutRow:   flyoutRow,
			CurrentPath: a.shell.CurrentPath(),
			GroupOpen:   groupOpen,
		},
		Profile: a.profile,
	}
}

func menuItems(roots []*menu.Node) []ui.MenuItem {
	out := make([]ui.MenuItem, 0, len(roots))
	for _, n := range roots {
		out = append(out, ui.MenuItem{
			ID:       n.MenuID,
			Title:    n.MenuName,
			Path:     n.Path,
			Icon:     nav.ParseIcon(n.Icon),
			Children: menuItems(n.Children),
		})
	}
	return out
}
