package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode"

	"github.com/Sashibhusan12/HrSystem-Repo/internal/session"
)

// Fallback messages shown when the server gives nothing usable back.
const (
	msgUnreachable = "Unable to reach the server. Please try again."
	msgGeneric     = "Something went wrong. Please try again."
)

// Result is the tagged outcome every gateway operation reports. Transport
// and business failures are indistinguishable here on purpose: the UI only
// ever sees a message.
type Result struct {
	Success bool
	Role    string
	Message string
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

// Profile is the record served by getusersbyid. The backend returns an
// array; the first element is the caller's profile.
type Profile struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Position   string `json:"position"`
	Department string `json:"department"`
	ProfileURL string `json:"profileUrl"`
}

// Gateway is the only layer that touches the authentication backend. It
// owns the session store writes triggered by login and logout; everything
// above it sees tagged results, never transport errors.
type Gateway struct {
	baseURL string
	client  *http.Client
	store   *session.Store
}

func NewGateway(baseURL string, client *http.Client, store *session.Store) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, store: store}
}

type loginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// Login exchanges credentials for a session. On success the session is
// persisted before the result is returned, so callers observing success
// always find the session in the store.
func (g *Gateway) Login(ctx context.Context, email, password string) Result {
	if !validEmail(email) {
		return failure("Enter a valid email address.")
	}
	if password == "" {
		return failure("Password is required.")
	}
	return g.finishLogin(ctx, email, "/LoginResistarion/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SendOTP asks the backend to mail a one-time code.
func (g *Gateway) SendOTP(ctx context.Context, email string) Result {
	if !validEmail(email) {
		return failure("Enter a valid email address.")
	}
	var body struct {
		Message string `json:"message"`
	}
	if msg, ok := g.postJSON(ctx, "/LoginResistarion/send-otp", map[string]string{"email": email}, &body); !ok {
		return failure(msg)
	}
	msg := body.Message
	if msg == "" {
		msg = "A one-time code was sent to " + email + "."
	}
	return Result{Success: true, Message: msg}
}

// VerifyOTP exchanges a 6-digit code for a session, identical in effect to
// Login.
func (g *Gateway) VerifyOTP(ctx context.Context, email, code string) Result {
	if !validEmail(email) {
		return failure("Enter a valid email address.")
	}
	if !validOTP(code) {
		return failure("The code must be 6 digits.")
	}
	return g.finishLogin(ctx, email, "/LoginResistarion/verify-otp", map[string]string{
		"email": email,
		"otp":   code,
	})
}

// SendResetLink asks for an out-of-band password reset link. No session
// state changes.
func (g *Gateway) SendResetLink(ctx context.Context, email string) Result {
	if !validEmail(email) {
		return failure("Enter a valid email address.")
	}
	var body struct {
		Message string `json:"message"`
	}
	if msg, ok := g.postJSON(ctx, "/LoginResistarion/forgot-password", map[string]string{"email": email}, &body); !ok {
		return failure(msg)
	}
	msg := body.Message
	if msg == "" {
		msg = "If that account exists, a reset link is on its way."
	}
	return Result{Success: true, Message: msg}
}

// ResetPassword redeems a mailed reset token. Mismatched or weak passwords
// are rejected before any network call.
func (g *Gateway) ResetPassword(ctx context.Context, email, token, newPassword, confirm string) Result {
	if email == "" || token == "" {
		return failure("Invalid or missing reset link. Please request a new one.")
	}
	if newPassword != confirm {
		return failure("Passwords do not match.")
	}
	if PasswordStrength(newPassword).Level < 1 {
		return failure("Please choose a stronger password.")
	}
	if msg, ok := g.postJSON(ctx, "/LoginResistarion/reset-password", map[string]string{
		"email":       email,
		"token":       token,
		"newPassword": newPassword,
	}, nil); !ok {
		return failure(msg)
	}
	return Result{Success: true, Message: "Password updated. Sign in with your new password."}
}

// Logout clears the session. Server-side token revocation is the backend's
// concern; nothing goes over the wire here.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.store.Clear(ctx)
}

// FetchProfile loads the caller's profile record.
func (g *Gateway) FetchProfile(ctx context.Context, userID string) (Profile, Result) {
	sess, ok, err := g.store.Get(ctx)
	if err != nil || !ok {
		return Profile{}, failure("You are signed out.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/LoginResistarion/getusersbyid/"+userID, nil)
	if err != nil {
		return Profile{}, failure(msgGeneric)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	resp, err := g.client.Do(req)
	if err != nil {
		return Profile{}, failure(msgUnreachable)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Profile{}, failure(serverMessage(resp.Body))
	}

	var records []Profile
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil || len(records) == 0 {
		return Profile{}, failure(msgGeneric)
	}
	return records[0], Result{Success: true}
}

// UploadProfilePicture sends a multipart upload and returns the stored
// picture URL.
func (g *Gateway) UploadProfilePicture(ctx context.Context, userID, filename string, r io.Reader) (string, Result) {
	sess, ok, err := g.store.Get(ctx)
	if err != nil || !ok {
		return "", failure("You are signed out.")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", failure(msgGeneric)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", failure(msgGeneric)
	}
	if err := mw.WriteField("userId", userID); err != nil {
		return "", failure(msgGeneric)
	}
	if err := mw.Close(); err != nil {
		return "", failure(msgGeneric)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/LoginResistarion/upload-profile-picture", &buf)
	if err != nil {
		return "", failure(msgGeneric)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", failure(msgUnreachable)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", failure(serverMessage(resp.Body))
	}

	var body struct {
		ProfileURL string `json:"profileUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", failure(msgGeneric)
	}
	return body.ProfileURL, Result{Success: true}
}

// finishLogin runs a credential exchange and persists the resulting
// session. Session mutation happens before the success result is returned.
func (g *Gateway) finishLogin(ctx context.Context, email, path string, payload map[string]string) Result {
	var body loginResponse
	if msg, ok := g.postJSON(ctx, path, payload, &body); !ok {
		return failure(msg)
	}
	if body.Token == "" {
		return failure(msgGeneric)
	}

	displayName := body.Username
	if displayName == "" {
		displayName = email
	}
	sessEmail := body.Email
	if sessEmail == "" {
		sessEmail = email
	}
	err := g.store.Set(ctx, session.Session{
		Token:       body.Token,
		Role:        body.Role,
		TenantID:    body.TenantID,
		UserID:      body.UserID,
		Email:       sessEmail,
		DisplayName: displayName,
	})
	if err != nil {
		return failure("Could not save your session: " + err.Error())
	}
	return Result{Success: true, Role: body.Role}
}

// postJSON posts a JSON payload and decodes a 2xx response into out (when
// out is non-nil). On any failure it returns a user-displayable message and
// false; transport errors never escape.
func (g *Gateway) postJSON(ctx context.Context, path string, payload any, out any) (string, bool) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return msgGeneric, false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return msgGeneric, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return msgUnreachable, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverMessage(resp.Body), false
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return msgGeneric, false
		}
	}
	return "", true
}

// serverMessage pulls the {message} field out of an error body, falling
// back to the generic message.
func serverMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return msgGeneric
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func validOTP(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Strength grades a candidate password the same way the reset screen
// presents it.
type Strength struct {
	Label string
	Level int
}

func PasswordStrength(pwd string) Strength {
	if pwd == "" {
		return Strength{Label: "Too short", Level: 0}
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	score := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if ok {
			score++
		}
	}
	switch {
	case len(pwd) < 6:
		return Strength{Label: "Too short", Level: 0}
	case score <= 2:
		return Strength{Label: "Weak", Level: 1}
	case score == 3:
		return Strength{Label: "Good", Level: 2}
	case score == 4 && len(pwd) >= 10:
		return Strength{Label: "Strong", Level: 3}
	default:
		return Strength{Label: "Medium", Level: 2}
	}
}
