package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Status tags a Snapshot.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is the result of one fetch. Token records the session token the
// fetch was launched with so callers can discard responses that arrive
// after a logout or re-login.
type Snapshot struct {
	Status Status
	Roots  []*Node
	Err    string
	Token  string
}

// Loader fetches the permission-filtered flat menu list and builds the
// navigation forest.
type Loader struct {
	baseURL string
	client  *http.Client
}

func NewLoader(baseURL string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Fetch loads the menu forest for the given token. An absent token is the
// unauthenticated default, not an error: it yields an empty ready forest
// without touching the network.
func (l *Loader) Fetch(ctx context.Context, token string) Snapshot {
	if token == "" {
		return Snapshot{Status: StatusReady}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/Menu/get-menus", nil)
	if err != nil {
		return Snapshot{Status: StatusError, Err: err.Error(), Token: token}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return Snapshot{Status: StatusError, Err: "menu fetch failed: " + err.Error(), Token: token}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Snapshot{Status: StatusError, Err: fmt.Sprintf("menu fetch failed: HTTP %d", resp.StatusCode), Token: token}
	}

	var flat []Entry
	if err := json.NewDecoder(resp.Body).Decode(&flat); err != nil {
		return Snapshot{Status: StatusError, Err: "menu fetch failed: " + err.Error(), Token: token}
	}
	return Snapshot{Status: StatusReady, Roots: BuildTree(flat), Token: token}
}
