package session

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func TestGetOnEmptyStoreReportsAbsent(t *testing.T) {
	store := newTestStore(t)
	_, ok, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected no session in a fresh store")
	}
}

func TestSetThenGetRoundTrips(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := Session{
		Token:       "t-123",
		Role:        "2",
		TenantID:    "tenant-9",
		UserID:      "42",
		Email:       "admin@corp.example",
		DisplayName: "Admin",
	}
	if err := store.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a session after Set")
	}
	if got != want {
		t.Fatalf("session mismatch: got %+v want %+v", got, want)
	}
}

func TestSetOverwritesPriorSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, Session{Token: "old", Role: "4", UserID: "1"}); err != nil {
		t.Fatalf("set old: %v", err)
	}
	if err := store.Set(ctx, Session{Token: "new", Role: "3", UserID: "2"}); err != nil {
		t.Fatalf("set new: %v", err)
	}
	got, ok, err := store.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Token != "new" || got.Role != "3" || got.UserID != "2" {
		t.Fatalf("expected overwritten session, got %+v", got)
	}
}

func TestClearAlwaysLeavesStoreAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Clearing an empty store is fine.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}

	if err := store.Set(ctx, Session{Token: "t", Role: "1", UserID: "7"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	_, ok, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected absent session after Clear")
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.db")
	ctx := context.Background()

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := store.Set(ctx, Session{Token: "persist-me", Role: "5", UserID: "11"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	if err := reopened.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	got, ok, err := reopened.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if got.Token != "persist-me" || got.Role != "5" {
		t.Fatalf("unexpected restored session: %+v", got)
	}
}
