package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Session is the authenticated identity held for the duration of a login.
type Session struct {
	Token       string
	Role        string
	TenantID    string
	UserID      string
	Email       string
	DisplayName string
}

// Fixed storage keys. Everything the backend hands out on login lives under
// one of these; Clear removes them all in one transaction.
const (
	keyToken       = "token"
	keyRole        = "role"
	keyTenantID    = "tenant_id"
	keyUserID      = "user_id"
	keyEmail       = "email"
	keyDisplayName = "display_name"
)

var allKeys = []string{keyToken, keyRole, keyTenantID, keyUserID, keyEmail, keyDisplayName}

// Store persists the current session across restarts. Set and Clear are the
// only mutators; everything else treats the session as read-only.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS session_values (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Get reads the persisted session. The second return is false when no
// session is stored (no token row).
func (s *Store) Get(ctx context.Context) (Session, bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM session_values`)
	if err != nil {
		return Session{}, false, err
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Session{}, false, err
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return Session{}, false, err
	}
	if values[keyToken] == "" {
		return Session{}, false, nil
	}
	return Session{
		Token:       values[keyToken],
		Role:        values[keyRole],
		TenantID:    values[keyTenantID],
		UserID:      values[keyUserID],
		Email:       values[keyEmail],
		DisplayName: values[keyDisplayName],
	}, true, nil
}

// Set replaces any prior session atomically.
func (s *Store) Set(ctx context.Context, sess Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	pairs := map[string]string{
		keyToken:       sess.Token,
		keyRole:        sess.Role,
		keyTenantID:    sess.TenantID,
		keyUserID:      sess.UserID,
		keyEmail:       sess.Email,
		keyDisplayName: sess.DisplayName,
	}
	for k, v := range pairs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session_values(key, value) VALUES(?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Clear removes all session fields atomically. A subsequent Get reports
// absence regardless of prior state.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, k := range allKeys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_values WHERE key = ?`, k); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}
