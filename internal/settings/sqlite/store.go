// Package sqlite provides a SQLite-backed settings persistence store.
//
// It stands in for the host's own settings service when the module runs
// outside a host that provides one, keeping the same per-user scoping:
// every store instance is bound to one user id at open time.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/masquerade/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/masquerade/internal/settings"
	"github.com/louisbranch/masquerade/internal/settings/sqlite/migrations"
	"github.com/louisbranch/masquerade/internal/telemetry"
	_ "modernc.org/sqlite"
)

// Store persists per-user settings and telemetry events in SQLite.
type Store struct {
	sqlDB  *sql.DB
	userID string
}

// Open opens a SQLite settings store for one user and applies embedded
// migrations.
func Open(path, userID string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, userID: userID}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the stored value for namespace/key, or settings.ErrNotFound.
func (s *Store) Get(ctx context.Context, namespace, key string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	namespace = strings.TrimSpace(namespace)
	key = strings.TrimSpace(key)
	if namespace == "" {
		return nil, fmt.Errorf("namespace is required")
	}
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}

	var value string
	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT value FROM settings WHERE user_id = ? AND namespace = ? AND key = ?",
		s.userID, namespace, key,
	)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, settings.ErrNotFound
		}
		return nil, fmt.Errorf("read setting %s.%s: %w", namespace, key, err)
	}
	return json.RawMessage(value), nil
}

// Set writes the value for namespace/key.
func (s *Store) Set(ctx context.Context, namespace, key string, value json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	namespace = strings.TrimSpace(namespace)
	key = strings.TrimSpace(key)
	if namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if key == "" {
		return fmt.Errorf("key is required")
	}
	if !json.Valid(value) {
		return fmt.Errorf("setting %s.%s value is not valid JSON", namespace, key)
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO settings (user_id, namespace, key, value, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, namespace, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		s.userID, namespace, key, string(value), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write setting %s.%s: %w", namespace, key, err)
	}
	return nil
}

// AppendTelemetryEvent records one operational event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt telemetry.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(evt.ID) == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(string(evt.Type)) == "" {
		return fmt.Errorf("event type is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events (id, user_id, type, actor_id, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		evt.ID, s.userID, string(evt.Type), evt.ActorID, evt.Detail, evt.Timestamp.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}
