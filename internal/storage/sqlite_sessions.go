package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/endoclin/admin/internal"
	_ "modernc.org/sqlite"
)

const sqliteSessionSchema = `CREATE TABLE IF NOT EXISTS session_values (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
)`

type SQLiteSessionStore struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteSessionStore(ctx context.Context, dsn string, logger internal.Logger) (*SQLiteSessionStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Errorf("storage: failed to open sqlite: %v", err)
		return nil, err
	}
	// A single connection keeps writes serialized and lets ":memory:" databases work.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSessionSchema); err != nil {
		db.Close()
		logger.Errorf("storage: failed to create session table: %v", err)
		return nil, err
	}
	return &SQLiteSessionStore{db: db, logger: logger}, nil
}

func (s *SQLiteSessionStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_values WHERE namespace = ? AND key = ?`, namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Errorf("storage: sqlite get %s: %v", key, err)
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteSessionStore) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO session_values (namespace, key, value) VALUES (?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value`, namespace, key, value)
	if err != nil {
		s.logger.Errorf("storage: sqlite set %s: %v", key, err)
	}
	return err
}

func (s *SQLiteSessionStore) Remove(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]any, 0, len(keys)+1)
	args = append(args, namespace)
	for _, k := range keys {
		args = append(args, k)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_values WHERE namespace = ? AND key IN (`+placeholders+`)`, args...)
	if err != nil {
		s.logger.Errorf("storage: sqlite remove: %v", err)
	}
	return err
}

func (s *SQLiteSessionStore) Close() error {
	return s.db.Close()
}

var _ SessionStore = (*SQLiteSessionStore)(nil)
