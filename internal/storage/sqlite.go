// Package storage provides SQLite-based persistence for the console journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/console"
)

// ErrSessionNotFound is returned when a session id has no record.
var ErrSessionNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for the console journal.
type Store struct {
	db *sql.DB
}

// SessionInfo describes one recorded editor session.
type SessionInfo struct {
	ID        string
	User      string
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is open
	Entries   int
}

// EntryRecord is a journaled console line.
type EntryRecord struct {
	ID        int64
	SessionID string
	Seq       int
	Message   string
	Text      string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS editor_sessions (
			id TEXT PRIMARY KEY,
			user TEXT NOT NULL DEFAULT '',
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_editor_sessions_started ON editor_sessions(started_at DESC);

		CREATE TABLE IF NOT EXISTS console_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES editor_sessions(id),
			seq INTEGER NOT NULL,
			message TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			UNIQUE(session_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_console_entries_session ON console_entries(session_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginSession records the start of an editor session.
func (s *Store) BeginSession(id, user string, startedAt time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO editor_sessions (id, user, started_at) VALUES (?, ?, ?)",
		id, user, startedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot begin session %s: %w", id, err)
	}
	return nil
}

// EndSession marks a session as ended.
func (s *Store) EndSession(id string, endedAt time.Time) error {
	result, err := s.db.Exec(
		"UPDATE editor_sessions SET ended_at = ? WHERE id = ?",
		endedAt.UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot end session %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// AppendEntry journals one console entry for the session.
func (s *Store) AppendEntry(sessionID string, e console.Entry) error {
	_, err := s.db.Exec(
		"INSERT INTO console_entries (session_id, seq, message, text, created_at) VALUES (?, ?, ?, ?, ?)",
		sessionID, e.Seq, e.Message, e.Text, e.Time.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot append entry %d: %w", e.Seq, err)
	}
	return nil
}

// Entries returns up to limit journaled lines for the session in console order.
// A limit <= 0 returns all of them.
func (s *Store) Entries(sessionID string, limit int) ([]EntryRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, seq, message, text, created_at
		 FROM console_entries
		 WHERE session_id = ?
		 ORDER BY seq ASC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	var records []EntryRecord
	for rows.Next() {
		var r EntryRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Seq, &r.Message, &r.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionInfo, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.user, s.started_at, s.ended_at, COUNT(e.id)
		 FROM editor_sessions s
		 LEFT JOIN console_entries e ON e.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var startedAt, endedAt any
		if err := rows.Scan(&info.ID, &info.User, &startedAt, &endedAt, &info.Entries); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.StartedAt = parseTime(startedAt)
		info.EndedAt = parseTime(endedAt)
		sessions = append(sessions, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Session returns a single session record.
func (s *Store) Session(id string) (SessionInfo, error) {
	var info SessionInfo
	var startedAt, endedAt any
	err := s.db.QueryRow(
		`SELECT s.id, s.user, s.started_at, s.ended_at,
		        (SELECT COUNT(*) FROM console_entries e WHERE e.session_id = s.id)
		 FROM editor_sessions s
		 WHERE s.id = ?`,
		id,
	).Scan(&info.ID, &info.User, &startedAt, &endedAt, &info.Entries)
	if errors.Is(err, sql.ErrNoRows) {
		return info, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return info, fmt.Errorf("storage: cannot query session: %w", err)
	}
	info.StartedAt = parseTime(startedAt)
	info.EndedAt = parseTime(endedAt)
	return info, nil
}

// parseTime handles the datetime representations the driver may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
