package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/smartlearn/smartlearn/internal/session"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// ErrSessionNotFound is returned when no snapshot exists for an id.
var ErrSessionNotFound = errors.New("session snapshot not found")

// SessionRepo reads and writes session snapshots. Sessions are stored
// whole as JSON; there is no per-field querying requirement.
type SessionRepo struct {
	db *sql.DB
}

// Save upserts the session's snapshot.
func (r *SessionRepo) Save(ctx context.Context, s *session.Session) error {
	data, err := session.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.ID, err)
	}

	query, args, err := sqlBuilder.
		Insert("session_snapshots").
		Columns("id", "data", "updated_at").
		Values(s.ID, string(data), time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

// Load restores a session from its snapshot.
func (r *SessionRepo) Load(ctx context.Context, id string) (*session.Session, error) {
	query, args, err := sqlBuilder.
		Select("data").
		From("session_snapshots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	return session.Unmarshal([]byte(data))
}

// List returns the ids of all stored sessions, most recently saved
// first.
func (r *SessionRepo) List(ctx context.Context) ([]string, error) {
	query, args, err := sqlBuilder.
		Select("id").
		From("session_snapshots").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a session snapshot. Deleting a missing id is not an
// error.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	query, args, err := sqlBuilder.
		Delete("session_snapshots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
