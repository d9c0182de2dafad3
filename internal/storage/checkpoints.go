package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Checkpoint is a saved player position on one map.
type Checkpoint struct {
	User      string
	MapID     string
	X, Y      float64
	Facing    string
	UpdatedAt time.Time
}

// SaveCheckpoint stores the player's position, replacing any earlier
// checkpoint for the same user and map.
func (s *Store) SaveCheckpoint(cp Checkpoint) error {
	if cp.User == "" || cp.MapID == "" {
		return fmt.Errorf("storage: cannot save checkpoint: %w", errEmptyKey)
	}
	if cp.Facing == "" {
		cp.Facing = "right"
	}

	_, err := s.db.Exec(
		`INSERT INTO checkpoints (user_name, map_id, x, y, facing, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_name, map_id) DO UPDATE SET
		   x = excluded.x,
		   y = excluded.y,
		   facing = excluded.facing,
		   updated_at = CURRENT_TIMESTAMP`,
		cp.User, cp.MapID, cp.X, cp.Y, cp.Facing,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint returns the checkpoint for a user and map.
// Returns nil, nil if none exists.
func (s *Store) LoadCheckpoint(user, mapID string) (*Checkpoint, error) {
	var cp Checkpoint
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT user_name, map_id, x, y, facing, updated_at
		 FROM checkpoints
		 WHERE user_name = ? AND map_id = ?`,
		user, mapID,
	).Scan(&cp.User, &cp.MapID, &cp.X, &cp.Y, &cp.Facing, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoint: %w", err)
	}

	cp.UpdatedAt = parseTime(updatedAt)
	return &cp, nil
}

// ListCheckpoints returns a user's checkpoints ordered by map ID.
// An empty user lists every checkpoint.
func (s *Store) ListCheckpoints(user string) ([]Checkpoint, error) {
	query := `SELECT user_name, map_id, x, y, facing, updated_at FROM checkpoints`
	var args []any
	if user != "" {
		query += ` WHERE user_name = ?`
		args = append(args, user)
	}
	query += ` ORDER BY user_name, map_id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoints: %w", err)
	}
	defer rows.Close()

	var out []Checkpoint
	for rows.Next() {
		var cp Checkpoint
		var updatedAt any
		if err := rows.Scan(&cp.User, &cp.MapID, &cp.X, &cp.Y, &cp.Facing, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cp.UpdatedAt = parseTime(updatedAt)
		out = append(out, cp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearCheckpoints deletes all checkpoints for a user and reports how many
// were removed.
func (s *Store) ClearCheckpoints(user string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM checkpoints WHERE user_name = ?", user)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear checkpoints: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}
