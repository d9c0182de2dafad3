package storage

import (
	"fmt"
	"time"
)

// Session is one completed play session.
type Session struct {
	ID        int64
	User      string
	MapID     string
	Ticks     uint64
	Distance  float64 // Pixels travelled
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall-clock length of the session.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// MapStats contains aggregated statistics for a map.
type MapStats struct {
	MapID         string
	Sessions      int
	Players       int
	TotalTicks    int64
	TotalDistance float64
	LastPlayed    time.Time
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.User == "" || sess.MapID == "" {
		return 0, fmt.Errorf("storage: cannot save session: %w", errEmptyKey)
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (user_name, map_id, ticks, distance, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.User, sess.MapID, int64(sess.Ticks), sess.Distance,
		formatTime(sess.StartedAt), formatTime(sess.EndedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions retrieves the most recently finished sessions.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user_name, map_id, ticks, distance, started_at, ended_at
		 FROM sessions
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var ticks int64
		var startedAt, endedAt any
		if err := rows.Scan(&sess.ID, &sess.User, &sess.MapID, &ticks, &sess.Distance, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Ticks = uint64(ticks)
		sess.StartedAt = parseTime(startedAt)
		sess.EndedAt = parseTime(endedAt)
		out = append(out, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// GetMapStats retrieves aggregated statistics for a specific map.
func (s *Store) GetMapStats(mapID string) (*MapStats, error) {
	stats := &MapStats{MapID: mapID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT user_name), COALESCE(SUM(ticks), 0),
		        COALESCE(SUM(distance), 0), MAX(ended_at)
		 FROM sessions WHERE map_id = ?`,
		mapID,
	).Scan(&stats.Sessions, &stats.Players, &stats.TotalTicks, &stats.TotalDistance, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get map stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}
