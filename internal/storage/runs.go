package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoGame is returned when a run is saved without a game id.
var ErrNoGame = errors.New("storage: run has no game id")

// DefaultLimit is used by the Top queries when the limit is not positive.
const DefaultLimit = 10

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Run is a finished run about to be recorded.
type Run struct {
	GameID     string
	Score      int
	Difficulty string // preset name, empty for the config default
	Cause      string
	Ticks      int
}

// ScoreEntry is a recorded run.
type ScoreEntry struct {
	ID         int64
	GameID     string
	Score      int
	Difficulty string
	Cause      string
	Ticks      int
	CreatedAt  time.Time
}

// Query selects recorded runs of one game, best first. Ties go to the
// earlier run.
type Query struct {
	GameID     string
	Difficulty string // empty matches every preset
	Limit      int    // zero or less returns everything
}

// SaveRun records run and returns its id.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.GameID == "" {
		return 0, ErrNoGame
	}

	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, difficulty, cause, ticks) VALUES (?, ?, ?, ?, ?)",
		run.GameID, run.Score, run.Difficulty, run.Cause, run.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: read run id: %w", err)
	}
	return id, nil
}

// Scores runs q.
func (s *Store) Scores(q Query) ([]ScoreEntry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, game_id, score, difficulty, cause, ticks, created_at
		FROM scores WHERE game_id = ?`)
	args := []any{q.GameID}

	if q.Difficulty != "" {
		sb.WriteString(" AND difficulty = ?")
		args = append(args, q.Difficulty)
	}
	sb.WriteString(" ORDER BY score DESC, id ASC")
	if q.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}

	rows, err := s.db.Query(sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	return scanScores(rows)
}

// TopScores returns the best limit runs of a game.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.Scores(Query{GameID: gameID, Limit: orDefault(limit)})
}

// TopScoresByDifficulty returns the best limit runs played on one preset.
func (s *Store) TopScoresByDifficulty(gameID, difficulty string, limit int) ([]ScoreEntry, error) {
	return s.Scores(Query{GameID: gameID, Difficulty: difficulty, Limit: orDefault(limit)})
}

// AllScores returns every run of a game.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.Scores(Query{GameID: gameID})
}

func orDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Difficulty, &e.Cause, &e.Ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read scores: %w", err)
	}
	return entries, nil
}

// parseTime accepts what the driver hands back for a DATETIME column:
// a time.Time for declared columns, text for aggregates.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
