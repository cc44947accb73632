package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// GameStats aggregates every recorded run of a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalTicks int64
	LastPlayed time.Time // zero when nothing was recorded
}

func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.TotalTicks, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// HighScore returns the best score of a game, 0 when there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// Rank returns the 1-based place score would take on the game's board.
// Equal scores already on the board stay ahead.
func (s *Store) Rank(gameID string, score int) (int, error) {
	var better int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM scores WHERE game_id = ? AND score > ?",
		gameID, score,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: rank: %w", err)
	}
	return better + 1, nil
}

// CauseCounts returns how many runs of a game ended for each cause.
// Runs recorded without a cause are left out.
func (s *Store) CauseCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT cause, COUNT(*) FROM scores WHERE game_id = ? AND cause != '' GROUP BY cause",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: count causes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			cause string
			n     int
		)
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: scan cause: %w", err)
		}
		counts[cause] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read causes: %w", err)
	}
	return counts, nil
}

// ClearScores deletes every run of a game and reports how many were removed.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: clear scores: %w", err)
	}
	return res.RowsAffected()
}
