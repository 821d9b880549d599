package repos

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"ngwatch/data"
)

type HistoryRepo struct {
	db *sqlx.DB
}

func NewHistoryRepo(db *sqlx.DB) *HistoryRepo {
	return &HistoryRepo{db}
}

// Append records one executed query. Called exactly once per watch-term per
// cycle regardless of outcome.
func (r *HistoryRepo) Append(queryText string, hitCount int) error {
	query := `INSERT INTO search_history (query, executed_at, hit_count) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, queryText, time.Now().UTC(), hitCount)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	return nil
}

func (r *HistoryRepo) Recent(limit int) ([]data.HistoryRecord, error) {
	var records []data.HistoryRecord
	query := `
		SELECT id, query, executed_at, hit_count
		FROM search_history
		ORDER BY id DESC
		LIMIT ?`

	err := r.db.Select(&records, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent history: %w", err)
	}

	return records, nil
}
