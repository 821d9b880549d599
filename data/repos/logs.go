package repos

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"ngwatch/data"
)

type LogRepo struct {
	db *sqlx.DB
}

func NewLogRepo(db *sqlx.DB) *LogRepo {
	return &LogRepo{db}
}

func (r *LogRepo) Append(level, message string) error {
	query := `INSERT INTO logs (level, message, logged_at) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, level, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}

	return nil
}

func (r *LogRepo) Recent(limit int) ([]data.LogRecord, error) {
	var records []data.LogRecord
	query := `
		SELECT id, level, message, logged_at
		FROM logs
		ORDER BY id DESC
		LIMIT ?`

	err := r.db.Select(&records, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent logs: %w", err)
	}

	return records, nil
}
