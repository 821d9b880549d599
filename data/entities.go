package data

import (
	"time"

	"ngwatch/enums"
)

// HistoryRecord is one executed query. Append-only, ordered by execution
// time.
type HistoryRecord struct {
	ID         int64     `db:"id" json:"id"`
	Query      string    `db:"query" json:"query"`
	ExecutedAt time.Time `db:"executed_at" json:"executedAt"`
	HitCount   int       `db:"hit_count" json:"hitCount"`
}

// ListRecord is a named term list (ng/white/watch/preset). Append-only.
type ListRecord struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Kind      enums.ListKind `db:"kind" json:"kind"`
	Content   string         `db:"content" json:"content"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// LogRecord is one line of the persistent diagnostic trail.
type LogRecord struct {
	ID       int64     `db:"id" json:"id"`
	Level    string    `db:"level" json:"level"`
	Message  string    `db:"message" json:"message"`
	LoggedAt time.Time `db:"logged_at" json:"loggedAt"`
}
