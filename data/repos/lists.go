package repos

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"ngwatch/data"
	"ngwatch/enums"
)

type ListRepo struct {
	db *sqlx.DB
}

func NewListRepo(db *sqlx.DB) *ListRepo {
	return &ListRepo{db}
}

func (r *ListRepo) Add(name string, kind enums.ListKind, content string) (int64, error) {
	query := `INSERT INTO lists (name, kind, content, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.Exec(query, name, kind, content, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("add list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get inserted list id: %w", err)
	}

	return id, nil
}

func (r *ListRepo) GetByKind(kind enums.ListKind) ([]data.ListRecord, error) {
	var records []data.ListRecord
	query := `
		SELECT id, name, kind, content, created_at
		FROM lists
		WHERE kind = ?
		ORDER BY id DESC`

	err := r.db.Select(&records, query, kind)
	if err != nil {
		return nil, fmt.Errorf("get lists by kind: %w", err)
	}

	return records, nil
}

func (r *ListRepo) GetAll() ([]data.ListRecord, error) {
	var records []data.ListRecord
	query := `
		SELECT id, name, kind, content, created_at
		FROM lists
		ORDER BY id DESC`

	err := r.db.Select(&records, query)
	if err != nil {
		return nil, fmt.Errorf("get lists: %w", err)
	}

	return records, nil
}

// LatestByKind returns the most recently saved list of a kind, or nil when
// none exists.
func (r *ListRepo) LatestByKind(kind enums.ListKind) (*data.ListRecord, error) {
	records, err := r.GetByKind(kind)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
