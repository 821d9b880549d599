package repos

import (
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"ngwatch/enums"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", "file::memory:?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	schema := []string{
		`CREATE TABLE search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			executed_at DATETIME NOT NULL,
			hit_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			message TEXT NOT NULL,
			logged_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func TestHistoryRepo_AppendAndRecent(t *testing.T) {
	repo := NewHistoryRepo(newTestDB(t))

	require.NoError(t, repo.Append("spam -is:retweet", 2))
	require.NoError(t, repo.Append("scam -is:retweet", 0))

	records, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "scam -is:retweet", records[0].Query, "most recent first")
	assert.Equal(t, 0, records[0].HitCount)
	assert.Equal(t, "spam -is:retweet", records[1].Query)
	assert.Equal(t, 2, records[1].HitCount)
	assert.False(t, records[0].ExecutedAt.IsZero())
}

func TestHistoryRepo_RecentRespectsLimit(t *testing.T) {
	repo := NewHistoryRepo(newTestDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append("q", i))
	}

	records, err := repo.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 4, records[0].HitCount)
}

func TestLogRepo_AppendAndRecent(t *testing.T) {
	repo := NewLogRepo(newTestDB(t))

	require.NoError(t, repo.Append("WARN", "429 received, entering cooldown"))
	require.NoError(t, repo.Append("INFO", "spam: no hits"))

	records, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "INFO", records[0].Level)
	assert.Equal(t, "WARN", records[1].Level)
}

func TestListRepo_AddAndGet(t *testing.T) {
	repo := NewListRepo(newTestDB(t))

	id, err := repo.Add("defaults", enums.ListKindWatch, "spam, scam")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = repo.Add("allowlist", enums.ListKindWhite, "trusted")
	require.NoError(t, err)

	watch, err := repo.GetByKind(enums.ListKindWatch)
	require.NoError(t, err)
	require.Len(t, watch, 1)
	assert.Equal(t, "defaults", watch[0].Name)
	assert.Equal(t, "spam, scam", watch[0].Content)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListRepo_LatestByKind(t *testing.T) {
	repo := NewListRepo(newTestDB(t))

	latest, err := repo.LatestByKind(enums.ListKindWatch)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = repo.Add("old", enums.ListKindWatch, "a")
	require.NoError(t, err)
	_, err = repo.Add("new", enums.ListKindWatch, "b")
	require.NoError(t, err)

	latest, err = repo.LatestByKind(enums.ListKindWatch)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "new", latest.Name)
}

// The foreground path and the background loop append concurrently; each
// append is a single atomic statement.
func TestLogRepo_ConcurrentAppends(t *testing.T) {
	repo := NewLogRepo(newTestDB(t))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				assert.NoError(t, repo.Append("INFO", "concurrent append"))
			}
		}()
	}
	wg.Wait()

	records, err := repo.Recent(200)
	require.NoError(t, err)
	assert.Len(t, records, 100)
}
