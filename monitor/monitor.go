package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ngwatch/filter"
	"ngwatch/query"
	"ngwatch/twitter"
)

// HistoryStore receives one record per watch-term per cycle. Satisfied by
// repos.HistoryRepo.
type HistoryStore interface {
	Append(queryText string, hitCount int) error
}

// LogStore receives the persistent diagnostic trail. Satisfied by
// repos.LogRepo.
type LogStore interface {
	Append(level, message string) error
}

// Status is a point-in-time snapshot of the scheduler.
type Status struct {
	Running        bool      `json:"running"`
	CycleCount     int       `json:"cycleCount"`
	LastRunID      string    `json:"lastRunId"`
	LastRunAt      time.Time `json:"lastRunAt"`
	LastDiscovered int       `json:"lastDiscovered"`
}

// Monitor runs the poll cycle repeatedly at a configured interval. At most
// one loop is active at a time; Start while running is a no-op. Stop is
// cooperative and takes effect within about a second.
type Monitor struct {
	logger   *slog.Logger
	client   *twitter.Client
	history  HistoryStore
	logs     LogStore
	interval time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	status  Status
}

func New(logger *slog.Logger, client *twitter.Client, history HistoryStore, logs LogStore, interval time.Duration) *Monitor {
	return &Monitor{
		logger:   logger,
		client:   client,
		history:  history,
		logs:     logs,
		interval: interval,
	}
}

// Start launches the background loop with a fixed term set and criteria
// snapshot. Returns false when a loop is already running.
func (m *Monitor) Start(terms []string, maxResults int, criteria filter.Criteria) bool {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return false
	}
	m.running = true
	m.status.Running = true
	stop := make(chan struct{})
	m.stop = stop
	m.mu.Unlock()

	m.appendLog("INFO", fmt.Sprintf("monitor started, %d terms, interval %s", len(terms), m.interval))
	go m.run(stop, terms, maxResults, criteria)
	return true
}

// Stop signals the loop to exit. The in-flight cycle finishes; the
// inter-cycle sleep is interrupted within a second.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.status.Running = false
	close(m.stop)
	m.mu.Unlock()

	m.appendLog("INFO", "monitor stopped")
}

func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Monitor) run(stop chan struct{}, terms []string, maxResults int, criteria filter.Criteria) {
	for {
		m.cycleSafely(terms, maxResults, criteria)

		select {
		case <-stop:
			m.logger.Info("monitor loop exiting")
			return
		default:
		}

		// Sleep for the configured interval, but poll the stop signal every
		// second so Stop takes effect promptly.
		deadline := time.Now().Add(m.interval)
		for time.Now().Before(deadline) {
			select {
			case <-stop:
				m.logger.Info("monitor loop exiting")
				return
			case <-time.After(time.Second):
			}
		}
	}
}

// cycleSafely runs one cycle and keeps the loop alive through anything a
// single cycle throws at it.
func (m *Monitor) cycleSafely(terms []string, maxResults int, criteria filter.Criteria) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("monitor cycle panicked", "panic", r)
			m.appendLog("ERROR", fmt.Sprintf("cycle panic: %v", r))
		}
	}()

	if _, err := m.RunCycle(context.Background(), terms, maxResults, criteria); err != nil {
		m.logger.Error("monitor cycle failed", "error", err)
	}
}

// RunCycle executes one full pass over the watch-terms: build a single-term
// query, check cooldown, search, collect distinct author ids, look up
// accounts, filter, and append exactly one history record per term. It
// returns the discovered accounts deduplicated by id across the whole
// cycle. Per-term failures are logged and skipped; only a missing
// credential aborts the cycle.
func (m *Monitor) RunCycle(ctx context.Context, terms []string, maxResults int, criteria filter.Criteria) ([]twitter.User, error) {
	runID := uuid.NewString()
	cyclesTotal.Inc()

	seen := make(map[string]bool)
	var discovered []twitter.User

	for _, term := range terms {
		q, err := query.Build([]string{term}, maxResults)
		if err != nil {
			continue
		}

		users, err := m.processTerm(ctx, term, q)
		if err != nil {
			m.recordHistory(q.Text, 0)
			if errors.Is(err, twitter.ErrNotConfigured) {
				return nil, errors.Wrap(err, "cycle aborted")
			}
			m.logger.Error("term processing failed", "term", term, "error", err)
			m.appendLog("ERROR", fmt.Sprintf("%s: %v", term, err))
			continue
		}

		for _, u := range users {
			if !filter.Matches(u, criteria) {
				continue
			}
			if seen[u.ID] {
				continue
			}
			seen[u.ID] = true
			discovered = append(discovered, u)
		}
		m.recordHistory(q.Text, len(users))
	}

	m.mu.Lock()
	m.status.CycleCount++
	m.status.LastRunID = runID
	m.status.LastRunAt = time.Now()
	m.status.LastDiscovered = len(discovered)
	m.mu.Unlock()

	discoveredTotal.Add(float64(len(discovered)))
	if len(discovered) > 0 {
		m.appendLog("INFO", fmt.Sprintf("cycle %s discovered %d accounts", runID, len(discovered)))
	}
	m.logger.Info("cycle finished", "run_id", runID, "terms", len(terms), "discovered", len(discovered))

	return discovered, nil
}

// processTerm searches one term and returns that term's looked-up accounts,
// unfiltered. The returned slice length drives the term's history hit
// count; the caller applies the filter criteria when accumulating.
func (m *Monitor) processTerm(ctx context.Context, term string, q query.SearchQuery) ([]twitter.User, error) {
	if m.client.CoolingDown() {
		m.logger.Warn("in cooldown, skipping search", "term", term)
		m.appendLog("WARN", "in cooldown, skipping search for "+term)
		return nil, nil
	}

	tweets, err := m.client.Search(ctx, q.Text, q.MaxResults)
	if err != nil {
		if errors.Is(err, twitter.ErrRateLimited) {
			// Already logged and cooled down by the client; the cycle moves
			// on and retries after the window.
			return nil, nil
		}
		return nil, errors.Wrapf(err, "search %q", term)
	}

	if len(tweets) == 0 {
		m.appendLog("INFO", term+": no hits")
		return nil, nil
	}

	ids := distinctAuthorIDs(tweets)
	users, err := m.client.LookupUsers(ctx, ids)
	if err != nil {
		if errors.Is(err, twitter.ErrRateLimited) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "lookup users for %q", term)
	}

	return users, nil
}

func distinctAuthorIDs(tweets []twitter.Tweet) []string {
	seen := make(map[string]bool, len(tweets))
	ids := make([]string, 0, len(tweets))
	for _, t := range tweets {
		if t.AuthorID == "" || seen[t.AuthorID] {
			continue
		}
		seen[t.AuthorID] = true
		ids = append(ids, t.AuthorID)
	}
	return ids
}

func (m *Monitor) recordHistory(queryText string, hitCount int) {
	if err := m.history.Append(queryText, hitCount); err != nil {
		m.logger.Error("failed to append history record", "error", err)
	}
}

func (m *Monitor) appendLog(level, message string) {
	if err := m.logs.Append(level, message); err != nil {
		m.logger.Error("failed to append log record", "error", err)
	}
}
