package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"ngwatch/config"
	"ngwatch/models"
	"ngwatch/monitor"
	"ngwatch/query"
	"ngwatch/twitter"
)

// SearchHandler serves the foreground "run once" path. It shares the cycle
// code, rate limiter and response cache with the background loop, and keeps
// the most recent result set in memory for export.
type SearchHandler struct {
	monitor *monitor.Monitor

	mu          sync.Mutex
	lastResults []twitter.User
}

func NewSearchHandler(m *monitor.Monitor) *SearchHandler {
	return &SearchHandler{monitor: m}
}

func (h *SearchHandler) RunSearch(w http.ResponseWriter, r *http.Request) Result {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	terms := query.Normalize(req.Terms)
	if len(terms) == 0 {
		return BadRequest("No watch terms provided.")
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = config.Config.SearchMaxResults
	}

	discovered, err := h.monitor.RunCycle(r.Context(), terms, maxResults, req.Criteria)
	if err != nil {
		if errors.Is(err, twitter.ErrNotConfigured) {
			return ServiceUnavailable("API token not configured.")
		}
		return InternalError(err, "run search: ")
	}

	h.mu.Lock()
	h.lastResults = discovered
	h.mu.Unlock()

	if discovered == nil {
		discovered = []twitter.User{}
	}
	return Ok(models.SearchResponse{
		Terms:      terms,
		Discovered: discovered,
		Total:      len(discovered),
	})
}

// LastResults returns the discovered accounts from the most recent
// foreground search.
func (h *SearchHandler) LastResults() []twitter.User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]twitter.User(nil), h.lastResults...)
}
