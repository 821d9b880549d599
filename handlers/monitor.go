package handlers

import (
	"encoding/json"
	"net/http"

	"ngwatch/config"
	"ngwatch/data/repos"
	"ngwatch/enums"
	"ngwatch/models"
	"ngwatch/monitor"
	"ngwatch/query"
)

type MonitorHandler struct {
	monitor *monitor.Monitor
	lists   *repos.ListRepo
}

func NewMonitorHandler(m *monitor.Monitor, lists *repos.ListRepo) *MonitorHandler {
	return &MonitorHandler{monitor: m, lists: lists}
}

func (h *MonitorHandler) Start(w http.ResponseWriter, r *http.Request) Result {
	if config.Config.BearerToken == "" {
		return ServiceUnavailable("API token not configured.")
	}

	var req models.StartMonitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	terms := query.Normalize(req.Terms)
	if len(terms) == 0 {
		// Fall back to the most recently saved watch list.
		list, err := h.lists.LatestByKind(enums.ListKindWatch)
		if err != nil {
			return InternalError(err, "load watch list: ")
		}
		if list != nil {
			terms = query.Normalize(list.Content)
		}
	}
	if len(terms) == 0 {
		return BadRequest("No watch terms provided and no saved watch list.")
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = config.Config.SearchMaxResults
	}

	started := h.monitor.Start(terms, maxResults, req.Criteria)
	return Ok(models.MonitorResponse{Started: started, Status: h.monitor.Status()})
}

func (h *MonitorHandler) Stop(w http.ResponseWriter, r *http.Request) Result {
	h.monitor.Stop()
	return Ok(models.MonitorResponse{Status: h.monitor.Status()})
}

func (h *MonitorHandler) Status(w http.ResponseWriter, r *http.Request) Result {
	return Ok(h.monitor.Status())
}
