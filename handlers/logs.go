package handlers

import (
	"net/http"

	"ngwatch/data"
	"ngwatch/data/repos"
	"ngwatch/models"
)

type LogHandler struct {
	repo *repos.LogRepo
}

func NewLogHandler(repo *repos.LogRepo) *LogHandler {
	return &LogHandler{repo}
}

func (h *LogHandler) GetLogs(w http.ResponseWriter, r *http.Request) Result {
	limit := parseLimit(r, 100)

	records, err := h.repo.Recent(limit)
	if err != nil {
		return InternalError(err, "get logs: ")
	}
	if records == nil {
		records = []data.LogRecord{}
	}

	return Ok(models.GetLogsResponse{Logs: records})
}
