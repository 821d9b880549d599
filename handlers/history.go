package handlers

import (
	"net/http"
	"strconv"

	"ngwatch/data"
	"ngwatch/data/repos"
	"ngwatch/models"
)

type HistoryHandler struct {
	repo *repos.HistoryRepo
}

func NewHistoryHandler(repo *repos.HistoryRepo) *HistoryHandler {
	return &HistoryHandler{repo}
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) Result {
	limit := parseLimit(r, 20)

	records, err := h.repo.Recent(limit)
	if err != nil {
		return InternalError(err, "get history: ")
	}
	if records == nil {
		records = []data.HistoryRecord{}
	}

	return Ok(models.GetHistoryResponse{History: records})
}

func parseLimit(r *http.Request, defaultLimit int) int {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return defaultLimit
	}
	if n > 1000 {
		return 1000
	}
	return n
}
