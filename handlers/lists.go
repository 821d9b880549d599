package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"ngwatch/data"
	"ngwatch/data/repos"
	"ngwatch/enums"
	"ngwatch/models"
)

type ListHandler struct {
	repo *repos.ListRepo
}

func NewListHandler(repo *repos.ListRepo) *ListHandler {
	return &ListHandler{repo}
}

func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Name is required.")
	}

	kind := enums.ParseListKind(req.Kind)
	if kind == enums.ListKindInvalid {
		return BadRequest("Kind must be one of: ng, white, watch, preset.")
	}

	id, err := h.repo.Add(name, kind, req.Content)
	if err != nil {
		return InternalError(err, "create list: ")
	}

	return Created(id)
}

func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) Result {
	var records []data.ListRecord
	var err error

	if kindParam := r.URL.Query().Get("kind"); kindParam != "" {
		kind := enums.ParseListKind(kindParam)
		if kind == enums.ListKindInvalid {
			return BadRequest("Kind must be one of: ng, white, watch, preset.")
		}
		records, err = h.repo.GetByKind(kind)
	} else {
		records, err = h.repo.GetAll()
	}
	if err != nil {
		return InternalError(err, "get lists: ")
	}
	if records == nil {
		records = []data.ListRecord{}
	}

	return Ok(models.GetListsResponse{Lists: records})
}
