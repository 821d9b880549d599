package models

import "ngwatch/data"

type CreateListRequest struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"` // ng, white, watch, preset
	Content string `json:"content"`
}

type GetListsResponse struct {
	Lists []data.ListRecord `json:"lists"`
}

type GetHistoryResponse struct {
	History []data.HistoryRecord `json:"history"`
}

type GetLogsResponse struct {
	Logs []data.LogRecord `json:"logs"`
}
