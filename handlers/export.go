package handlers

import (
	"log/slog"
	"net/http"

	"ngwatch/export"
)

// ExportHandler serializes the most recent foreground result set. The
// encodings are swappable leaves; all state lives in the search handler.
type ExportHandler struct {
	search *SearchHandler
}

func NewExportHandler(search *SearchHandler) *ExportHandler {
	return &ExportHandler{search: search}
}

func (h *ExportHandler) ExportAccounts(w http.ResponseWriter, r *http.Request) Result {
	users := h.search.LastResults()

	var (
		body        []byte
		contentType string
		filename    string
		err         error
	)

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		body, err = export.CSV(users)
		contentType = "text/csv; charset=utf-8"
		filename = "accounts.csv"
	case "tsv":
		body, err = export.TSV(users)
		contentType = "text/tab-separated-values; charset=utf-8"
		filename = "accounts.tsv"
	case "json":
		body, err = export.JSON(users)
		contentType = "application/json"
		filename = "accounts.json"
	case "handles":
		body = export.Handles(users)
		contentType = "text/plain; charset=utf-8"
		filename = "handles.txt"
	default:
		return BadRequest("Format must be one of: csv, tsv, json, handles.")
	}
	if err != nil {
		return InternalError(err, "export accounts: ")
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write export body", "error", err)
	}

	return Written(http.StatusOK)
}
