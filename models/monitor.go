package models

import (
	"ngwatch/filter"
	"ngwatch/monitor"
)

type StartMonitorRequest struct {
	// Terms is raw free-text. When empty the most recent saved watch list
	// is used instead.
	Terms      string          `json:"terms"`
	MaxResults int             `json:"maxResults"`
	Criteria   filter.Criteria `json:"criteria"`
}

type MonitorResponse struct {
	// Started is false when a loop was already running; starting twice is a
	// no-op, not an error.
	Started bool           `json:"started"`
	Status  monitor.Status `json:"status"`
}
