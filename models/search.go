package models

import (
	"ngwatch/filter"
	"ngwatch/twitter"
)

type SearchRequest struct {
	// Terms is raw free-text; commas, whitespace and full-width spaces all
	// separate terms.
	Terms      string          `json:"terms"`
	MaxResults int             `json:"maxResults"`
	Criteria   filter.Criteria `json:"criteria"`
}

type SearchResponse struct {
	Terms      []string       `json:"terms"`
	Discovered []twitter.User `json:"discovered"`
	Total      int            `json:"total"`
}
