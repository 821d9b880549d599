package twitter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ngwatch_api_requests_total",
		Help: "Outbound API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ngwatch_api_cache_hits_total",
		Help: "API calls answered from the response cache.",
	}, []string{"operation"})

	rateLimitTrips = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngwatch_rate_limit_trips_total",
		Help: "429 responses that opened a cooldown window.",
	})
)
