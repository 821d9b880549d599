package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngwatch_monitor_cycles_total",
		Help: "Completed monitor cycles, foreground and background.",
	})

	discoveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngwatch_monitor_discovered_accounts_total",
		Help: "Accounts that passed the filter criteria, deduplicated per cycle.",
	})
)
