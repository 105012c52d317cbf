package unlock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kaamsetu_client",
			Subsystem: "unlock",
			Name:      "sweeps_total",
			Help:      "Cache sweep passes executed.",
		},
	)

	evictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kaamsetu_client",
			Subsystem: "unlock",
			Name:      "evictions_total",
			Help:      "Expired grants evicted by sweeps.",
		},
	)
)
