package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	unlocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kaamsetu_client",
			Name:      "profile_unlocks_total",
			Help:      "Profile view grants by outcome (free, fresh, restored).",
		},
		[]string{"outcome"},
	)

	rejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kaamsetu_client",
			Name:      "credit_rejections_total",
			Help:      "View attempts rejected for lack of credits, by decider.",
		},
		[]string{"source"},
	)
)
