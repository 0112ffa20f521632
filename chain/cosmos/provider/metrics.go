package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperlane",
		Subsystem: "cosmos_provider",
		Name:      "queries_total",
		Help:      "Number of smart contract queries, by chain and result.",
	}, []string{"chain_id", "result"})

	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperlane",
		Subsystem: "cosmos_provider",
		Name:      "submissions_total",
		Help:      "Number of execute transaction submissions, by chain and result.",
	}, []string{"chain_id", "result"})
)
