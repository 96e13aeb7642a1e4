package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts successful changes to the material list by operation
	// (add, update, delete, quantity).
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockwise_mutations_total",
		Help: "Successful material list mutations by operation.",
	}, []string{"op"})

	// Exports counts inventory downloads by format (csv, xlsx).
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockwise_exports_total",
		Help: "Inventory exports by format.",
	}, []string{"format"})

	// StoreFailures counts persistence operations that failed and were
	// recovered (load fell back to the default, save was dropped).
	StoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockwise_store_failures_total",
		Help: "Recovered persistence failures by operation.",
	}, []string{"op"})
)
