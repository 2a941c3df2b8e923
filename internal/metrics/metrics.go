package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion counters are partitioned by source: explorer or chain.

var (
	TransfersInserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowledger",
		Subsystem: "ingestion",
		Name:      "transfers_inserted_total",
		Help:      "Total transfers newly cached",
	}, []string{"source"})

	TransfersSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowledger",
		Subsystem: "ingestion",
		Name:      "transfers_skipped_total",
		Help:      "Total fetched transfers already present in the cache",
	}, []string{"source"})

	IngestionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowledger",
		Subsystem: "ingestion",
		Name:      "errors_total",
		Help:      "Total failed ingestion runs",
	}, []string{"source"})

	ExplorerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowledger",
		Subsystem: "explorer",
		Name:      "calls_total",
		Help:      "Total explorer API calls by outcome",
	}, []string{"outcome"})

	RateGateWaits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowledger",
		Subsystem: "ratelimit",
		Name:      "waits_total",
		Help:      "Total calls delayed by the rate gate",
	}, []string{"gate"})

	ImportDuplicates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "flowledger",
		Subsystem: "snapshot",
		Name:      "import_duplicates_total",
		Help:      "Total snapshot rows skipped on import because their unique key already existed",
	})
)
