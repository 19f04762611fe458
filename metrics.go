package memhashmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"sync"
)

var (
	tablePrometheusMetrics sync.Once

	tableInserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "insert_total",
			Help:      "Number of Insert() calls",
		},
		[]string{"name", "outcome"},
	)
	tableGets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "get_total",
			Help:      "Number of Get() calls",
		},
		[]string{"name", "outcome"},
	)
	tableDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "delete_total",
			Help:      "Number of Delete() and Pop() calls",
		},
		[]string{"name", "outcome"},
	)
	tableRehashes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "rehash_total",
			Help:      "Number of times the table tried to double its number of buckets",
		},
		[]string{"name", "outcome"},
	)
	tableRehashRelocations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "rehash_relocated_entries",
			Help:      "Number of entries moved to a new bucket array by a successful rehash",
			Buckets:   prometheus.ExponentialBuckets(64.0, 4.0, 10),
		},
		[]string{"name"},
	)

	tableItems = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "items",
			Help:      "Number of entries stored",
		},
		[]string{"name"},
	)
	tableCapacity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "memhashmap",
			Subsystem: "table",
			Name:      "capacity",
			Help:      "Number of buckets allocated",
		},
		[]string{"name"},
	)
)

// tableMetrics - Metric series of one table. Tables sharing a name share series, items and capacity
// are therefore maintained with Add/Sub so that they sum up over such tables.
type tableMetrics struct {
	insertInserted prometheus.Counter
	insertFailed   prometheus.Counter

	getFound    prometheus.Counter
	getNotFound prometheus.Counter

	deleteRemoved  prometheus.Counter
	deleteNotFound prometheus.Counter

	rehashGrown     prometheus.Counter
	rehashFailed    prometheus.Counter
	rehashRelocated prometheus.Observer

	items    prometheus.Gauge
	capacity prometheus.Gauge
}

// newTableMetrics - Registers the metrics on first use and returns the series for name
func newTableMetrics(name string) *tableMetrics {
	tablePrometheusMetrics.Do(func() {
		prometheus.MustRegister(tableInserts)
		prometheus.MustRegister(tableGets)
		prometheus.MustRegister(tableDeletes)
		prometheus.MustRegister(tableRehashes)
		prometheus.MustRegister(tableRehashRelocations)
		prometheus.MustRegister(tableItems)
		prometheus.MustRegister(tableCapacity)
	})

	return &tableMetrics{
		insertInserted: tableInserts.WithLabelValues(name, "Inserted"),
		insertFailed:   tableInserts.WithLabelValues(name, "Failed"),

		getFound:    tableGets.WithLabelValues(name, "Found"),
		getNotFound: tableGets.WithLabelValues(name, "NotFound"),

		deleteRemoved:  tableDeletes.WithLabelValues(name, "Removed"),
		deleteNotFound: tableDeletes.WithLabelValues(name, "NotFound"),

		rehashGrown:     tableRehashes.WithLabelValues(name, "Grown"),
		rehashFailed:    tableRehashes.WithLabelValues(name, "Failed"),
		rehashRelocated: tableRehashRelocations.WithLabelValues(name),

		items:    tableItems.WithLabelValues(name),
		capacity: tableCapacity.WithLabelValues(name),
	}
}
