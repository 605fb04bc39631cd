// Package metrics exposes Prometheus collectors for assistant traffic.
//
// Collectors register with the default registry on first use; `paibi
// serve` publishes them on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paibi_queries_total",
		Help: "Natural-language queries answered, by topic and language",
	}, []string{"topic", "lang"})

	queryLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paibi_query_latency_ms",
		Help:    "End-to-end query latency in milliseconds, simulated delay included",
		Buckets: []float64{1, 10, 50, 100, 300, 600, 1000, 1200, 1500, 2000, 3000},
	}, []string{"topic"})

	queryRows = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paibi_query_rows",
		Help:    "Rows returned per query",
		Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
	}, []string{"topic"})

	tableLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paibi_table_lookups_total",
		Help: "Raw table lookups, by table name and whether the name was known",
	}, []string{"table", "known"})

	cancelled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paibi_cancelled_total",
		Help: "Calls abandoned by the caller during the simulated delay",
	}, []string{"op"})
)

func ensureRegistered() {
	once.Do(func() {
		prometheus.MustRegister(Collectors()...)
	})
}

// ObserveQuery records one answered query.
func ObserveQuery(topic, lang string, start time.Time, rows int) {
	ensureRegistered()
	queriesTotal.WithLabelValues(topic, lang).Inc()
	queryLatency.WithLabelValues(topic).Observe(float64(time.Since(start).Milliseconds()))
	queryRows.WithLabelValues(topic).Observe(float64(rows))
}

// IncTable records a table lookup. Unknown names are bucketed together
// to keep label cardinality bounded.
func IncTable(name string, known bool) {
	ensureRegistered()
	if !known {
		name = "unknown"
	}
	tableLookups.WithLabelValues(name, strconv.FormatBool(known)).Inc()
}

// IncCancelled records a call abandoned by its caller.
func IncCancelled(op string) {
	ensureRegistered()
	cancelled.WithLabelValues(op).Inc()
}

// Collectors exposes all collectors for registration with a custom registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{queriesTotal, queryLatency, queryRows, tableLookups, cancelled}
}

// Handler serves the default registry, with these collectors registered.
func Handler() http.Handler {
	ensureRegistered()
	return promhttp.Handler()
}
