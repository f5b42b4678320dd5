package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DocumentLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insightforge_document_loads_total",
		Help: "Document loads from the data directory by result (ok, missing, invalid)",
	}, []string{"document", "result"})
	DocumentLoadDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insightforge_document_load_duration_ms",
		Help:    "Time to read and parse a document in milliseconds",
		Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000, 5000},
	}, []string{"document"})
	DocumentCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insightforge_document_cache_hits_total",
		Help: "Document lookups served from the in-memory cache",
	})
	AggregationRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insightforge_aggregation_runs_total",
		Help: "Startup aggregation runs by result",
	}, []string{"result"})
	AggregationDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "insightforge_aggregation_duration_ms",
		Help:    "Aggregation run duration in milliseconds",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
	RosterSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "insightforge_roster_size",
		Help:    "Office holders returned per neighborhood roster",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 8, 12, 20},
	})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insightforge_http_requests_total",
		Help: "HTTP requests by route pattern and status code",
	}, []string{"route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insightforge_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(DocumentLoadsTotal)
	prometheus.MustRegister(DocumentLoadDurationMs)
	prometheus.MustRegister(DocumentCacheHitsTotal)
	prometheus.MustRegister(AggregationRunsTotal)
	prometheus.MustRegister(AggregationDurationMs)
	prometheus.MustRegister(RosterSize)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
