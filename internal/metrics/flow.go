package metrics

import "github.com/prometheus/client_golang/prometheus"

// Lookup outcomes.
const (
	LookupList           = "list"
	LookupFailure        = "failure"
	LookupTransportError = "transport_error"
)

// Export outcomes.
const (
	ExportOK        = "ok"
	ExportBadRow    = "bad_row"
	ExportFetchErr  = "fetch_error"
	ExportSaveError = "save_error"
)

// Flow Prometheus metrics.
var (
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "surveyfront",
			Name:      "lookups_total",
			Help:      "Total lookup flows by outcome",
		},
		[]string{"outcome"},
	)

	LookupRows = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "surveyfront",
			Name:      "lookup_rows",
			Help:      "Rows rendered per list lookup",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	ExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "surveyfront",
			Name:      "exports_total",
			Help:      "Total export flows by outcome",
		},
		[]string{"outcome"},
	)

	ExportBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "surveyfront",
			Name:      "export_bytes_total",
			Help:      "Total bytes of exported documents handed to download sinks",
		},
	)

	LookupsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "surveyfront",
			Name:      "lookups_in_flight",
			Help:      "Lookups currently waiting on the backend",
		},
	)
)

var flowMetricsRegistered bool

// RegisterFlowMetrics registers the flow metrics on the default registry. Must be called once from main.
func RegisterFlowMetrics() {
	if flowMetricsRegistered {
		return
	}
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(LookupRows)
	prometheus.MustRegister(ExportsTotal)
	prometheus.MustRegister(ExportBytesTotal)
	prometheus.MustRegister(LookupsInFlight)
	flowMetricsRegistered = true
}
