package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cliquebench"

// PrometheusHooks implements GenerateHooks and BenchHooks on a private
// Prometheus registry. Use WriteTextfile to export the collected metrics in
// the node_exporter textfile format after a run.
type PrometheusHooks struct {
	registry *prometheus.Registry

	graphsGenerated *prometheus.CounterVec
	graphEdges      *prometheus.HistogramVec
	datasetBytes    *prometheus.CounterVec
	solverRuns      *prometheus.CounterVec
	solverDuration  prometheus.Histogram
	records         *prometheus.CounterVec
	solverTimeUS    *prometheus.GaugeVec
	cliqueSize      *prometheus.GaugeVec
}

// NewPrometheusHooks creates hooks with all metrics registered.
func NewPrometheusHooks() *PrometheusHooks {
	h := &PrometheusHooks{
		registry: prometheus.NewRegistry(),
		graphsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_generated_total",
			Help:      "Generated graphs by generator kind and status.",
		}, []string{"kind", "status"}),
		graphEdges: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edge count of generated graphs.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}, []string{"kind"}),
		datasetBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_bytes_total",
			Help:      "Bytes written per dataset format.",
		}, []string{"format"}),
		solverRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_runs_total",
			Help:      "Solver invocations by status.",
		}, []string{"status"}),
		solverDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_duration_seconds",
			Help:      "Wall-clock duration of solver invocations.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Accepted benchmark records per algorithm.",
		}, []string{"algorithm"}),
		solverTimeUS: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "algorithm_time_microseconds",
			Help:      "Reported solver time per algorithm and graph size.",
		}, []string{"algorithm", "n"}),
		cliqueSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "algorithm_clique_size",
			Help:      "Reported clique size per algorithm and graph size.",
		}, []string{"algorithm", "n"}),
	}

	h.registry.MustRegister(
		h.graphsGenerated,
		h.graphEdges,
		h.datasetBytes,
		h.solverRuns,
		h.solverDuration,
		h.records,
		h.solverTimeUS,
		h.cliqueSize,
	)
	return h
}

// Registry returns the underlying Prometheus registry.
func (h *PrometheusHooks) Registry() *prometheus.Registry { return h.registry }

// WriteTextfile writes all collected metrics to path in text exposition format.
func (h *PrometheusHooks) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}

func (h *PrometheusHooks) OnGenerate(_ context.Context, kind string, _, edges int, _ time.Duration, err error) {
	h.graphsGenerated.WithLabelValues(kind, status(err)).Inc()
	if err == nil {
		h.graphEdges.WithLabelValues(kind).Observe(float64(edges))
	}
}

func (h *PrometheusHooks) OnDatasetWritten(_ context.Context, format string, size int64) {
	h.datasetBytes.WithLabelValues(format).Add(float64(size))
}

func (h *PrometheusHooks) OnSolverStart(context.Context, int, string) {}

func (h *PrometheusHooks) OnSolverComplete(_ context.Context, _ int, _ string, _ int, duration time.Duration, err error) {
	h.solverRuns.WithLabelValues(status(err)).Inc()
	h.solverDuration.Observe(duration.Seconds())
}

func (h *PrometheusHooks) OnRecord(_ context.Context, algorithm string, n, size int, elapsedUS int64) {
	label := strconv.Itoa(n)
	h.records.WithLabelValues(algorithm).Inc()
	h.solverTimeUS.WithLabelValues(algorithm, label).Set(float64(elapsedUS))
	h.cliqueSize.WithLabelValues(algorithm, label).Set(float64(size))
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

var (
	_ GenerateHooks = (*PrometheusHooks)(nil)
	_ BenchHooks    = (*PrometheusHooks)(nil)
)
