package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "racing"

// Recorder exposes the service's prometheus instruments. A nil *Recorder is
// valid and records nothing, so components can be built without metrics.
type Recorder struct {
	registry *prometheus.Registry

	fetchAttempts *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	raceOutcomes  *prometheus.CounterVec
	syncRuns      *prometheus.CounterVec
	syncDuration  prometheus.Histogram
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{
		registry: reg,
		fetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "Upstream page fetch attempts by page kind and outcome.",
		}, []string{"page", "outcome"}),
		fetchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Latency of single upstream fetch attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),
		raceOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "race_sync_total",
			Help:      "Per-race sync outcomes.",
		}, []string{"status"}),
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Completed sync runs by final status.",
		}, []string{"status"}),
		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Wall time of sync runs.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.fetchAttempts, r.fetchLatency,
		r.raceOutcomes, r.syncRuns, r.syncDuration,
		r.httpRequests, r.httpLatency,
	)
	return r
}

// RecordFetchAttempt counts one HTTP attempt against the upstream site.
func (r *Recorder) RecordFetchAttempt(page string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.fetchAttempts.WithLabelValues(page, outcome).Inc()
	r.fetchLatency.WithLabelValues(page).Observe(duration.Seconds())
}

func (r *Recorder) RecordRaceOutcome(status string) {
	if r == nil {
		return
	}
	r.raceOutcomes.WithLabelValues(status).Inc()
}

func (r *Recorder) RecordSyncRun(status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.syncRuns.WithLabelValues(status).Inc()
	r.syncDuration.Observe(duration.Seconds())
}

func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
