package ssipgo

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ssipgo/ssipgo/ssip"
)

// Metrics collects counters/gauges describing client traffic, exposed via
// promhttp.HandlerFor() in the cmd/ssipcli program the same way the teacher's
// proxysip command exposes its own /metrics endpoint.
type Metrics struct {
	requestsTotal  prometheus.Counter
	responsesTotal *prometheus.CounterVec
	notReadyTotal  prometheus.Counter
	queueDepth     prometheus.Gauge
}

// NewMetrics builds and registers a Metrics collector against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ssipgo",
			Name:      "requests_total",
			Help:      "Total requests sent to the speech-dispatcher server.",
		}),
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ssipgo",
			Name:      "responses_total",
			Help:      "Total reply frames received, labeled by status code.",
		}, []string{"code"}),
		notReadyTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ssipgo",
			Name:      "not_ready_total",
			Help:      "Total would-block signals observed by a non-blocking client.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ssipgo",
			Name:      "queue_depth",
			Help:      "Number of requests currently buffered in a QueuedClient.",
		}),
	}
	reg.MustRegister(m.requestsTotal, m.responsesTotal, m.notReadyTotal, m.queueDepth)
	return m
}

// ObserveRequest records one outgoing request.
func (m *Metrics) ObserveRequest() {
	m.requestsTotal.Inc()
}

// ObserveResponse records one incoming reply frame, labeled by its status
// code.
func (m *Metrics) ObserveResponse(code ssip.ReturnCode) {
	m.responsesTotal.WithLabelValues(strconv.Itoa(int(code))).Inc()
}

// ObserveNotReady records one would-block signal from a non-blocking send
// or receive.
func (m *Metrics) ObserveNotReady() {
	m.notReadyTotal.Inc()
}

// SetQueueDepth reports the current QueuedClient backlog size.
func (m *Metrics) SetQueueDepth(n int) {
	m.queueDepth.Set(float64(n))
}
