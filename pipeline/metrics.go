package pipeline

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the counters/histograms Build reports to, built once per
// Registerer the caller supplies (or the global default registry if none
// is given) and reused via metricsFor.
type metrics struct {
	documentsProcessed prometheus.Counter
	stageLatency       *prometheus.HistogramVec
	complianceScore    prometheus.Gauge
	violations         prometheus.Counter
	warnings           prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &metrics{
		documentsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "tagteam_documents_processed_total",
			Help: "Total number of documents run through pipeline.Build.",
		}),
		stageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "tagteam_stage_latency_seconds",
			Help: "Latency of one Build stage (tokenize, extract, markers, tier2, act, role, validate).",
		}, []string{"stage"}),
		complianceScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tagteam_validator_compliance_score",
			Help: "SHMLValidator overall compliance score of the most recently built document.",
		}),
		violations: factory.NewCounter(prometheus.CounterOpts{
			Name: "tagteam_validator_violations_total",
			Help: "Total VIOLATION findings across all validated documents.",
		}),
		warnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "tagteam_validator_warnings_total",
			Help: "Total WARNING findings across all validated documents.",
		}),
	}
}

// recordStage observes one stage's duration in seconds.
func (m *metrics) recordStage(stage string, seconds float64) {
	m.stageLatency.WithLabelValues(stage).Observe(seconds)
}

// metricsByReg memoizes one metrics set per distinct Registerer (nil
// included, meaning the global default registry), so repeated Build
// calls against the same registerer reuse one registration instead of
// promauto panicking on a duplicate metric name.
var (
	metricsMu    sync.Mutex
	metricsByReg = map[prometheus.Registerer]*metrics{}
)

func metricsFor(reg prometheus.Registerer) *metrics {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if m, ok := metricsByReg[reg]; ok {
		return m
	}
	m := newMetrics(reg)
	metricsByReg[reg] = m
	return m
}
