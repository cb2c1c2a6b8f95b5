package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 聚合服务的 Prometheus 指标
type Metrics struct {
	FetchTotal    *prometheus.CounterVec   // labels: source, outcome={ok,error}
	FetchDuration *prometheus.HistogramVec // labels: source
}

// NewMetrics 创建并注册到默认 registry
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.FetchTotal, m.FetchDuration)
	return m
}

// NewMetricsForTesting 不注册，避免多个测试重复注册时 panic
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "riskradar",
			Name:      "fetch_total",
			Help:      "Upstream fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "riskradar",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream fetch duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
	}
}
