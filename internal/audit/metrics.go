package audit

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the recorder queue state. A nil *Metrics is a no-op.
type Metrics struct {
	queued  prometheus.Gauge
	sent    prometheus.Counter
	dropped prometheus.Counter
	failed  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "audit_queue_length",
			Help: "Eventos de auditoría pendientes de envío",
		}),
		sent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_events_sent_total",
			Help: "Eventos de auditoría entregados al destino",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_events_dropped_total",
			Help: "Eventos descartados por cola llena",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_flush_failures_total",
			Help: "Envíos de lotes fallidos",
		}),
	}

	for _, c := range []prometheus.Collector{m.queued, m.sent, m.dropped, m.failed} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register audit metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) setQueued(n int) {
	if m != nil {
		m.queued.Set(float64(n))
	}
}

func (m *Metrics) addSent(n int) {
	if m != nil {
		m.sent.Add(float64(n))
	}
}

func (m *Metrics) addDropped(n int) {
	if m != nil && n > 0 {
		m.dropped.Add(float64(n))
	}
}

func (m *Metrics) incFailed() {
	if m != nil {
		m.failed.Inc()
	}
}
