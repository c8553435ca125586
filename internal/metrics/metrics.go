// Package metrics exposes prometheus counters for email dispatch
package metrics

import (
	"time"

	"github.com/interviewmail/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "interviewmail"

// Metrics records dispatch outcomes
type Metrics struct {
	EmailsSent    prometheus.Counter
	EmailFailures prometheus.Counter
	BulkRuns      prometheus.Counter
	BulkSkipped   prometheus.Counter
	SendDuration  prometheus.Histogram
}

// New creates the dispatch metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EmailsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Total emails sent",
		}),
		EmailFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "email_failures_total",
			Help:      "Total failed emails",
		}),
		BulkRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_send_runs_total",
			Help:      "Total bulk send actions",
		}),
		BulkSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_send_skipped_total",
			Help:      "Emails skipped by bulk send because they were already sent",
		}),
		SendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "email_send_duration_seconds",
			Help:      "Time spent handing a message to the SMTP server",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.EmailsSent, m.EmailFailures, m.BulkRuns, m.BulkSkipped, m.SendDuration)
	return m
}

// ObserveSend records the outcome of a single dispatch
func (m *Metrics) ObserveSend(status models.EmailStatus, d time.Duration) {
	m.SendDuration.Observe(d.Seconds())
	if status == models.EmailStatusSuccess {
		m.EmailsSent.Inc()
		return
	}
	m.EmailFailures.Inc()
}

// ObserveBulk records a bulk send run
func (m *Metrics) ObserveBulk(skipped int) {
	m.BulkRuns.Inc()
	m.BulkSkipped.Add(float64(skipped))
}
