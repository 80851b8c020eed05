package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the harness and transport.
type Metrics struct {
	ChecksPassed        prometheus.Counter
	ChecksFailed        prometheus.Counter
	ChecksErrored       prometheus.Counter
	IssuesDetected      prometheus.Counter
	CorrectionsProposed prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		ChecksPassed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_checks_passed_total",
			Help: "Total number of checks that passed",
		}),
		ChecksFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_checks_failed_total",
			Help: "Total number of checks whose logic ran and found a problem",
		}),
		ChecksErrored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_checks_errored_total",
			Help: "Total number of checks that could not complete",
		}),
		IssuesDetected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_validation_issues_total",
			Help: "Total number of validation issues detected in records",
		}),
		CorrectionsProposed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_corrections_proposed_total",
			Help: "Total number of auto-correction proposals produced",
		}),
	}
}

// IncCheck bumps the counter matching a check status string.
func (m *Metrics) IncCheck(status string) {
	if m == nil {
		return
	}
	switch status {
	case "PASS":
		m.ChecksPassed.Inc()
	case "FAIL":
		m.ChecksFailed.Inc()
	default:
		m.ChecksErrored.Inc()
	}
}

// AddIssues increments the detected-issue counter by n.
func (m *Metrics) AddIssues(n int) {
	if m == nil {
		return
	}
	m.IssuesDetected.Add(float64(n))
}

// AddCorrections increments the proposal counter by n.
func (m *Metrics) AddCorrections(n int) {
	if m == nil {
		return
	}
	m.CorrectionsProposed.Add(float64(n))
}
