package majority

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcome label values.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeBudget   = "budget_exceeded"
	outcomeCanceled = "canceled"
	outcomeError    = "error"
)

// Metrics provides observability for majority searches.
type Metrics struct {
	Searches *prometheus.CounterVec
	Steps    prometheus.Counter
	MemoHits prometheus.Counter
	States   prometheus.Histogram
	Duration prometheus.Histogram
}

// NewMetrics creates a Metrics instance registered with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mincost_majority_searches_total",
			Help: "Total number of majority searches by outcome",
		}, []string{"outcome"}),
		Steps: f.NewCounter(prometheus.CounterOpts{
			Name: "mincost_majority_steps_total",
			Help: "Total subproblem expansions across all searches",
		}),
		MemoHits: f.NewCounter(prometheus.CounterOpts{
			Name: "mincost_majority_memo_hits_total",
			Help: "Total subproblems answered from the memo table",
		}),
		States: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mincost_majority_memo_states",
			Help:    "Memo table size at the end of a search",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mincost_majority_search_duration_seconds",
			Help:    "Duration of majority searches",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

// observe records one search. Safe on a nil receiver.
func (m *Metrics) observe(outcome string, s Stats) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(outcome).Inc()
	m.Steps.Add(float64(s.Steps))
	m.MemoHits.Add(float64(s.MemoHits))
	m.States.Observe(float64(s.States))
	m.Duration.Observe(s.Elapsed.Seconds())
}

// outcomeOf maps a search error (and, on success, whether a subset was
// found) to an outcome label.
func outcomeOf(err error, found bool) string {
	switch {
	case err == nil && found:
		return outcomeFound
	case err == nil:
		return outcomeNotFound
	case errors.Is(err, ErrBudgetExceeded):
		return outcomeBudget
	case errors.Is(err, ErrCanceled):
		return outcomeCanceled
	default:
		return outcomeError
	}
}
