// Package metrics exports astar search activity as Prometheus metrics.
//
// A Recorder is plugged into an engine through its hooks:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewRecorder(reg)
//	e := astar.New[roadmap.City, int](astar.WithHooks(rec.Hooks()))
//
// Metrics exposed (all namespaced with "astar_"):
//
//   - steps_total (counter): Step calls that did work, added when a search ends.
//   - expansions_total (counter): nodes expanded.
//   - relaxations_total (counter): successor relaxations, labelled by kind
//     (discarded, inserted, updated, reopened).
//   - searches_total (counter): finished searches, labelled by outcome
//     (succeeded, failed).
//   - solution_cost (histogram): cost of every solution found.
//
// A Recorder is safe for concurrent use and may be shared by many engines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvlath/astar"
)

const namespace = "astar"

// Recorder holds the collectors fed by astar hooks.
type Recorder struct {
	steps       prometheus.Counter
	expansions  prometheus.Counter
	relaxations *prometheus.CounterVec
	searches    *prometheus.CounterVec
	cost        prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
// Panics if registration fails, like promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Search steps performed.",
		}),
		expansions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes expanded.",
		}),
		relaxations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Successor relaxations by outcome.",
		}, []string{"kind"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by outcome.",
		}, []string{"outcome"}),
		cost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_cost",
			Help:      "Cost of solutions found.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// Hooks returns engine hooks that feed this Recorder.
func (r *Recorder) Hooks() astar.Hooks {
	return astar.Hooks{
		OnExpand: func(int, astar.Scores) { r.expansions.Inc() },
		OnRelax: func(kind astar.RelaxKind, _ astar.Scores) {
			r.relaxations.WithLabelValues(kind.String()).Inc()
		},
		OnFinish: r.finish,
	}
}

func (r *Recorder) finish(state astar.SearchState, steps int, cost float64) {
	r.steps.Add(float64(steps))
	r.searches.WithLabelValues(state.String()).Inc()
	if state == astar.Succeeded {
		r.cost.Observe(cost)
	}
}
