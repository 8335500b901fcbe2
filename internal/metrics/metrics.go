// apps/go-solver/internal/metrics/metrics.go
//
// Prometheus instruments for the solver service, served at /metrics.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection kinds used as the "kind" label.
const (
	KindMalformed       = "malformed"
	KindUnknownSolution = "unknown_solution"
	KindGameOver        = "game_over"
)

var (
	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "katla_solver_games_started_total",
		Help: "Solving sessions created",
	})

	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "katla_solver_rounds_total",
		Help: "Accepted rounds by resulting state",
	}, []string{"state"})

	rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "katla_solver_rejections_total",
		Help: "Rounds rejected before touching the session, by kind",
	}, []string{"kind"})

	emptyPools = promauto.NewCounter(prometheus.CounterOpts{
		Name: "katla_solver_empty_pools_total",
		Help: "Rounds that filtered the candidate pool down to nothing",
	})

	poolSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "katla_solver_pool_size",
		Help:    "Candidates remaining after each accepted round",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	})
)

// GameStarted counts a new session.
func GameStarted() { gamesStarted.Inc() }

// RoundAccepted records an accepted round.
func RoundAccepted(state string, remaining int) {
	roundsTotal.WithLabelValues(state).Inc()
	poolSize.Observe(float64(remaining))
	if remaining == 0 {
		emptyPools.Inc()
	}
}

// RoundRejected records a rejected round of the given kind.
func RoundRejected(kind string) { rejectionsTotal.WithLabelValues(kind).Inc() }
