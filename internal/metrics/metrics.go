package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tictactoe"

// Metrics counts what happens on the board. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	marksPlaced   prometheus.Counter
	marksRejected *prometheus.CounterVec
	gamesFinished *prometheus.CounterVec
	restarts      prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		marksPlaced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "marks_placed_total",
			Help:      "Marks accepted by the engine.",
		}),
		marksRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "marks_rejected_total",
			Help:      "Marks rejected by the engine, by reason.",
		}, []string{"reason"}),
		gamesFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games that reached a terminal state, by outcome.",
		}, []string{"outcome"}),
		restarts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Game restarts.",
		}),
	}
}

func (that *Metrics) MarkPlaced() {
	if that == nil {
		return
	}
	that.marksPlaced.Inc()
}

func (that *Metrics) MarkRejected(reason string) {
	if that == nil {
		return
	}
	that.marksRejected.WithLabelValues(reason).Inc()
}

func (that *Metrics) GameFinished(outcome string) {
	if that == nil {
		return
	}
	that.gamesFinished.WithLabelValues(outcome).Inc()
}

func (that *Metrics) Restarted() {
	if that == nil {
		return
	}
	that.restarts.Inc()
}
