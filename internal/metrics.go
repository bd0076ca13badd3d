package internal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for guessgame_guesses_total
const (
	ResultTooSmall  = "too_small"
	ResultTooBig    = "too_big"
	ResultCorrect   = "correct"
	ResultMalformed = "malformed"
)

// Metrics collects Prometheus metrics about played games. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	GuessesTotal *prometheus.CounterVec
	GamesWon     prometheus.Counter
	GameDuration prometheus.Histogram
}

// NewMetrics creates the game metrics and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GuessesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guessgame_guesses_total",
				Help: "Total number of guesses submitted, by result",
			},
			[]string{"result"},
		),
		GamesWon: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "guessgame_games_won_total",
				Help: "Total number of games won",
			},
		),
		GameDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "guessgame_game_duration_seconds",
				Help:    "Time from the banner to a winning guess in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
		),
	}

	reg.MustRegister(m.GuessesTotal, m.GamesWon, m.GameDuration)
	return m
}

func (m *Metrics) observeOutcome(outcome Outcome) {
	if m == nil {
		return
	}
	switch outcome {
	case Less:
		m.GuessesTotal.WithLabelValues(ResultTooSmall).Inc()
	case Greater:
		m.GuessesTotal.WithLabelValues(ResultTooBig).Inc()
	case Equal:
		m.GuessesTotal.WithLabelValues(ResultCorrect).Inc()
	}
}

func (m *Metrics) observeMalformed() {
	if m == nil {
		return
	}
	m.GuessesTotal.WithLabelValues(ResultMalformed).Inc()
}

func (m *Metrics) observeWin(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GamesWon.Inc()
	m.GameDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes everything gathered by g to path in the text
// exposition format read by node_exporter's textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}
