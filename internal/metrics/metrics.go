package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)

var (
	AsksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expert_chat_asks_total",
			Help: "Total number of submitted questions by persona and outcome",
		},
		[]string{"persona", "outcome"},
	)

	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "expert_chat_llm_call_duration_seconds",
			Help:    "Duration of chat completion calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"model"},
	)
)

// RecordAsk counts one submit. Unknown persona values are folded into
// "other" so arbitrary form input cannot grow the label set.
func RecordAsk(persona string, known bool, outcome string) {
	if !known {
		persona = "other"
	}
	AsksTotal.WithLabelValues(persona, outcome).Inc()
}
