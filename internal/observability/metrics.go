package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LLMRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "llm_request_duration_seconds",
			Help: "Duration of chat-completion requests in seconds",
		},
	)

	LLMFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "llm_fallbacks_total",
			Help: "Total number of submissions structured with the fallback record",
		},
	)

	SheetAppends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_appends_total",
			Help: "Total number of spreadsheet append calls",
		},
		[]string{"tab", "outcome"},
	)
)

// Handler exposes the default prometheus registry for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
