package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RankingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_ranking_requests_total",
			Help: "Total ranking calls by kind and cache outcome",
		},
		[]string{"kind", "cache"},
	)

	RankingResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "career_ranking_results",
			Help:    "Number of ranked items returned per ranking call",
			Buckets: []float64{0, 10, 25, 50, 75, 100},
		},
		[]string{"kind"},
	)

	LLMCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_llm_calls_total",
			Help: "Total generative model calls by feature and outcome",
		},
		[]string{"feature", "outcome"},
	)

	LLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "career_llm_call_duration_seconds",
			Help: "Duration of generative model calls in seconds",
		},
		[]string{"feature"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_http_requests_total",
			Help: "Total HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)
)

// ObserveRanking counts one ranking call and the number of items it returned,
// whether they came from the cache or a fresh ranking.
func ObserveRanking(kind, cache string, results int) {
	RankingRequests.WithLabelValues(kind, cache).Inc()
	RankingResults.WithLabelValues(kind).Observe(float64(results))
}

func ObserveLLM(feature string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	LLMCalls.WithLabelValues(feature, outcome).Inc()
	LLMDuration.WithLabelValues(feature).Observe(time.Since(start).Seconds())
}
