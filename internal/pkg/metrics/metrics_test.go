package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRanking(t *testing.T) {
	before := testutil.ToFloat64(RankingRequests.WithLabelValues("jobs", "miss"))
	ObserveRanking("jobs", "miss", 42)
	assert.Equal(t, before+1, testutil.ToFloat64(RankingRequests.WithLabelValues("jobs", "miss")))
}

func TestObserveLLM(t *testing.T) {
	okBefore := testutil.ToFloat64(LLMCalls.WithLabelValues("chat", "ok"))
	errBefore := testutil.ToFloat64(LLMCalls.WithLabelValues("chat", "error"))

	ObserveLLM("chat", time.Now(), nil)
	ObserveLLM("chat", time.Now(), errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(LLMCalls.WithLabelValues("chat", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(LLMCalls.WithLabelValues("chat", "error")))
}
