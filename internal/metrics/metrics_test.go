package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(scoring.ScoreResult{Variant: scoring.VariantContinuous, TotalScore: 42, Warnings: []string{"a", "b"}}, time.Millisecond)
	m.Observe(scoring.ScoreResult{Variant: scoring.VariantChecklist, TotalScore: 95, Warnings: []string{}}, time.Millisecond)
	m.Observe(scoring.ScoreResult{Variant: scoring.VariantChecklist, TotalScore: 10}, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("continuous")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("checklist")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Warnings.WithLabelValues("continuous")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Warnings))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Scores))

	count, err := testutil.GatherAndCount(reg, "amplify_evaluation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.Observe(scoring.ScoreResult{TotalScore: 1}, 0)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("continuous")))
}
