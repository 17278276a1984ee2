package observability

import (
	"testing"

	"github.com/aretw0/insist"
	"github.com/aretw0/insist/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	c := insist.New(insist.WithHooks(m.Hooks()))
	_, _ = c.Args([]any{"a"}, types.String)
	_, _ = c.Args([]any{1}, types.String)
	_ = c.OfType(1, types.Number)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.checks.WithLabelValues("args", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checks.WithLabelValues("args", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checks.WithLabelValues("ofType", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
