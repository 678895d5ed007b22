package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/pkg/domain"
)

func TestMetricsHooks(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnPageRasterized(ctx, &domain.PageEvent{PageIndex: 0, Duration: 5 * time.Millisecond})
	hooks.OnPageRasterized(ctx, &domain.PageEvent{PageIndex: 1, Duration: 7 * time.Millisecond})
	hooks.OnExportDone(ctx, &domain.ExportEvent{Pages: 2, Duration: 20 * time.Millisecond})
	hooks.OnExportDone(ctx, &domain.ExportEvent{Pages: 0, Err: errors.New("boom")})
	hooks.OnSessionSaved(ctx, "session-1")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.pagesRasterized))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exportsTotal.WithLabelValues("succeeded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exportsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sessionSaves))
}

func TestMetricsRegisterTwiceFails(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))
}
