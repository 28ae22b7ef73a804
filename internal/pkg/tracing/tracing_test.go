package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-graph/internal/config"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(&config.TracingConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NotPanics(t, func() { shutdown(context.Background()) })
}

func TestInit_Enabled(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:     true,
		Endpoint:    "127.0.0.1:4318",
		ServiceName: "transit-graph-test",
	}

	shutdown, err := Init(cfg, zap.NewNop())
	require.NoError(t, err)

	// Nothing was exported, so shutdown completes without a collector.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NotPanics(t, func() { shutdown(ctx) })
}
