package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("storefront")
	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, 1.0, cfg.SampleRate)
	assert.False(t, cfg.Enabled)
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(t.Context(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(t.Context()))
}

func TestTracer_ReturnsNamedTracer(t *testing.T) {
	tr := Tracer("storefront")
	require.NotNil(t, tr)

	_, span := tr.Start(t.Context(), "test-op")
	require.NotNil(t, span)
	span.End()
}
