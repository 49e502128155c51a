package observability

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/abhisek/skilleval/internal/logger"
)

func TestSetupTracing_NoneIsNoop(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), TracingConfig{Exporter: ExporterNone}, nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_StdoutExportsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := SetupTracing(context.Background(), TracingConfig{
		ServiceName: "skilleval-test",
		Exporter:    ExporterStdout,
		SampleRatio: 1,
		Writer:      &buf,
	}, logger.Nop())
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "unit-span")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "unit-span")
	assert.Contains(t, buf.String(), "skilleval-test")
}

func TestSetupTracing_UnknownExporter(t *testing.T) {
	_, err := SetupTracing(context.Background(), TracingConfig{Exporter: "zipkin"}, nil)
	assert.Error(t, err)
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 0.25, clampRatio(0.25))
	assert.Equal(t, 1.0, clampRatio(3))
}
