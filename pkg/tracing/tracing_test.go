package tracing

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestStartAndRecordError(t *testing.T) {
	rec := withRecorder(t)

	_, span := Start(context.Background(), "chat.resolve", attribute.String("chat.tool", "help"))
	RecordError(span, nil)
	RecordError(span, errors.New("boom"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "chat.resolve", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("chat.tool", "help"))
	assert.Len(t, ended[0].Events(), 1)
}

func TestSetup_Disabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tp, err := Setup(context.Background(), config.OtelConfig{}, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestSetup_Enabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tp, err := Setup(context.Background(), config.OtelConfig{
		ExporterEndpoint: "http://127.0.0.1:4318",
		ServiceName:      "test",
		SamplingRate:     0.5,
	}, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.Same(t, tp, otel.GetTracerProvider())
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), Sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), Sampler(0.25).Description())
}
