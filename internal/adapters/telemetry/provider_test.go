package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/pdfdiff/internal/adapters/telemetry"
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func TestOTelTracer_Start(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	ctx, span := tracer.Start(context.Background(), "compare.paths")
	require.NotNil(t, ctx)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "compare.paths", spans[0].Name())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "interpreter.run")
	span.SetAttribute("module", "compare_pdf")
	span.SetAttribute("exit_code", 2)
	span.SetAttribute("duration_ms", int64(15))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("timed_out", true)
	span.SetAttribute("args", []string{"a.pdf", "b.pdf"})
	span.SetAttribute("other", struct{ N int }{N: 3})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("module", "compare_pdf"))
	assert.Contains(t, attrs, attribute.Int("exit_code", 2))
	assert.Contains(t, attrs, attribute.Int64("duration_ms", 15))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Bool("timed_out", true))
	assert.Contains(t, attrs, attribute.StringSlice("args", []string{"a.pdf", "b.pdf"}))
	assert.Contains(t, attrs, attribute.String("other", "{3}"))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "compare.buffers")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
