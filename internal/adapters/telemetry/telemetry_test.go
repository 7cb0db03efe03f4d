package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/automap/internal/adapters/telemetry"
	"go.trai.ch/automap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(context.Background(), "generate")
	span.SetAttribute("pattern", "./model")
	span.SetAttribute("types", 3)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("changed", true)
	span.SetAttribute("names", []string{"A", "B"})
	span.SetAttribute("other", struct{ X int }{1})
	span.RecordError(errors.New("boom"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, "generate", s.Name())
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "boom", s.Status().Description)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("pattern", "./model"),
		attribute.Int("types", 3),
		attribute.Int64("size", 42),
		attribute.Float64("ratio", 0.5),
		attribute.Bool("changed", true),
		attribute.StringSlice("names", []string{"A", "B"}),
		attribute.String("other", "{1}"),
	}, s.Attributes())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(context.Background(), "inspect")
	require.NotNil(t, ctx)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var messages []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, ok := tracer.Start(context.Background(), "inspect")
	ok.End()

	_, failed := tracer.Start(context.Background(), "generate")
	failed.RecordError(errors.New("boom"))
	failed.End()

	require.Len(t, messages, 2)
	assert.True(t, strings.HasPrefix(messages[0], "inspect finished in "), messages[0])
	assert.True(t, strings.HasPrefix(messages[1], "generate failed after "), messages[1])
}

func TestBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	span.End()
}
