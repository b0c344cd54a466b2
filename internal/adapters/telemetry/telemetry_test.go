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
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/makerun/internal/adapters/telemetry"
	"go.trai.ch/makerun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(2)

	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", mockLogger, recorder)

	ctx, parent := tracer.Start(context.Background(), "dispatch")
	parent.SetAttribute("target", "run")
	parent.SetAttribute("test_binary", false)

	_, child := tracer.Start(ctx, "make")
	child.SetAttribute("exit_code", 2)
	child.RecordError(errors.New("make exited with a non-zero status"))
	child.End()
	parent.End()

	require.NoError(t, tracer.Shutdown(context.Background()))

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	makeSpan, dispatchSpan := ended[0], ended[1]
	assert.Equal(t, "make", makeSpan.Name())
	assert.Equal(t, dispatchSpan.SpanContext().SpanID(), makeSpan.Parent().SpanID())
	assert.Equal(t, codes.Error, makeSpan.Status().Code)
	assert.Contains(t, makeSpan.Attributes(), attribute.Int("exit_code", 2))
	assert.Contains(t, dispatchSpan.Attributes(), attribute.String("target", "run"))
	assert.Contains(t, dispatchSpan.Attributes(), attribute.Bool("test_binary", false))

	require.Len(t, logged, 2)
	assert.True(t, strings.HasPrefix(logged[0], "span make took "))
	assert.Contains(t, logged[0], "exit_code=2")
	assert.Contains(t, logged[0], `error="make exited with a non-zero status"`)
	assert.True(t, strings.HasPrefix(logged[1], "span dispatch took "))
	assert.Contains(t, logged[1], "target=run")
}

func TestOTelSpan_SetAttribute_Types(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", mockLogger, recorder)

	_, span := tracer.Start(context.Background(), "attrs")
	span.SetAttribute("string", "value")
	span.SetAttribute("int", 42)
	span.SetAttribute("int64", int64(64))
	span.SetAttribute("float", 3.5)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("other", uint16(0xf4))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := ended[0].Attributes()
	assert.Contains(t, attrs, attribute.String("string", "value"))
	assert.Contains(t, attrs, attribute.Int("int", 42))
	assert.Contains(t, attrs, attribute.Int64("int64", 64))
	assert.Contains(t, attrs, attribute.Float64("float", 3.5))
	assert.Contains(t, attrs, attribute.Bool("bool", true))
	assert.Contains(t, attrs, attribute.StringSlice("slice", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", "244"))
}

func TestLogBridge_NilLogger(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", nil, recorder)

	_, span := tracer.Start(context.Background(), "quiet")
	assert.NotPanics(t, span.End)
	assert.Len(t, recorder.Ended(), 1)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()

	require.NoError(t, tracer.Shutdown(ctx))
}
