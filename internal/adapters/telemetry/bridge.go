package telemetry

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/makerun/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor to report finished spans on the debug log.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.logger.Debug(FormatSpan(s))
}

// FormatSpan renders a finished span as a single log line.
func FormatSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString("span ")
	sb.WriteString(s.Name())
	sb.WriteString(" took ")
	sb.WriteString(s.EndTime().Sub(s.StartTime()).String())

	for _, attr := range s.Attributes() {
		sb.WriteByte(' ')
		sb.WriteString(string(attr.Key))
		sb.WriteByte('=')
		sb.WriteString(attr.Value.Emit())
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		sb.WriteString(" error=")
		sb.WriteString(strconv.Quote(desc))
	}

	return sb.String()
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
