package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != nil {
		t.Fatalf("expected nil trace ID, got %v", got)
	}
	ctx := contextWithTraceID(context.Background(), "trace-abc")
	got := TraceIDFromContext(ctx)
	if got == nil || *got != "trace-abc" {
		t.Fatalf("expected trace-abc, got %v", got)
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if LoggerFromContext(context.Background()) == nil {
		t.Fatal("expected the global logger as fallback")
	}
	if LoggerFromContext(nil) == nil { //nolint:staticcheck // exercising the nil-context path
		t.Fatal("expected the global logger for nil context")
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)
	ctx := contextWithLogger(context.Background(), logger)

	err := errors.New("boom")
	LogError(ctx, "failed", err, zap.String("foo", "bar"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "failed" {
		t.Fatalf("unexpected log message: %s", entry.Message)
	}
	found := false
	for _, f := range entry.Context {
		if f.Key == "error" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected error field in log entry")
	}
}

func TestLogAuditEvent(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	ctx := contextWithLogger(context.Background(), logger)

	LogAuditEvent(ctx, "create", "public", "contact", "contact-1", "success", nil)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["audit.action"] != "create" {
		t.Errorf("expected audit.action create, got %v", fields["audit.action"])
	}
	if fields["audit.resource_id"] != "contact-1" {
		t.Errorf("expected audit.resource_id contact-1, got %v", fields["audit.resource_id"])
	}
}
