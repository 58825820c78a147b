package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextFallsBackToGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	FromContext(context.Background()).Info("hello")

	if logs.Len() != 1 {
		t.Fatalf("Expected 1 log entry, got %d", logs.Len())
	}
}

func TestNewContextSAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	ctx := NewContextS(context.Background(), "task_id", "task-1")
	FromContextS(ctx).Info("started")

	entries := logs.FilterField(zap.String("task_id", "task-1")).All()
	if len(entries) != 1 {
		t.Fatalf("Expected entry with task_id field, got %d entries", len(entries))
	}
	if entries[0].Message != "started" {
		t.Errorf("Expected message 'started', got '%s'", entries[0].Message)
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if L() == nil {
		t.Fatal("Global logger must never be nil")
	}
	L().Info("discarded")
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{ModeProduction, ModeDebug, ""} {
		l, err := New(mode, "")
		if err != nil {
			t.Errorf("New(%q) returned error: %v", mode, err)
			continue
		}
		_ = l.Sync()
	}
}

func TestNewUnknownMode(t *testing.T) {
	if _, err := New("verbose", ""); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
