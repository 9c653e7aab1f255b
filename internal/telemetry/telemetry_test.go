package telemetry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogEmitterWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	e := NewLogEmitter(logger)
	e.Emit(EventLevelCompleted, map[string]any{"round": 3, "score": 1250})

	out := buf.String()
	if !strings.Contains(out, EventLevelCompleted) {
		t.Errorf("output missing event name: %q", out)
	}
	if !strings.Contains(out, "round") || !strings.Contains(out, "score") {
		t.Errorf("output missing properties: %q", out)
	}
}

func TestLogEmitterNilLoggerIsSafe(t *testing.T) {
	e := NewLogEmitter(nil)
	e.Emit(EventGameOver, nil) // Must not panic.
}

func TestNopEmitter(t *testing.T) {
	var e Emitter = NopEmitter{}
	e.Emit(EventGameStarted, map[string]any{"difficulty": "normal"})
}
