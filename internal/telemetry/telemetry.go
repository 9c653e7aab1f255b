// Package telemetry records coarse gameplay analytics events. Emission is
// fire and forget: gameplay never blocks on, or fails because of, analytics.
package telemetry

import (
	"github.com/charmbracelet/log"
)

// Event names recorded by the game.
const (
	EventGameStarted       = "game_started"
	EventCharacterSwitched = "character_switched"
	EventCharacterDeath    = "character_death"
	EventLevelCompleted    = "level_completed"
	EventGameOver          = "game_over"
)

// Emitter records one analytics event with its properties. Implementations
// must never panic and must not block the caller.
type Emitter interface {
	Emit(name string, props map[string]any)
}

// LogEmitter writes events to a structured logger. This is the default sink:
// a terminal game has no business phoning home, but the event stream is still
// useful in debug logs and during development.
type LogEmitter struct {
	logger *log.Logger
}

// NewLogEmitter creates an emitter backed by the given logger.
func NewLogEmitter(logger *log.Logger) *LogEmitter {
	return &LogEmitter{logger: logger}
}

// Emit logs the event at debug level with its properties as fields.
func (e *LogEmitter) Emit(name string, props map[string]any) {
	if e.logger == nil {
		return
	}
	args := make([]any, 0, len(props)*2)
	for k, v := range props {
		args = append(args, k, v)
	}
	e.logger.Debug("telemetry "+name, args...)
}

// NopEmitter discards every event.
type NopEmitter struct{}

// Emit does nothing.
func (NopEmitter) Emit(string, map[string]any) {}
