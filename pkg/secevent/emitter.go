package secevent

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Emitter receives security events from the session layer.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// stamp fills the generated fields of an event before delivery.
func stamp(event *Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
}

// LogEmitter writes security events to a structured logger.
type LogEmitter struct {
	log *slog.Logger
}

// NewLogEmitter creates a slog-backed emitter. A nil logger falls back to
// slog.Default.
func NewLogEmitter(log *slog.Logger) *LogEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &LogEmitter{log: log}
}

func (e *LogEmitter) Emit(ctx context.Context, event Event) error {
	stamp(&event)
	if err := event.Validate(); err != nil {
		return err
	}

	attrs := []any{
		"event_id", event.ID,
		"reason", event.Reason,
		"severity", string(event.Severity),
	}
	if event.SessionID != "" {
		attrs = append(attrs, "session_id", event.SessionID)
	}
	if event.UserID != "" {
		attrs = append(attrs, "user_id", event.UserID)
	}
	if event.ClientAddress != "" {
		attrs = append(attrs, "client_address", event.ClientAddress)
	}
	if event.ClientAgent != "" {
		attrs = append(attrs, "client_agent", event.ClientAgent)
	}
	if len(event.Metadata) > 0 {
		attrs = append(attrs, "metadata", event.Metadata)
	}

	e.log.Log(ctx, e.level(event.Severity), "security event", attrs...)
	return nil
}

func (e *LogEmitter) level(severity Severity) slog.Level {
	switch severity {
	case SeverityCritical:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Storage persists security events for later forensic review.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

// StoreEmitter delivers events to a Storage backend.
type StoreEmitter struct {
	storage Storage
}

// NewStoreEmitter creates a storage-backed emitter.
func NewStoreEmitter(storage Storage) *StoreEmitter {
	if storage == nil {
		panic("secevent: storage cannot be nil")
	}
	return &StoreEmitter{storage: storage}
}

func (e *StoreEmitter) Emit(ctx context.Context, event Event) error {
	stamp(&event)
	if err := event.Validate(); err != nil {
		return err
	}
	return e.storage.Store(ctx, event)
}
