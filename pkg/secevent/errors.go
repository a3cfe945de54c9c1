package secevent

import "errors"

var (
	// ErrEventValidation indicates the event misses required fields
	ErrEventValidation = errors.New("secevent.validation_failed")

	// ErrBufferFull indicates the async emitter dropped an event
	ErrBufferFull = errors.New("secevent.buffer_full")

	// ErrEmitterClosed indicates emission after Close
	ErrEmitterClosed = errors.New("secevent.emitter_closed")
)
