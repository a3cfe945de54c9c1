package secevent

import (
	"context"
	"sync"
)

// AsyncEmitter decouples event delivery from the request path with a
// buffered channel and a background worker. When the buffer is full the
// event is dropped and ErrBufferFull returned; losing an audit record is
// preferable to blocking a request.
type AsyncEmitter struct {
	inner  Emitter
	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
	closed sync.Once
}

// NewAsyncEmitter wraps an emitter with an asynchronous buffer.
func NewAsyncEmitter(inner Emitter, bufferSize int) *AsyncEmitter {
	if bufferSize <= 0 {
		bufferSize = 256
	}

	e := &AsyncEmitter{
		inner:  inner,
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}

	e.wg.Add(1)
	go e.worker()

	return e
}

func (e *AsyncEmitter) Emit(ctx context.Context, event Event) error {
	stamp(&event)
	if err := event.Validate(); err != nil {
		return err
	}

	select {
	case <-e.done:
		return ErrEmitterClosed
	default:
	}

	select {
	case e.events <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close stops accepting events and drains the buffer. The context bounds
// how long the drain may take.
func (e *AsyncEmitter) Close(ctx context.Context) error {
	e.closed.Do(func() {
		close(e.done)
	})

	drained := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *AsyncEmitter) worker() {
	defer e.wg.Done()

	for {
		select {
		case event := <-e.events:
			_ = e.inner.Emit(context.Background(), event)
		case <-e.done:
			// Drain whatever is still buffered before exiting.
			for {
				select {
				case event := <-e.events:
					_ = e.inner.Emit(context.Background(), event)
				default:
					return
				}
			}
		}
	}
}
