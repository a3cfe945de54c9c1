// Package secevent delivers structured security events emitted by the
// session layer: timeout expiries, fingerprint mismatches and store
// failures.
//
// The session middleware calls an Emitter but does not own its delivery
// guarantees. Three emitters ship with the package:
//
//   - LogEmitter writes events to a slog.Logger, mapping severity to the
//     log level.
//   - StoreEmitter persists events through a Storage backend; PGStorage
//     implements Storage on a pgx pool for forensic review.
//   - AsyncEmitter wraps any Emitter with a buffered channel so emission
//     never blocks the request path.
//
// Typical production wiring:
//
//	storage := secevent.NewPGStorage(pool)
//	emitter := secevent.NewAsyncEmitter(secevent.NewStoreEmitter(storage), 1024)
//	defer emitter.Close(ctx)
package secevent
