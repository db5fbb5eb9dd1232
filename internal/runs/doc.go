// Package runs persists the history of namesong compositions in SQLite.
//
// Every compose invocation records the name, its fingerprint intermediates,
// and the resulting score shape. Determinism means re-running a name yields
// the same fingerprint; history keeps every invocation anyway because runs
// are events, not a cache.
//
// Writes are serialized through a file lock next to the database so
// concurrent CLI invocations do not interleave.
package runs
