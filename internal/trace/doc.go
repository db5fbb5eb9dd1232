// Package trace synthesizes the instruction-level trace of a name digest
// computation.
//
// Nothing here touches a debugger or real hardware: the simulator replays
// the digest algorithm step by step and emits the x86-64 style instruction
// stream a compiled version of it would execute, with register snapshots
// that carry the genuine rolling hash values. Identical input bytes always
// produce an identical trace, which is the contract the music layer depends
// on.
//
// Traces serialize to the JSON shape the audio front end expects: a metadata
// block plus an ordered instruction list with hex-encoded program counters
// and register values.
package trace
