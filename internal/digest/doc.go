// Package digest computes the 32-bit name fingerprint at the heart of
// namesong.
//
// The fingerprint is a DJB2 rolling hash (multiply by 33 and add, starting
// from 5381) combined with a character-frequency fold: the occurrence count
// of every byte value present in the input, multiplied by the byte value, is
// XORed into the hash. All arithmetic wraps at 32 bits, which is required
// behavior rather than an error condition.
//
// The computation is a pure function of the input bytes. Downstream tooling
// (the trace simulator and the audio front end) parses the textual report
// line, so Report.DiagnosticLine is a stable contract.
package digest
