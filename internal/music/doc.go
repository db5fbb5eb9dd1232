// Package music converts instruction traces into musical scores.
//
// Every instruction contributes one note: the opcode picks the pitch, the
// instruction class picks the rhythm, and the register holding the largest
// value at that step picks the instrument. Tempo follows the overall
// instruction count and the key follows the register that dominated the
// trace. The mapping is fixed, so a given trace always composes the same
// score.
//
// Scores serialize to the musical_data JSON shape the audio front end loads.
package music
