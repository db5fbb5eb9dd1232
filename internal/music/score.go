package music

import (
	"strings"

	"namesong/internal/trace"
)

// ConversionVersion tags serialized scores so the audio front end can detect
// incompatible mapping changes.
const ConversionVersion = "1.0"

// FallbackNote is used for opcodes outside the mapping table.
const FallbackNote = "C4"

// baseOpcodes are matched by prefix so suffixed forms (movzbl, addl) map to
// their base mnemonic.
var baseOpcodes = []string{
	"mov", "add", "sub", "mul", "div", "cmp", "jmp",
	"call", "ret", "push", "pop", "lea", "xor", "and", "or",
}

var noteByOpcode = map[string]string{
	"mov":  "C4",
	"add":  "D4",
	"sub":  "E4",
	"mul":  "F4",
	"div":  "G4",
	"cmp":  "A4",
	"jmp":  "B4",
	"call": "C5",
	"ret":  "D5",
	"push": "E5",
	"pop":  "F5",
	"lea":  "G5",
	"xor":  "A5",
	"and":  "B5",
	"or":   "C6",
}

var instrumentByRegister = map[string]string{
	"rax": "piano",
	"rbx": "guitar",
	"rcx": "violin",
	"rdx": "flute",
	"rsi": "trumpet",
	"rdi": "drums",
	"rbp": "bass",
	"rsp": "synth",
}

var keyByRegister = map[string]string{
	"rax": "C",
	"rbx": "D",
	"rcx": "E",
	"rdx": "F",
	"rsi": "G",
	"rdi": "A",
	"rbp": "B",
	"rsp": "C",
}

// Rhythm durations by instruction class, in fractions of a whole note.
const (
	rhythmSimple  = 0.25
	rhythmDefault = 0.375
	rhythmComplex = 0.5
)

var simpleOpcodes = map[string]bool{"mov": true, "push": true, "pop": true}

var complexOpcodes = map[string]bool{"mul": true, "div": true, "call": true}

// Metadata describes the provenance of a score.
type Metadata struct {
	Name              string `json:"name_processed"`
	Fingerprint       uint32 `json:"fingerprint"`
	TotalInstructions int    `json:"total_instructions"`
	Version           string `json:"conversion_version"`
}

// Score is the musical rendering of one trace. Notes, Rhythms and
// Instruments run in parallel, one entry per instruction.
type Score struct {
	Notes       []string  `json:"notes"`
	Rhythms     []float64 `json:"rhythms"`
	Instruments []string  `json:"instruments"`
	Tempo       int       `json:"tempo"`
	Key         string    `json:"key"`
	Metadata    Metadata  `json:"metadata"`
}

// Options tunes the tempo tiers and the key fallback. Zero values select
// the defaults.
type Options struct {
	SlowTempo   int
	MediumTempo int
	FastTempo   int
	FallbackKey string
}

func (o Options) withDefaults() Options {
	if o.SlowTempo <= 0 {
		o.SlowTempo = 90
	}
	if o.MediumTempo <= 0 {
		o.MediumTempo = 120
	}
	if o.FastTempo <= 0 {
		o.FastTempo = 150
	}
	if o.FallbackKey == "" {
		o.FallbackKey = "C"
	}
	return o
}

// NormalizeOpcode reduces a mnemonic to its base form: suffixed variants
// match by prefix, anything else passes through lowercased.
func NormalizeOpcode(opcode string) string {
	lowered := strings.ToLower(strings.TrimSpace(opcode))
	for _, base := range baseOpcodes {
		if strings.HasPrefix(lowered, base) {
			return base
		}
	}
	return lowered
}

// NoteFor maps an opcode to its pitch.
func NoteFor(opcode string) string {
	if note, ok := noteByOpcode[NormalizeOpcode(opcode)]; ok {
		return note
	}
	return FallbackNote
}

// RhythmFor maps an opcode to a duration: simple instructions play short,
// expensive ones long.
func RhythmFor(opcode string) float64 {
	base := NormalizeOpcode(opcode)
	switch {
	case simpleOpcodes[base]:
		return rhythmSimple
	case complexOpcodes[base]:
		return rhythmComplex
	default:
		return rhythmDefault
	}
}

// instrumentFor picks the instrument of the register holding the largest
// value. Ties resolve in tracked-register order so the choice stays
// deterministic.
func instrumentFor(regs trace.RegisterFile) string {
	best := "rax"
	var bestValue uint64
	for _, name := range trace.TrackedRegisters {
		if value, ok := regs[name]; ok && value > bestValue {
			best = name
			bestValue = value
		}
	}
	return instrumentByRegister[best]
}

// Compose converts a trace into a score.
func Compose(tr *trace.Trace, opts Options) *Score {
	opts = opts.withDefaults()

	count := len(tr.Instructions)
	score := &Score{
		Notes:       make([]string, 0, count),
		Rhythms:     make([]float64, 0, count),
		Instruments: make([]string, 0, count),
		Tempo:       tempoFor(count, opts),
		Metadata: Metadata{
			Name:              tr.Name,
			Fingerprint:       tr.Report.Result,
			TotalInstructions: count,
			Version:           ConversionVersion,
		},
	}

	sums := make(map[string]uint64, len(trace.TrackedRegisters))
	for _, instr := range tr.Instructions {
		opcode := instr.Opcode()
		score.Notes = append(score.Notes, NoteFor(opcode))
		score.Rhythms = append(score.Rhythms, RhythmFor(opcode))
		score.Instruments = append(score.Instruments, instrumentFor(instr.Registers))
		for name, value := range instr.Registers {
			sums[name] += value
		}
	}

	score.Key = keyFor(sums, opts.FallbackKey)
	return score
}

func tempoFor(instructionCount int, opts Options) int {
	switch {
	case instructionCount < 100:
		return opts.SlowTempo
	case instructionCount < 500:
		return opts.MediumTempo
	default:
		return opts.FastTempo
	}
}

// keyFor picks the key of the register with the largest summed value across
// the trace.
func keyFor(sums map[string]uint64, fallback string) string {
	best := ""
	var bestValue uint64
	for _, name := range trace.TrackedRegisters {
		if sum, ok := sums[name]; ok && sum > bestValue {
			best = name
			bestValue = sum
		}
	}
	if key, ok := keyByRegister[best]; ok {
		return key
	}
	return fallback
}
