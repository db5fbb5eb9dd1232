package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"namesong/internal/digest"
)

// DefaultBaseAddress is the program counter the stream starts at. It mirrors
// the load address the original GDB harness observed for the traced binary.
const DefaultBaseAddress uint64 = 0x555555555000

// DefaultMaxInstructions caps runaway streams the same way the GDB harness
// capped stepping.
const DefaultMaxInstructions = 1000

// TrackedRegisters lists the data-flow registers captured per instruction,
// in the fixed order consumers iterate them.
var TrackedRegisters = []string{"rax", "rbx", "rcx", "rdx"}

// Address is a program counter that serializes as a 0x-prefixed hex string.
type Address uint64

// MarshalJSON implements json.Marshaler.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("0x%x", uint64(a)))
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, err := parseHex(raw)
	if err != nil {
		return fmt.Errorf("address %q: %w", raw, err)
	}
	*a = Address(value)
	return nil
}

// RegisterFile is a snapshot of the tracked registers. Values serialize as
// 0x-prefixed hex strings to match the trace file format.
type RegisterFile map[string]uint64

// MarshalJSON implements json.Marshaler.
func (r RegisterFile) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(r))
	for name, value := range r {
		out[name] = fmt.Sprintf("0x%x", value)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RegisterFile) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(RegisterFile, len(raw))
	for name, value := range raw {
		parsed, err := parseHex(value)
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
		out[name] = parsed
	}
	*r = out
	return nil
}

func (r RegisterFile) clone() RegisterFile {
	out := make(RegisterFile, len(r))
	for name, value := range r {
		out[name] = value
	}
	return out
}

func parseHex(raw string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	return strconv.ParseUint(trimmed, 16, 64)
}

// Instruction is one synthesized instruction with the register state after
// it executed.
type Instruction struct {
	Step      int          `json:"step"`
	PC        Address      `json:"pc"`
	Text      string       `json:"instruction"`
	Registers RegisterFile `json:"registers"`
}

// Opcode returns the lowercased mnemonic of the instruction.
func (i Instruction) Opcode() string {
	fields := strings.Fields(i.Text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Options controls trace synthesis. Zero values select the defaults.
type Options struct {
	MaxInstructions int
	BaseAddress     uint64
}

// Trace is the synthesized instruction stream for one name.
type Trace struct {
	Name         string
	Report       digest.Report
	Instructions []Instruction
	Truncated    bool
}

// Fingerprint returns the digest report the trace was generated from.
func (t *Trace) Fingerprint() digest.Report {
	return t.Report
}

type builder struct {
	base      uint64
	limit     int
	regs      RegisterFile
	out       []Instruction
	truncated bool
}

func (b *builder) emit(text string) {
	if len(b.out) >= b.limit {
		b.truncated = true
		return
	}
	step := len(b.out)
	b.out = append(b.out, Instruction{
		Step:      step,
		PC:        Address(b.base + uint64(step)*4),
		Text:      text,
		Registers: b.regs.clone(),
	})
}

// Simulate replays the digest computation for name and returns the
// instruction stream it would execute. The stream is deterministic for a
// given name and options.
func Simulate(name string, opts Options) *Trace {
	limit := opts.MaxInstructions
	if limit <= 0 {
		limit = DefaultMaxInstructions
	}
	base := opts.BaseAddress
	if base == 0 {
		base = DefaultBaseAddress
	}

	report := digest.Sum(name)
	b := &builder{
		base:  base,
		limit: limit,
		regs:  RegisterFile{"rax": 0, "rbx": 0, "rcx": 0, "rdx": 0},
	}

	// Prologue: frame setup and hash basis load.
	b.emit("push %rbp")
	b.emit("mov %rsp,%rbp")
	b.regs["rax"] = uint64(digest.Basis)
	b.emit(fmt.Sprintf("mov $%d,%%eax", digest.Basis))

	// Rolling hash: the compiled form of hash = hash*33 + c. Register
	// writes go through the 32-bit names, so values stay masked the same
	// way eax writes zero-extend on hardware.
	hash := digest.Basis
	for _, c := range []byte(name) {
		b.regs["rcx"] = uint64(c)
		b.emit("movzbl (%rsi),%ecx")

		b.regs["rdx"] = uint64(hash)
		b.emit("mov %eax,%edx")

		b.regs["rax"] = uint64(hash << 5)
		b.emit("shl $5,%eax")

		b.regs["rax"] = uint64((hash << 5) + hash)
		b.emit("add %edx,%eax")

		hash = ((hash << 5) + hash) + uint32(c)
		b.regs["rax"] = uint64(hash)
		b.emit("add %ecx,%eax")
	}

	// Frequency fold, ascending byte values.
	result := hash
	for value := 0; value < len(report.Frequencies); value++ {
		count := report.Frequencies[value]
		if count == 0 {
			continue
		}
		product := uint32(count) * uint32(value)
		b.regs["rbx"] = uint64(product)
		b.emit(fmt.Sprintf("mov $0x%x,%%ebx", product))

		result ^= product
		b.regs["rax"] = uint64(result)
		b.emit("xor %ebx,%eax")
	}

	// Epilogue.
	b.emit("pop %rbp")
	b.emit("ret")

	return &Trace{
		Name:         name,
		Report:       report,
		Instructions: b.out,
		Truncated:    b.truncated,
	}
}
