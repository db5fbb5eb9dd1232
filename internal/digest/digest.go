package digest

import "fmt"

// Basis is the DJB2 initial accumulator value.
const Basis uint32 = 5381

// FrequencyTable counts occurrences of each byte value within an input.
type FrequencyTable [256]int

// Report carries the fingerprint of a name together with the intermediate
// values the trace and audio tooling consume.
type Report struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
	Hash   uint32 `json:"hash"`
	Result uint32 `json:"result"`

	Frequencies FrequencyTable `json:"-"`
}

// Hash returns the DJB2 rolling hash of data: hash = hash*33 + c per byte,
// starting from Basis. Overflow wraps at 32 bits; that wraparound is part of
// the definition, not an error.
func Hash(data []byte) uint32 {
	h := Basis
	for _, c := range data {
		h = ((h << 5) + h) + uint32(c)
	}
	return h
}

// Frequencies builds the byte-value occurrence table for data.
func Frequencies(data []byte) FrequencyTable {
	var counts FrequencyTable
	for _, c := range data {
		counts[c]++
	}
	return counts
}

// Fold combines a rolling hash with a frequency table. For every byte value
// with a nonzero count, taken in ascending order, the product count*value is
// XORed into the accumulator with 32-bit wraparound. XOR makes the final
// value order-independent; ascending order is still fixed so intermediate
// logging stays reproducible.
func Fold(hash uint32, counts FrequencyTable) uint32 {
	result := hash
	for i := 0; i < len(counts); i++ {
		if counts[i] > 0 {
			result ^= uint32(counts[i]) * uint32(i)
		}
	}
	return result
}

// Fingerprint returns the 32-bit fingerprint of name. The empty input is
// valid and yields Basis unchanged.
func Fingerprint(name []byte) uint32 {
	return Fold(Hash(name), Frequencies(name))
}

// Sum computes the full report for name, including intermediates.
func Sum(name string) Report {
	data := []byte(name)
	hash := Hash(data)
	counts := Frequencies(data)
	return Report{
		Name:        name,
		Length:      len(data),
		Hash:        hash,
		Result:      Fold(hash, counts),
		Frequencies: counts,
	}
}

// DiagnosticLine renders the stable single-line form parsed by downstream
// tooling. Field order and formatting must not change.
func (r Report) DiagnosticLine() string {
	return fmt.Sprintf("Name: %s, Length: %d, Hash: %d, Result: %d", r.Name, r.Length, r.Hash, r.Result)
}

// Distinct returns the number of byte values with a nonzero count.
func (t FrequencyTable) Distinct() int {
	n := 0
	for _, count := range t {
		if count > 0 {
			n++
		}
	}
	return n
}
