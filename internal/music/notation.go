package music

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

var durationNames = map[float64]string{
	0.125: "8th",
	0.25:  "quarter",
	0.375: "dotted quarter",
	0.5:   "half",
}

// DurationName renders a rhythm value as its note-length name.
func DurationName(rhythm float64) string {
	if name, ok := durationNames[rhythm]; ok {
		return name
	}
	return "quarter"
}

// DisplayName renders an instrument or key identifier for human output.
func DisplayName(identifier string) string {
	return titleCaser.String(identifier)
}

// Notation renders the first limit notes as human-readable lines, e.g.
// "C4 (quarter) - piano". A limit of 0 renders the whole score.
func (s *Score) Notation(limit int) []string {
	count := len(s.Notes)
	if limit > 0 && limit < count {
		count = limit
	}
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, fmt.Sprintf("%s (%s) - %s", s.Notes[i], DurationName(s.Rhythms[i]), s.Instruments[i]))
	}
	return lines
}

// InstrumentCount pairs an instrument with how many notes it plays.
type InstrumentCount struct {
	Instrument string
	Count      int
}

// InstrumentUsage returns per-instrument note counts, most used first with
// alphabetical tie-break.
func (s *Score) InstrumentUsage() []InstrumentCount {
	counts := make(map[string]int)
	for _, instrument := range s.Instruments {
		counts[instrument]++
	}
	usage := make([]InstrumentCount, 0, len(counts))
	for instrument, count := range counts {
		usage = append(usage, InstrumentCount{Instrument: instrument, Count: count})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Instrument < usage[j].Instrument
	})
	return usage
}
