package runs

import "time"

// Run is one recorded composition.
type Run struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Length       int       `json:"length"`
	Hash         uint32    `json:"hash"`
	Result       uint32    `json:"result"`
	Instructions int       `json:"instructions"`
	Tempo        int       `json:"tempo"`
	Key          string    `json:"key"`
	NoteCount    int       `json:"note_count"`
	ScorePath    string    `json:"score_path,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
