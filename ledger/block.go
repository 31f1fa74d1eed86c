package ledger

import (
	"github.com/google/uuid"

	"github.com/scarlett-vr/casino-core/domain/poker"
)

// Block is one entry of the hand history chain.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record is the outcome of a single hand at a table.
type Record struct {
	HandID uuid.UUID       `json:"hand_id"`
	Table  string          `json:"table"`
	Board  [5]poker.Card   `json:"board"`
	Seats  []SeatResult    `json:"seats"`
	Awards map[string]uint `json:"awards"`
}

// SeatResult is what a seat showed at showdown.
type SeatResult struct {
	ID          string         `json:"id"`
	Name        string         `json:"name,omitempty"`
	Hole        [2]poker.Card  `json:"hole"`
	Contributed uint           `json:"contributed"`
	Folded      bool           `json:"folded"`
	Category    poker.Category `json:"category"`
	Label       string         `json:"label,omitempty"` // empty when the hand was not shown
}

// NewRecord builds the history record for a finished showdown. Hole cards of
// seats that did not have to show are left face down.
func NewRecord(table string, board [5]poker.Card, seats []poker.Seat, out poker.Outcome) Record {
	rec := Record{
		HandID: uuid.New(),
		Table:  table,
		Board:  board,
		Seats:  make([]SeatResult, len(seats)),
		Awards: out.Awards,
	}
	for i, s := range seats {
		sr := SeatResult{
			ID:          s.ID,
			Name:        s.Name,
			Contributed: s.Contributed,
			Folded:      s.Folded,
		}
		if res, ok := out.Hands[s.ID]; ok {
			sr.Hole = s.Hole
			sr.Category = res.Category
			sr.Label = res.Name()
		}
		rec.Seats[i] = sr
	}
	return rec
}
