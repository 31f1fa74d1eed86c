package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLiveSeats is returned when every seat has folded.
	ErrNoLiveSeats = errors.New("no live seats")
	// ErrInvalidSeat is returned for seats without an ID or with a repeated ID.
	ErrInvalidSeat = errors.New("invalid seat")
)

// Outcome is the result of a showdown.
type Outcome struct {
	Pots    []Pot             `json:"pots"`
	Hands   map[string]Result `json:"-"`
	Awards  map[string]uint   `json:"awards"`
	Winners [][]string        `json:"winners"` // seat IDs per pot, in pot order
}

// Showdown evaluates every live seat against the board and distributes each
// pot to the strongest eligible hands. Tied winners split a pot evenly; the
// odd chips go one each to the tied winners in seat order.
//
// Hands are evaluated only when at least two seats are still live, so the
// last seat standing wins without showing cards. The whole table is checked
// for repeated cards first.
func Showdown(board [5]Card, seats []Seat) (Outcome, error) {
	if err := validateTable(board, seats); err != nil {
		return Outcome{}, err
	}

	live := 0
	for _, s := range seats {
		if !s.Folded {
			live++
		}
	}
	if live == 0 {
		return Outcome{}, ErrNoLiveSeats
	}

	out := Outcome{
		Pots:   BuildPots(seats),
		Hands:  make(map[string]Result),
		Awards: make(map[string]uint),
	}

	if live > 1 {
		for _, s := range seats {
			if s.Folded {
				continue
			}
			res, err := Evaluate(append(board[:], s.Hole[:]...))
			if err != nil {
				return Outcome{}, fmt.Errorf("seat %s: %w", s.ID, err)
			}
			out.Hands[s.ID] = res
		}
	}

	for _, pot := range out.Pots {
		eligible := pot.Eligible
		if len(eligible) == 0 {
			eligible = liveSeats(seats)
		}
		winners := bestSeats(seats, eligible, out.Hands)

		share := pot.Amount / uint(len(winners))
		odd := pot.Amount % uint(len(winners))
		ids := make([]string, len(winners))
		for i, w := range winners {
			amount := share
			if uint(i) < odd {
				amount++
			}
			out.Awards[seats[w].ID] += amount
			ids[i] = seats[w].ID
		}
		out.Winners = append(out.Winners, ids)
	}
	return out, nil
}

// bestSeats returns the eligible seats holding the strongest hand, in seat
// order. With a single candidate no hand is needed.
func bestSeats(seats []Seat, eligible []int, hands map[string]Result) []int {
	if len(eligible) == 1 {
		return eligible
	}
	var winners []int
	var best Result
	for _, idx := range eligible {
		res := hands[seats[idx].ID]
		switch {
		case winners == nil:
			winners, best = []int{idx}, res
		case Compare(res, best) > 0:
			winners, best = []int{idx}, res
		case Compare(res, best) == 0:
			winners = append(winners, idx)
		}
	}
	return winners
}

func liveSeats(seats []Seat) []int {
	var idx []int
	for i, s := range seats {
		if !s.Folded {
			idx = append(idx, i)
		}
	}
	return idx
}

// validateTable rejects empty or repeated seat IDs and any card that shows up
// twice across the board and the hole cards. Zero cards are face down and
// are skipped here; Evaluate rejects them for live seats.
func validateTable(board [5]Card, seats []Seat) error {
	ids := make(map[string]bool, len(seats))
	var seen [DeckSize]bool
	check := func(c Card) error {
		if !c.Valid() {
			return nil
		}
		if seen[c.Index()] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c.Index()] = true
		return nil
	}

	for _, c := range board {
		if err := check(c); err != nil {
			return err
		}
	}
	for _, s := range seats {
		if s.ID == "" {
			return fmt.Errorf("%w: empty id", ErrInvalidSeat)
		}
		if ids[s.ID] {
			return fmt.Errorf("%w: repeated id %q", ErrInvalidSeat, s.ID)
		}
		ids[s.ID] = true
		for _, c := range s.Hole {
			if err := check(c); err != nil {
				return err
			}
		}
	}
	return nil
}
