package poker

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/scarlett-vr/casino-core/domain/deck"
)

func board(s string) [5]Card {
	var b [5]Card
	copy(b[:], MustParseCards(s))
	return b
}

func hole(s string) [2]Card {
	var h [2]Card
	copy(h[:], MustParseCards(s))
	return h
}

func TestShowdownSingleWinner(t *testing.T) {
	seats := []Seat{
		{ID: "alice", Hole: hole("Ah Ad"), Contributed: 100},
		{ID: "bob", Hole: hole("Kc Kd"), Contributed: 100},
	}
	out, err := Showdown(board("As 7c 2d 9h Js"), seats)
	if err != nil {
		t.Fatal(err)
	}
	if out.Awards["alice"] != 200 || out.Awards["bob"] != 0 {
		t.Fatalf("expected alice to take 200, got %v", out.Awards)
	}
	if out.Hands["alice"].Category != ThreeOfAKind {
		t.Fatalf("expected alice to hold trips, got %s", out.Hands["alice"].Category)
	}
	if len(out.Winners) != 1 || out.Winners[0][0] != "alice" {
		t.Fatalf("unexpected winners %v", out.Winners)
	}
}

func TestShowdownSplitWithOddChip(t *testing.T) {
	seats := []Seat{
		{ID: "alice", Hole: hole("2c 3d"), Contributed: 51},
		{ID: "bob", Hole: hole("2h 3s"), Contributed: 50},
		{ID: "carol", Hole: hole("4c 4d"), Contributed: 50, Folded: true},
	}
	// the board plays for both live seats
	out, err := Showdown(board("Ac Kd Qh Js Th"), seats)
	if err != nil {
		t.Fatal(err)
	}
	// main pot 150 split 75/75, alice's extra chip comes back as her own side pot
	if out.Awards["alice"] != 76 || out.Awards["bob"] != 75 {
		t.Fatalf("unexpected awards %v", out.Awards)
	}
	if _, ok := out.Hands["carol"]; ok {
		t.Fatal("folded seats must not be evaluated")
	}
}

func TestShowdownOddChipsGoInSeatOrder(t *testing.T) {
	seats := []Seat{
		{ID: "alice", Hole: hole("2c 3d"), Contributed: 33},
		{ID: "bob", Hole: hole("2h 3s"), Contributed: 33},
		{ID: "carol", Hole: hole("4c 5d"), Contributed: 34, Folded: true},
	}
	out, err := Showdown(board("Ac Kd Qh Js Th"), seats)
	if err != nil {
		t.Fatal(err)
	}
	if out.Awards["alice"] != 50 || out.Awards["bob"] != 50 {
		t.Fatalf("unexpected awards %v", out.Awards)
	}

	seats[0].Contributed, seats[1].Contributed, seats[2].Contributed = 33, 33, 35
	out, err = Showdown(board("Ac Kd Qh Js Th"), seats)
	if err != nil {
		t.Fatal(err)
	}
	if out.Awards["alice"] != 51 || out.Awards["bob"] != 50 {
		t.Fatalf("odd chip must go to the first seat, got %v", out.Awards)
	}
}

func TestShowdownSidePots(t *testing.T) {
	seats := []Seat{
		{ID: "short", Hole: hole("Ah Ad"), Contributed: 50},
		{ID: "mid", Hole: hole("Kh Kd"), Contributed: 100},
		{ID: "deep", Hole: hole("Qh Qd"), Contributed: 100},
	}
	out, err := Showdown(board("2c 7s 9d Jc 4h"), seats)
	if err != nil {
		t.Fatal(err)
	}
	if out.Awards["short"] != 150 || out.Awards["mid"] != 100 || out.Awards["deep"] != 0 {
		t.Fatalf("unexpected awards %v", out.Awards)
	}
}

func TestShowdownLastSeatStandingShowsNothing(t *testing.T) {
	seats := []Seat{
		{ID: "alice", Contributed: 20, Folded: true},
		{ID: "bob", Contributed: 40},
	}
	out, err := Showdown([5]Card{}, seats)
	if err != nil {
		t.Fatal(err)
	}
	if out.Awards["bob"] != 60 {
		t.Fatalf("expected bob to take 60, got %v", out.Awards)
	}
	if len(out.Hands) != 0 {
		t.Fatalf("no hand should be evaluated, got %v", out.Hands)
	}
}

func TestShowdownErrors(t *testing.T) {
	b := board("2c 7s 9d Jc 4h")
	_, err := Showdown(b, []Seat{
		{ID: "a", Hole: hole("2c 3c"), Contributed: 10},
		{ID: "b", Hole: hole("5d 6d"), Contributed: 10},
	})
	if !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("expected ErrDuplicateCard, got %v", err)
	}

	_, err = Showdown(b, []Seat{{ID: "a", Folded: true}, {ID: "b", Folded: true}})
	if !errors.Is(err, ErrNoLiveSeats) {
		t.Fatalf("expected ErrNoLiveSeats, got %v", err)
	}

	_, err = Showdown(b, []Seat{{ID: "a"}, {ID: "a"}})
	if !errors.Is(err, ErrInvalidSeat) {
		t.Fatalf("expected ErrInvalidSeat, got %v", err)
	}

	_, err = Showdown(b, []Seat{
		{ID: "a", Hole: hole("Ac Ad"), Contributed: 10},
		{ID: "b", Contributed: 10},
	})
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for a live seat without cards, got %v", err)
	}
}

func TestShowdownConservesChips(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		dealer := NewDealerFrom(deck.NewSeeded(DeckSize, r))
		seats := make([]Seat, 2+r.Intn(7))
		total := uint(0)
		for j := range seats {
			seats[j].ID = string(rune('a' + j))
			seats[j].Contributed = uint(r.Intn(300))
			seats[j].Folded = j > 0 && r.Intn(4) == 0
			total += seats[j].Contributed
		}
		b, err := dealer.DealTable(seats)
		if err != nil {
			t.Fatal(err)
		}
		out, err := Showdown(b, seats)
		if err != nil {
			t.Fatal(err)
		}
		paid := uint(0)
		for _, a := range out.Awards {
			paid += a
		}
		if paid != total {
			t.Fatalf("awarded %d of %d chips: %+v", paid, total, out)
		}
	}
}
