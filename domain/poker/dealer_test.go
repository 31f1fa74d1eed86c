package poker

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/scarlett-vr/casino-core/domain/deck"
)

func TestDealTableGivesDistinctCards(t *testing.T) {
	dealer := NewDealer()
	seats := make([]Seat, 9)
	b, err := dealer.DealTable(seats)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[Card]bool{}
	all := append([]Card{}, b[:]...)
	for _, s := range seats {
		all = append(all, s.Hole[:]...)
	}
	for _, c := range all {
		if !c.Valid() {
			t.Fatalf("dealt an invalid card: %v", all)
		}
		if seen[c] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c] = true
	}
	if dealer.Remaining() != DeckSize-len(all) {
		t.Fatalf("expected %d cards left, got %d", DeckSize-len(all), dealer.Remaining())
	}
}

func TestDealerExhausted(t *testing.T) {
	dealer := NewDealerFrom(deck.NewSeeded(DeckSize, rand.New(rand.NewSource(1))))
	if _, err := dealer.DrawCards(50); err != nil {
		t.Fatal(err)
	}
	if _, err := dealer.DealBoard(); !errors.Is(err, deck.ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(MustParseCards("7c 7d 9c 9d 9h 2s 4h"))
	if err != nil {
		t.Fatal(err)
	}
	if desc == "" {
		t.Fatal("expected a description")
	}
	if _, err := Describe(MustParseCards("7c 7d 9c")); !errors.Is(err, ErrInvalidHandSize) {
		t.Fatalf("expected ErrInvalidHandSize, got %v", err)
	}
}
