package poker

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCardFromIndex(t *testing.T) {
	expectedCard := Card{rank: Two, suit: Heart, ok: true}
	testCard, err := CardFromIndex(26)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
}

func TestAllCardIndices(t *testing.T) {
	for i := 0; i < DeckSize; i++ {
		c, err := CardFromIndex(i)
		if err != nil {
			t.Fatal(err)
		}
		if c.Index() != i {
			t.Fatalf("index round trip failed: %d -> %s -> %d", i, c, c.Index())
		}
	}
	if _, err := CardFromIndex(DeckSize); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestNewCardRejectsOutOfRange(t *testing.T) {
	if _, err := NewCard(Ace+1, Club); err == nil {
		t.Fatal("expected error for rank out of range")
	}
	if _, err := NewCard(Two, Spade+1); err == nil {
		t.Fatal("expected error for suit out of range")
	}
}

func TestCardStringFaces(t *testing.T) {
	c := MustCard(Ace, Heart)
	if c.String() != "A♥" {
		t.Fatalf("expected A♥, got %s", c.String())
	}
	c = MustCard(Jack, Club)
	if c.String() != "J♣" {
		t.Fatalf("expected J♣, got %s", c.String())
	}
	c = MustCard(Ten, Spade)
	if c.String() != "10♠" || c.Code() != "Ts" {
		t.Fatalf("expected 10♠/Ts, got %s/%s", c.String(), c.Code())
	}
	if (Card{}).String() != "??" {
		t.Fatalf("zero card should print as ??, got %s", Card{}.String())
	}
}

func TestParseCard(t *testing.T) {
	cases := map[string]Card{
		"As":  MustCard(Ace, Spade),
		"as":  MustCard(Ace, Spade),
		"10h": MustCard(Ten, Heart),
		"Td":  MustCard(Ten, Diamond),
		"2♣":  MustCard(Two, Club),
		"K♦":  MustCard(King, Diamond),
		" qH": MustCard(Queen, Heart),
	}
	for in, want := range cases {
		got, err := ParseCard(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", in, want, got)
		}
	}
}

func TestParseCardErrors(t *testing.T) {
	for _, in := range []string{"", "A", "1s", "Ax", "Zs", "Ass", "♠A"} {
		if _, err := ParseCard(in); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("parse %q: expected ErrInvalidCard, got %v", in, err)
		}
	}
}

func TestParseCardsSplitsArguments(t *testing.T) {
	cards, err := ParseCards("As Kd,Qh", "2c")
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 4 || cards[3] != MustCard(Two, Club) {
		t.Fatalf("unexpected cards %v", cards)
	}
}

func TestCardJSON(t *testing.T) {
	hole := [2]Card{MustCard(Ace, Spade), {}}
	b, err := json.Marshal(hole)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `["As",""]` {
		t.Fatalf("unexpected json %s", b)
	}
	var back [2]Card
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != hole {
		t.Fatalf("expected %v, got %v", hole, back)
	}
	if err := json.Unmarshal([]byte(`["Xx"]`), &back); err == nil {
		t.Fatal("expected error for invalid card text")
	}
}

func TestNewDeckHasAllCards(t *testing.T) {
	deck := NewDeck()
	seen := map[Card]bool{}
	for _, c := range deck {
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("expected %d distinct cards, got %d", DeckSize, len(seen))
	}
}
