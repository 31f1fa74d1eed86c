package poker

import (
	"github.com/scarlett-vr/casino-core/domain/deck"
)

// Dealer wraps a generic deck and hands out poker cards.
type Dealer struct {
	*deck.Deck
}

// NewDealer creates a dealer over a fresh 52-card deck.
func NewDealer() Dealer {
	return Dealer{Deck: deck.New(DeckSize)}
}

// NewDealerFrom wraps an existing deck, e.g. a seeded one in tests.
func NewDealerFrom(d *deck.Deck) Dealer {
	return Dealer{Deck: d}
}

// DrawCards draws n cards from the top of the deck.
func (d Dealer) DrawCards(n int) ([]Card, error) {
	raw, err := d.Deck.Draw(n)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, len(raw))
	for i, r := range raw {
		c, err := CardFromIndex(r)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// DealHole draws two hole cards.
func (d Dealer) DealHole() ([2]Card, error) {
	cards, err := d.DrawCards(2)
	if err != nil {
		return [2]Card{}, err
	}
	return [2]Card{cards[0], cards[1]}, nil
}

// DealBoard draws the five community cards.
func (d Dealer) DealBoard() ([5]Card, error) {
	var board [5]Card
	cards, err := d.DrawCards(5)
	if err != nil {
		return board, err
	}
	copy(board[:], cards)
	return board, nil
}

// DealTable shuffles and deals hole cards to every seat followed by a board.
func (d Dealer) DealTable(seats []Seat) ([5]Card, error) {
	d.Shuffle()
	for i := range seats {
		hole, err := d.DealHole()
		if err != nil {
			return [5]Card{}, err
		}
		seats[i].Hole = hole
	}
	return d.DealBoard()
}
