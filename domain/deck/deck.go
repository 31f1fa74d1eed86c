package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// ErrDeckExhausted is returned when a draw asks for more cards than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered stack of card indices 0..DeckSize-1. Cards are drawn
// from the top; Shuffle restores the full deck in a random order.
type Deck struct {
	DeckSize int
	cards    []int
	next     int
	stream   cipher.Stream
}

// New creates a deck of size cards in index order, drawing its shuffle
// randomness from the Ed25519 suite stream.
func New(size int) *Deck {
	return newDeck(size, suite.RandomStream())
}

// NewSeeded creates a deck whose shuffles are fully determined by the bytes
// read from seed. The reader must not run dry.
func NewSeeded(size int, seed io.Reader) *Deck {
	return newDeck(size, random.New(seed))
}

func newDeck(size int, stream cipher.Stream) *Deck {
	d := &Deck{DeckSize: size, stream: stream}
	d.reset()
	return d
}

func (d *Deck) reset() {
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i
	}
	d.next = 0
}

// Shuffle gathers every card back and permutes the deck with Fisher-Yates.
func (d *Deck) Shuffle() {
	d.reset()
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if d.Remaining() < n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrDeckExhausted, n, d.Remaining())
	}
	drawn := make([]int, n)
	copy(drawn, d.cards[d.next:d.next+n])
	d.next += n
	return drawn, nil
}

// Remaining returns how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
