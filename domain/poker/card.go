package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Suit of a card. Suits are unordered for hand ranking.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Rank of a card, ordered from Two (0) to Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	// NumRanks is the number of distinct ranks in a standard deck.
	NumRanks = 13
	// NumSuits is the number of distinct suits in a standard deck.
	NumSuits = 4
	// DeckSize is the number of cards in a standard deck.
	DeckSize = NumRanks * NumSuits
)

// ErrInvalidCard is returned for ranks, suits or text that do not name a card.
var ErrInvalidCard = errors.New("invalid card")

const rankSymbols = "23456789TJQKA"

var (
	suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}
	suitLetters = [NumSuits]byte{'c', 'd', 'h', 's'}
)

// Card represents a playing card with rank and suit.
// The zero value is not a valid card; use NewCard or ParseCard.
type Card struct {
	rank Rank
	suit Suit
	ok   bool
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: Two..Ace (0-12)
//   - suit: Club, Diamond, Heart, Spade (0-3)
//
// Returns the Card or an error if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank > Ace || suit > Spade {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit, ok: true}, nil
}

// MustCard is like NewCard but panics on invalid input. Intended for tables
// and tests.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// CardFromIndex converts an index in 0..51 back to a Card. Indices are
// suit-major: 0-12 are the clubs Two through Ace, 13-25 diamonds, and so on.
func CardFromIndex(i int) (Card, error) {
	if i < 0 || i >= DeckSize {
		return Card{}, fmt.Errorf("%w: index %d", ErrInvalidCard, i)
	}
	return NewCard(Rank(i%NumRanks), Suit(i/NumRanks))
}

// Rank returns the rank of the Card (Two..Ace).
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Valid reports whether c was built through a validating constructor.
func (c Card) Valid() bool {
	return c.ok
}

// Index returns the position of c in an ordered deck (0..51).
func (c Card) Index() int {
	return int(c.suit)*NumRanks + int(c.rank)
}

// String returns the card as rank and unicode suit symbol, e.g. "A♠" or "10♥".
func (c Card) String() string {
	if !c.ok {
		return "??"
	}
	return c.rank.String() + suitSymbols[c.suit]
}

// Pretty is String with red diamonds and hearts for terminal output.
func (c Card) Pretty() string {
	if !c.ok {
		return "▓"
	}
	switch c.suit {
	case Diamond, Heart:
		return c.rank.String() + pterm.LightRed(suitSymbols[c.suit])
	default:
		return c.rank.String() + pterm.Gray(suitSymbols[c.suit])
	}
}

// Code returns the two-character ASCII form, e.g. "As" or "Th".
func (c Card) Code() string {
	if !c.ok {
		return "??"
	}
	return string([]byte{rankSymbols[c.rank], suitLetters[c.suit]})
}

// MarshalText encodes the card in its ASCII code form. The zero card, a
// face-down or missing card, encodes as the empty string.
func (c Card) MarshalText() ([]byte, error) {
	if !c.ok {
		return []byte{}, nil
	}
	return []byte(c.Code()), nil
}

// UnmarshalText accepts anything ParseCard does, and the empty string for
// the zero card.
func (c *Card) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Card{}
		return nil
	}
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// String returns the rank symbol; Ten is printed as "10".
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	if r == Ten {
		return "10"
	}
	return string(rankSymbols[r])
}

// String returns the unicode suit symbol.
func (s Suit) String() string {
	if s > Spade {
		return "?"
	}
	return suitSymbols[s]
}

// ParseCard parses a card such as "As", "10h", "Td" or "K♣".
// Rank letters and suit letters are case-insensitive.
func ParseCard(s string) (Card, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return Card{}, fmt.Errorf("%w: empty", ErrInvalidCard)
	}

	var rankPart, suitPart string
	if strings.HasPrefix(str, "10") {
		rankPart, suitPart = "T", str[2:]
	} else {
		rankPart, suitPart = str[:1], str[1:]
	}

	ri := strings.IndexByte(rankSymbols, strings.ToUpper(rankPart)[0])
	if ri < 0 {
		return Card{}, fmt.Errorf("%w: rank in %q", ErrInvalidCard, s)
	}
	suit, ok := parseSuit(suitPart)
	if !ok {
		return Card{}, fmt.Errorf("%w: suit in %q", ErrInvalidCard, s)
	}
	return NewCard(Rank(ri), suit)
}

func parseSuit(s string) (Suit, bool) {
	for i, sym := range suitSymbols {
		if s == sym {
			return Suit(i), true
		}
	}
	if len(s) != 1 {
		return 0, false
	}
	l := strings.ToLower(s)[0]
	for i, letter := range suitLetters {
		if l == letter {
			return Suit(i), true
		}
	}
	return 0, false
}

// ParseCards parses every argument as one or more cards. An argument may hold
// several cards separated by spaces or commas, so ParseCards("As Kd", "2c")
// yields three cards.
func ParseCards(args ...string) ([]Card, error) {
	var cards []Card
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		for _, f := range fields {
			c, err := ParseCard(f)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error.
func MustParseCards(args ...string) []Card {
	cards, err := ParseCards(args...)
	if err != nil {
		panic(err)
	}
	return cards
}

// NewDeck returns the 52 cards in index order.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for i := 0; i < DeckSize; i++ {
		c, _ := CardFromIndex(i)
		cards = append(cards, c)
	}
	return cards
}
