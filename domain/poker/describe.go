package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns a long form description of the best hand in a 7-card
// pool, for example "full house, nines full of sevens". The pool is
// validated the same way Evaluate does.
func Describe(cards []Card) (string, error) {
	if _, err := Evaluate(cards); err != nil {
		return "", err
	}
	hand, err := toReference(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand[:])
}

func toReference(cards []Card) ([HandSize]poker.Card, error) {
	var hand [HandSize]poker.Card
	for i, c := range cards {
		pc, err := poker.MakeCard(referenceSuit(c.suit), referenceRank(c.rank))
		if err != nil {
			return hand, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		hand[i] = pc
	}
	return hand, nil
}

// The reference library numbers ranks 1-13 with the ace low.
func referenceRank(r Rank) poker.Rank {
	if r == Ace {
		return poker.Rank(1)
	}
	return poker.Rank(int(r) + 2)
}

func referenceSuit(s Suit) poker.Suit {
	switch s {
	case Club:
		return poker.Club
	case Diamond:
		return poker.Diamond
	case Heart:
		return poker.Heart
	default:
		return poker.Spade
	}
}
