package poker

import (
	"errors"
	"fmt"
	"slices"
)

// HandSize is the number of cards Evaluate expects: two hole cards plus five
// community cards.
const HandSize = 7

var (
	// ErrInvalidHandSize is returned when a pool does not hold exactly HandSize cards.
	ErrInvalidHandSize = errors.New("invalid hand size")
	// ErrDuplicateCard is returned when the same rank and suit appear twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Category is the class of a five card poker hand. Higher values are
// stronger hands.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var categoryNames = [...]string{
	HighCard:      "High Card",
	OnePair:       "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Trips",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Quads",
	StraightFlush: "Straight Flush",
}

// Categories lists every category from weakest to strongest.
func Categories() []Category {
	return []Category{HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}
}

// CategoryName returns the label shown to players for c, or "Unknown".
func CategoryName(c Category) string {
	if int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

func (c Category) String() string {
	return CategoryName(c)
}

// Result is the evaluation of a 7-card pool.
//
// Category and Tiebreak are the single-key summary: Tiebreak is the most
// relevant rank of the category (the quad rank, the top of the straight, the
// higher pair, ...). Ranks is the full five-rank key used by Compare to
// separate hands whose Category and Tiebreak agree but whose kickers differ.
// Best holds the five cards that make up the hand, in Ranks order.
type Result struct {
	Category Category
	Tiebreak Rank
	Ranks    [5]Rank
	Best     [5]Card
}

// Name is shorthand for CategoryName(r.Category).
func (r Result) Name() string {
	return CategoryName(r.Category)
}

// Evaluate classifies a pool of exactly seven distinct cards into its best
// five card hand. It has no side effects and is safe for concurrent use.
//
// Returns ErrInvalidHandSize for any other number of cards, ErrDuplicateCard
// if a card repeats and ErrInvalidCard for zero-value cards.
func Evaluate(cards []Card) (Result, error) {
	if len(cards) != HandSize {
		return Result{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}
	var seen [DeckSize]bool
	for i, c := range cards {
		if !c.Valid() {
			return Result{}, fmt.Errorf("%w: zero card at position %d", ErrInvalidCard, i)
		}
		if seen[c.Index()] {
			return Result{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c.Index()] = true
	}
	return evaluate(cards), nil
}

// Compare orders two results: it returns -1 if a is weaker than b, +1 if a is
// stronger and 0 if the hands tie.
func Compare(a, b Result) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	for i := range a.Ranks {
		if a.Ranks[i] != b.Ranks[i] {
			if a.Ranks[i] < b.Ranks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

type rankGroup struct {
	rank  Rank
	count int
}

// evaluate assumes a validated pool.
func evaluate(cards []Card) Result {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b Card) int {
		if a.rank != b.rank {
			return int(b.rank) - int(a.rank)
		}
		return int(a.suit) - int(b.suit)
	})

	var counts [NumRanks]int
	var bySuit [NumSuits][]Card
	for _, c := range sorted {
		counts[c.rank]++
		bySuit[c.suit] = append(bySuit[c.suit], c)
	}

	var flushCards []Card
	for _, s := range bySuit {
		if len(s) >= 5 {
			flushCards = s
			break
		}
	}

	if flushCards != nil {
		if high, ok := straightHigh(flushCards); ok {
			return finish(StraightFlush, high, straightRanks(high), flushCards)
		}
	}

	groups := make([]rankGroup, 0, NumRanks)
	for r := int(Ace); r >= int(Two); r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: Rank(r), count: counts[r]})
		}
	}
	// stable keeps the descending rank order within equal counts
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})

	top := groups[0]
	switch {
	case top.count == 4:
		return finish(FourOfAKind, top.rank, ranksOf(groups, top), sorted)
	case top.count == 3:
		if pair, ok := bestPairBelow(groups[1:]); ok {
			ranks := [5]Rank{top.rank, top.rank, top.rank, pair, pair}
			return finish(FullHouse, top.rank, ranks, sorted)
		}
	}

	if flushCards != nil {
		var ranks [5]Rank
		for i := range ranks {
			ranks[i] = flushCards[i].rank
		}
		return finish(Flush, ranks[0], ranks, flushCards)
	}

	if high, ok := straightHigh(sorted); ok {
		return finish(Straight, high, straightRanks(high), sorted)
	}

	switch {
	case top.count == 3:
		return finish(ThreeOfAKind, top.rank, ranksOf(groups, top), sorted)
	case top.count == 2 && groups[1].count == 2:
		return finish(TwoPair, top.rank, ranksOf(groups, top, groups[1]), sorted)
	case top.count == 2:
		return finish(OnePair, top.rank, ranksOf(groups, top), sorted)
	}
	return finish(HighCard, top.rank, ranksOf(groups), sorted)
}

// bestPairBelow returns the highest rank with at least two cards among the
// remaining groups. A second set of trips counts as the pair.
func bestPairBelow(groups []rankGroup) (Rank, bool) {
	best, found := Two, false
	for _, g := range groups {
		if g.count >= 2 && (!found || g.rank > best) {
			best, found = g.rank, true
		}
	}
	return best, found
}

// ranksOf lays out the made groups first, repeated by count, then fills the
// remaining slots with the highest other ranks as kickers.
func ranksOf(groups []rankGroup, made ...rankGroup) [5]Rank {
	var ranks [5]Rank
	n := 0
	used := map[Rank]bool{}
	for _, g := range made {
		for i := 0; i < g.count && n < 5; i++ {
			ranks[n] = g.rank
			n++
		}
		used[g.rank] = true
	}
	kickers := make([]Rank, 0, len(groups))
	for _, g := range groups {
		if !used[g.rank] {
			kickers = append(kickers, g.rank)
		}
	}
	slices.SortFunc(kickers, func(a, b Rank) int { return int(b) - int(a) })
	for _, k := range kickers {
		if n == 5 {
			break
		}
		ranks[n] = k
		n++
	}
	return ranks
}

// straightHigh looks for five consecutive distinct ranks in cards. The ace
// also plays low, so A-2-3-4-5 is a straight whose high card is Five.
func straightHigh(cards []Card) (Rank, bool) {
	var mask uint16
	for _, c := range cards {
		mask |= 1 << c.rank
	}
	const run = 0b11111
	for high := int(Ace); high >= int(Six); high-- {
		want := uint16(run) << (high - 4)
		if mask&want == want {
			return Rank(high), true
		}
	}
	wheel := uint16(1)<<Ace | 0b1111
	if mask&wheel == wheel {
		return Five, true
	}
	return 0, false
}

func straightRanks(high Rank) [5]Rank {
	if high == Five {
		return [5]Rank{Five, Four, Three, Two, Ace}
	}
	return [5]Rank{high, high - 1, high - 2, high - 3, high - 4}
}

// finish picks the concrete cards for ranks out of pool, which must be
// sorted so the first match per rank is deterministic.
func finish(cat Category, tiebreak Rank, ranks [5]Rank, pool []Card) Result {
	res := Result{Category: cat, Tiebreak: tiebreak, Ranks: ranks}
	used := make([]bool, len(pool))
	for i, r := range ranks {
		for j, c := range pool {
			if !used[j] && c.rank == r {
				used[j] = true
				res.Best[i] = c
				break
			}
		}
	}
	return res
}
