// Package poker implements the Texas Hold'em domain logic for the casino
// tables: cards, 7-card hand evaluation, pot construction and showdown.
//
// # Core Types
//
// Card: An immutable playing card with a Rank (Two..Ace) and a Suit.
//
// Result: The evaluation of a 7-card pool. Category and Tiebreak give the
// single-key summary shown to players; Ranks is the full key that Compare
// uses to settle kickers.
//
// Seat and Pot: The table state at showdown, as contributions, hole cards
// and fold flags.
//
// # Hand Evaluation
//
// Evaluate takes exactly seven distinct cards and returns the strongest five
// card hand. Straights treat the ace as high or low; a wheel (A-2-3-4-5) is a
// five-high straight. Invalid pools are rejected with ErrInvalidHandSize,
// ErrDuplicateCard or ErrInvalidCard rather than producing a best-effort
// answer. Evaluation is a pure function and may be called from any goroutine.
//
// # Showdown
//
// Showdown builds the main and side pots from contributions and awards each
// one to the best eligible hands, splitting ties.
package poker
