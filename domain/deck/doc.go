// Package deck provides a shuffled stack of card indices.
//
// The deck knows nothing about ranks or suits: it hands out integers in
// 0..DeckSize-1 and the poker package turns them into cards. Shuffles are
// driven by the kyber Ed25519 random stream, or by a caller supplied reader
// when a reproducible order is needed.
package deck
