package hand

import (
	"github.com/arcanaland/playdeck/internal/card"
)

// DefaultSuitOrder is the suit order used by Sort
var DefaultSuitOrder = []card.Suit{card.Clubs, card.Diamonds, card.Hearts, card.Spades}

// DefaultRankOrder is the rank order used by Sort. Ace sorts high.
var DefaultRankOrder = []card.Rank{
	card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven, card.Eight,
	card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace,
}

// suitPositions maps each suit of an order to its index. Keys missing from the
// order get len(order) so they sort after every listed key.
func suitPositions(order []card.Suit) ([card.SuitCount + 1]int, error) {
	var pos [card.SuitCount + 1]int
	for i := range pos {
		pos[i] = -1
	}
	for i, s := range order {
		if !s.Valid() {
			return pos, card.NewError(card.ErrInvalidOrder, "invalid suit %d in order", int(s))
		}
		if pos[s] >= 0 {
			return pos, card.NewError(card.ErrInvalidOrder, "suit %s listed twice", s)
		}
		pos[s] = i
	}
	for i := range pos {
		if pos[i] < 0 {
			pos[i] = len(order)
		}
	}
	return pos, nil
}

func rankPositions(order []card.Rank) ([card.RankCount + 1]int, error) {
	var pos [card.RankCount + 1]int
	for i := range pos {
		pos[i] = -1
	}
	for i, r := range order {
		if !r.Valid() {
			return pos, card.NewError(card.ErrInvalidOrder, "invalid rank %d in order", int(r))
		}
		if pos[r] >= 0 {
			return pos, card.NewError(card.ErrInvalidOrder, "rank %s listed twice", r)
		}
		pos[r] = i
	}
	for i := range pos {
		if pos[i] < 0 {
			pos[i] = len(order)
		}
	}
	return pos, nil
}
