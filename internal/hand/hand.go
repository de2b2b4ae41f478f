package hand

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/arcanaland/playdeck/internal/card"
	"github.com/arcanaland/playdeck/internal/deck"
)

// symbolWidth is the column width of each card when a hand is shown as symbols
const symbolWidth = 6

// Hand is an ordered sequence of cards dealt from a deck. It only shrinks.
//
// A Hand is not safe for concurrent use.
type Hand struct {
	cards []card.Card
	rng   *rand.Rand
}

// Option configures a Hand
type Option func(*Hand)

// WithRand sets the random source used by Rand
func WithRand(r *rand.Rand) Option {
	return func(h *Hand) {
		if r != nil {
			h.rng = r
		}
	}
}

// New deals n cards from d into a new hand
func New(d *deck.Deck, n int, opts ...Option) (*Hand, error) {
	if d == nil {
		return nil, card.NewError(card.ErrInsufficientCards, "no deck to deal from")
	}

	cards, err := d.Deal(n)
	if err != nil {
		return nil, fmt.Errorf("dealing hand: %w", err)
	}

	h := &Hand{cards: cards}
	for _, opt := range opts {
		opt(h)
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return h, nil
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in hand order
func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

// Show renders the card at the 1-based position as its symbol. Position 0
// renders the whole hand in the given form: symbols are padded to a fixed
// column width, every other form is followed by a single space.
func (h *Hand) Show(position int, form card.Form) (string, error) {
	if position != 0 {
		if err := h.checkPosition(position); err != nil {
			return "", err
		}
		return h.cards[position-1].Symbol, nil
	}

	if form == "" {
		form = card.FormSymbol
	}

	var sb strings.Builder
	for _, c := range h.cards {
		text, err := c.Field(form)
		if err != nil {
			return "", err
		}
		if form == card.FormSymbol {
			fmt.Fprintf(&sb, "%-*s", symbolWidth, text)
		} else {
			sb.WriteString(text)
			sb.WriteByte(' ')
		}
	}
	return sb.String(), nil
}

// Pick removes and returns the card at the 1-based position. Later cards move
// up by one.
func (h *Hand) Pick(position int) (card.Card, error) {
	if err := h.checkPosition(position); err != nil {
		return card.Card{}, err
	}
	picked := h.cards[position-1]
	h.cards = slices.Delete(h.cards, position-1, position)
	return picked, nil
}

// Rand removes and returns a card chosen uniformly at random
func (h *Hand) Rand() (card.Card, error) {
	if len(h.cards) == 0 {
		return card.Card{}, card.NewError(card.ErrPositionOutOfRange, "hand is empty")
	}
	return h.Pick(h.rng.IntN(len(h.cards)) + 1)
}

// Sort orders the hand by suit, then by rank, using DefaultSuitOrder and
// DefaultRankOrder
func (h *Hand) Sort() {
	// The default orders are complete and duplicate free
	_ = h.SortBy(DefaultRankOrder, DefaultSuitOrder)
}

// SortBy orders the hand by suit following suitOrder, then by rank following
// rankOrder. A nil order falls back to the default. Keys absent from a
// partial order sort after the listed ones. The sort is stable.
func (h *Hand) SortBy(rankOrder []card.Rank, suitOrder []card.Suit) error {
	if rankOrder == nil {
		rankOrder = DefaultRankOrder
	}
	if suitOrder == nil {
		suitOrder = DefaultSuitOrder
	}

	rankPos, err := rankPositions(rankOrder)
	if err != nil {
		return err
	}
	suitPos, err := suitPositions(suitOrder)
	if err != nil {
		return err
	}

	slices.SortStableFunc(h.cards, func(a, b card.Card) int {
		if c := cmp.Compare(suitPos[a.Suit], suitPos[b.Suit]); c != 0 {
			return c
		}
		return cmp.Compare(rankPos[a.Rank], rankPos[b.Rank])
	})
	return nil
}

func (h *Hand) checkPosition(position int) error {
	if position < 1 || position > len(h.cards) {
		return card.NewError(card.ErrPositionOutOfRange,
			"position %d out of range, hand has %d cards", position, len(h.cards))
	}
	return nil
}
