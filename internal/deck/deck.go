package deck

import (
	"math/rand/v2"
	"strings"

	"github.com/arcanaland/playdeck/internal/card"
)

// Deck holds the cards that have not been dealt yet. Cards live in fixed
// slots indexed by card.Index, so presence checks are O(1).
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards   [card.DeckSize]card.Card
	present [card.DeckSize]bool
	count   int
	rng     *rand.Rand
}

// Option configures a Deck
type Option func(*Deck)

// WithRand sets the random source used by Deal
func WithRand(r *rand.Rand) Option {
	return func(d *Deck) {
		if r != nil {
			d.rng = r
		}
	}
}

// WithSeed makes dealing reproducible
func WithSeed(seed uint64) Option {
	return func(d *Deck) {
		d.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New returns a full 52-card deck
func New(opts ...Option) *Deck {
	d := &Deck{}

	for s := card.Clubs; s <= card.Spades; s++ {
		for r := card.Ace; r <= card.King; r++ {
			c := card.MustNew(s, r)
			d.cards[c.Index()] = c
			d.present[c.Index()] = true
		}
	}
	d.count = card.DeckSize

	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return d
}

// Count returns the number of cards left in the deck
func (d *Deck) Count() int {
	return d.count
}

// Contains reports whether the card identified by s and r is still in the deck
func (d *Deck) Contains(s card.Suit, r card.Rank) bool {
	if !s.Valid() || !r.Valid() {
		return false
	}
	return d.present[slot(s, r)]
}

// Remaining returns the cards left in the deck in suit-major, rank-minor order
func (d *Deck) Remaining() []card.Card {
	out := make([]card.Card, 0, d.count)
	for i, ok := range d.present {
		if ok {
			out = append(out, d.cards[i])
		}
	}
	return out
}

// Deal removes n distinct cards chosen uniformly at random and returns them in
// the order they were drawn. On error the deck is left untouched.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, card.NewError(card.ErrInvalidCount, "cannot deal %d cards", n)
	}
	if n > d.count {
		return nil, card.NewError(card.ErrInsufficientCards,
			"cannot deal %d cards, %d remaining", n, d.count)
	}

	// Rejection sampling over all 52 slots: a draw that hits a card already
	// gone, or already drawn in this call, is discarded.
	var drawn [card.DeckSize]bool
	dealt := make([]card.Card, 0, n)
	for len(dealt) < n {
		i := d.rng.IntN(card.DeckSize)
		if !d.present[i] || drawn[i] {
			continue
		}
		drawn[i] = true
		dealt = append(dealt, d.cards[i])
	}

	for _, c := range dealt {
		d.present[c.Index()] = false
	}
	d.count -= n

	return dealt, nil
}

// Show renders the remaining cards, one line per suit, symbols separated by a space
func (d *Deck) Show() string {
	var sb strings.Builder
	for s := card.Clubs; s <= card.Spades; s++ {
		first := true
		for r := card.Ace; r <= card.King; r++ {
			i := slot(s, r)
			if !d.present[i] {
				continue
			}
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString(d.cards[i].Symbol)
			first = false
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func slot(s card.Suit, r card.Rank) int {
	return (int(s)-1)*card.RankCount + int(r) - 1
}
