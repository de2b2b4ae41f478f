package hand

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/arcanaland/playdeck/internal/card"
	"github.com/arcanaland/playdeck/internal/deck"
	"github.com/stretchr/testify/suite"
)

type HandTestSuite struct {
	suite.Suite
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

// handOf builds a hand holding exactly the given cards
func handOf(cards ...card.Card) *Hand {
	return &Hand{cards: slices.Clone(cards), rng: rand.New(rand.NewPCG(1, 2))}
}

func (s *HandTestSuite) TestNew() {
	d := deck.New(deck.WithSeed(5))

	h, err := New(d, 7)
	s.Require().NoError(err)
	s.Equal(7, h.Count())
	s.Equal(card.DeckSize-7, d.Count())

	for _, c := range h.Cards() {
		s.False(d.Contains(c.Suit, c.Rank), "card %s is in both hand and deck", c)
	}
}

func (s *HandTestSuite) TestNew_TwoHandsDisjoint() {
	d := deck.New(deck.WithSeed(9))

	a, err := New(d, 26)
	s.Require().NoError(err)
	b, err := New(d, 26)
	s.Require().NoError(err)
	s.Zero(d.Count())

	seen := make(map[string]bool)
	for _, c := range append(a.Cards(), b.Cards()...) {
		s.False(seen[c.Symbol], "card %s dealt to two hands", c)
		seen[c.Symbol] = true
	}
	s.Len(seen, card.DeckSize)
}

func (s *HandTestSuite) TestNew_InsufficientCards() {
	d := deck.New()
	_, err := d.Deal(50)
	s.Require().NoError(err)

	h, err := New(d, 3)
	s.Nil(h)
	s.True(card.IsError(err, card.ErrInsufficientCards))
	s.Equal(2, d.Count())

	_, err = New(nil, 1)
	s.Error(err)
}

func (s *HandTestSuite) TestShow() {
	h := handOf(card.MustNew(card.Spades, card.Ace), card.MustNew(card.Clubs, card.Ten))

	testCases := []struct {
		name     string
		position int
		form     card.Form
		expected string
	}{
		{name: "Default form", form: "", expected: "♠A    ♣10   "},
		{name: "Symbol form", form: card.FormSymbol, expected: "♠A    ♣10   "},
		{name: "Rank names", form: card.FormRankName, expected: "ace ten "},
		{name: "Full names", form: card.FormFullName, expected: "ace of spades ten of clubs "},
		{name: "Suit icons", form: card.FormSuitIcon, expected: "♠ ♣ "},
		{name: "Single card", position: 2, form: card.FormFullName, expected: "♣10"},
		{name: "First card", position: 1, expected: "♠A"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := h.Show(tc.position, tc.form)
			s.Require().NoError(err)
			s.Equal(tc.expected, got)
		})
	}
}

func (s *HandTestSuite) TestShow_Errors() {
	h := handOf(card.MustNew(card.Hearts, card.Two))

	for _, position := range []int{-1, 2, 10} {
		_, err := h.Show(position, card.FormSymbol)
		s.True(card.IsError(err, card.ErrPositionOutOfRange), "position %d", position)
	}

	_, err := h.Show(0, "colour")
	s.True(card.IsError(err, card.ErrInvalidForm))

	got, err := handOf().Show(0, card.FormSymbol)
	s.NoError(err)
	s.Empty(got)
}

func (s *HandTestSuite) TestPick() {
	first := card.MustNew(card.Hearts, card.King)
	second := card.MustNew(card.Clubs, card.Two)
	third := card.MustNew(card.Clubs, card.Ace)
	h := handOf(first, second, third)

	picked, err := h.Pick(1)
	s.Require().NoError(err)
	s.Equal(first, picked)
	s.Equal(2, h.Count())

	picked, err = h.Pick(1)
	s.Require().NoError(err)
	s.Equal(second, picked)
	s.Equal([]card.Card{third}, h.Cards())
}

func (s *HandTestSuite) TestPick_OutOfRange() {
	h := handOf(card.MustNew(card.Hearts, card.King), card.MustNew(card.Clubs, card.Two))

	for _, position := range []int{0, -3, 3} {
		_, err := h.Pick(position)
		s.True(card.IsError(err, card.ErrPositionOutOfRange), "position %d", position)
	}
	s.Equal(2, h.Count())

	_, err := h.Pick(2)
	s.NoError(err)
	_, err = h.Pick(2)
	s.True(card.IsError(err, card.ErrPositionOutOfRange))
}

func (s *HandTestSuite) TestRand() {
	d := deck.New(deck.WithSeed(4))
	h, err := New(d, 5, WithRand(rand.New(rand.NewPCG(3, 4))))
	s.Require().NoError(err)
	before := h.Cards()

	picked := make([]card.Card, 0, 5)
	for h.Count() > 0 {
		c, err := h.Rand()
		s.Require().NoError(err)
		picked = append(picked, c)
	}
	s.ElementsMatch(before, picked)

	_, err = h.Rand()
	s.True(card.IsError(err, card.ErrPositionOutOfRange))
}

func (s *HandTestSuite) TestRand_Uniform() {
	counts := make([]int, 4)
	rng := rand.New(rand.NewPCG(8, 8))
	for i := 0; i < 4000; i++ {
		h := handOf(
			card.MustNew(card.Clubs, card.Two),
			card.MustNew(card.Clubs, card.Three),
			card.MustNew(card.Clubs, card.Four),
			card.MustNew(card.Clubs, card.Five),
		)
		h.rng = rng
		c, err := h.Rand()
		s.Require().NoError(err)
		counts[int(c.Rank)-2]++
	}
	for _, n := range counts {
		s.InDelta(1000, n, 150)
	}
}

func (s *HandTestSuite) TestSort() {
	h := handOf(
		card.MustNew(card.Hearts, card.King),
		card.MustNew(card.Clubs, card.Two),
		card.MustNew(card.Clubs, card.Ace),
	)

	h.Sort()

	s.Equal([]card.Card{
		card.MustNew(card.Clubs, card.Two),
		card.MustNew(card.Clubs, card.Ace),
		card.MustNew(card.Hearts, card.King),
	}, h.Cards())
}

func (s *HandTestSuite) TestSort_FullDeck() {
	h, err := New(deck.New(deck.WithSeed(11)), card.DeckSize)
	s.Require().NoError(err)

	h.Sort()
	sorted := h.Cards()

	got, err := h.Show(0, card.FormSymbol)
	s.Require().NoError(err)
	s.Equal("♣2    ", got[:len("♣2    ")])

	s.Equal(card.MustNew(card.Clubs, card.Ace), sorted[12])
	s.Equal(card.MustNew(card.Diamonds, card.Two), sorted[13])
	s.Equal(card.MustNew(card.Spades, card.Ace), sorted[51])

	h.Sort()
	s.Equal(sorted, h.Cards(), "sorting twice should not change the order")
}

func (s *HandTestSuite) TestSortBy() {
	h := handOf(
		card.MustNew(card.Clubs, card.Ace),
		card.MustNew(card.Spades, card.Two),
		card.MustNew(card.Clubs, card.Two),
		card.MustNew(card.Hearts, card.Queen),
	)

	// Ace low, spades first
	err := h.SortBy(
		[]card.Rank{card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
			card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King},
		[]card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs},
	)
	s.Require().NoError(err)

	got, err := h.Show(0, card.FormSymbol)
	s.Require().NoError(err)
	s.Equal("♠2    ♥Q    ♣A    ♣2    ", got)
}

func (s *HandTestSuite) TestSortBy_PartialOrder() {
	h := handOf(
		card.MustNew(card.Diamonds, card.Five),
		card.MustNew(card.Hearts, card.Five),
		card.MustNew(card.Hearts, card.Three),
	)

	// Only hearts listed: diamonds sorts after, ranks keep the default order
	s.Require().NoError(h.SortBy(nil, []card.Suit{card.Hearts}))

	got, err := h.Show(0, card.FormSymbol)
	s.Require().NoError(err)
	s.Equal("♥3    ♥5    ♦5    ", got)
}

func (s *HandTestSuite) TestSortBy_InvalidOrder() {
	original := []card.Card{card.MustNew(card.Hearts, card.Five), card.MustNew(card.Clubs, card.Three)}
	h := handOf(original...)

	err := h.SortBy([]card.Rank{card.Two, card.Two}, nil)
	s.True(card.IsError(err, card.ErrInvalidOrder))

	err = h.SortBy(nil, []card.Suit{card.Clubs, 7})
	s.True(card.IsError(err, card.ErrInvalidOrder))

	s.Equal(original, h.Cards(), "a rejected order should leave the hand unchanged")
}
