package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit identifies one of the four suits, numbered 1 to 4
type Suit int

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Rank identifies one of the thirteen ranks, numbered 1 (Ace) to 13 (King)
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

const (
	// SuitCount is the number of suits in a standard deck
	SuitCount = 4
	// RankCount is the number of ranks per suit
	RankCount = 13
	// DeckSize is the number of distinct cards
	DeckSize = SuitCount * RankCount
)

var (
	suitNames = [...]string{"", "clubs", "diamonds", "hearts", "spades"}
	suitIcons = [...]string{"", "♣", "♦", "♥", "♠"}
	// Row of the Unicode playing cards block for each suit, before the *16 shift
	suitGlyphBases = [...]rune{0, 0x1F0D, 0x1F0C, 0x1F0B, 0x1F0A}

	rankSymbols = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	rankNames   = [...]string{"", "ace", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "jack", "queen", "king"}
)

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// String returns the lowercase suit name, e.g. "clubs"
func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Icon returns the suit glyph, e.g. "♣"
func (s Suit) Icon() string {
	if !s.Valid() {
		return "?"
	}
	return suitIcons[s]
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the short rank symbol, e.g. "A" or "10"
func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankSymbols[r]
}

// Name returns the lowercase rank word, e.g. "queen"
func (r Rank) Name() string {
	if !r.Valid() {
		return ""
	}
	return rankNames[r]
}

// Card is one of the 52 cards of a standard deck. Every field is derived from
// the (Suit, Rank) pair when the card is built with New.
type Card struct {
	Suit       Suit
	Rank       Rank
	SuitName   string // "clubs"
	RankSymbol string // "A", "2", ..., "10", "J", "Q", "K"
	RankName   string // "ace", "two", ..., "king"
	FullName   string // "ace of clubs"
	SuitIcon   string // "♣"
	Glyph      string // single playing card codepoint, e.g. "🃑"
	Symbol     string // SuitIcon + RankSymbol, e.g. "♣A"
}

// New builds the card for the given suit and rank
func New(s Suit, r Rank) (Card, error) {
	if !s.Valid() || !r.Valid() {
		return Card{}, NewError(ErrInvalidCardIdentity,
			"suit %d and rank %d do not identify a card", int(s), int(r))
	}

	c := Card{
		Suit:       s,
		Rank:       r,
		SuitName:   suitNames[s],
		RankSymbol: rankSymbols[r],
		RankName:   rankNames[r],
		SuitIcon:   suitIcons[s],
		Glyph:      string(glyph(s, r)),
	}
	c.FullName = c.RankName + " of " + c.SuitName
	c.Symbol = c.SuitIcon + c.RankSymbol

	return c, nil
}

// MustNew is like New but panics on an invalid pair. It is meant for literals.
func MustNew(s Suit, r Rank) Card {
	c, err := New(s, r)
	if err != nil {
		panic(err)
	}
	return c
}

// glyph returns the codepoint in the U+1F0A0 block for the card. The block has
// a Knight at offset 0xC, so Queen and King are shifted by one.
func glyph(s Suit, r Rank) rune {
	offset := rune(r)
	switch r {
	case Queen:
		offset = 0xD
	case King:
		offset = 0xE
	}
	return suitGlyphBases[s]*16 + offset
}

// Index returns the position of the card in suit-major, rank-minor order (0..51)
func (c Card) Index() int {
	return (int(c.Suit)-1)*RankCount + int(c.Rank) - 1
}

// String returns the card symbol
func (c Card) String() string {
	return c.Symbol
}

// Field returns the display form f of the card
func (c Card) Field(f Form) (string, error) {
	switch f {
	case FormSymbol:
		return c.Symbol, nil
	case FormSuitIndex:
		return strconv.Itoa(int(c.Suit)), nil
	case FormRankIndex:
		return strconv.Itoa(int(c.Rank)), nil
	case FormSuitName:
		return c.SuitName, nil
	case FormRankSymbol:
		return c.RankSymbol, nil
	case FormRankName:
		return c.RankName, nil
	case FormFullName:
		return c.FullName, nil
	case FormSuitIcon:
		return c.SuitIcon, nil
	case FormGlyph:
		return c.Glyph, nil
	}
	return "", NewError(ErrInvalidForm, "unknown display form %q", string(f))
}

// ParseSuit accepts a suit name ("hearts"), its singular, initial letter or icon ("♥")
func ParseSuit(s string) (Suit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i := Clubs; i <= Spades; i++ {
		name := suitNames[i]
		if key == name || key == strings.TrimSuffix(name, "s") || key == name[:1] || key == suitIcons[i] {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && Suit(n).Valid() {
		return Suit(n), nil
	}
	return 0, NewError(ErrInvalidCardIdentity, "unknown suit %q", s)
}

// ParseRank accepts a rank symbol ("Q", "10") or word ("queen")
func ParseRank(s string) (Rank, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i := Ace; i <= King; i++ {
		if key == strings.ToLower(rankSymbols[i]) || key == rankNames[i] {
			return i, nil
		}
	}
	switch key {
	case "1":
		return Ace, nil
	case "t":
		return Ten, nil
	}
	return 0, NewError(ErrInvalidCardIdentity, "unknown rank %q", s)
}

// Parse reads a card written as its symbol ("♠10"), as suit letter and rank
// ("s10", "hQ") or as a full name ("queen of hearts")
func Parse(s string) (Card, error) {
	text := strings.TrimSpace(s)
	if rank, suit, ok := strings.Cut(strings.ToLower(text), " of "); ok {
		r, err := ParseRank(rank)
		if err != nil {
			return Card{}, err
		}
		st, err := ParseSuit(suit)
		if err != nil {
			return Card{}, err
		}
		return New(st, r)
	}

	for i := Clubs; i <= Spades; i++ {
		for _, prefix := range []string{suitIcons[i], suitNames[i][:1], strings.ToUpper(suitNames[i][:1])} {
			if rest, ok := strings.CutPrefix(text, prefix); ok {
				r, err := ParseRank(rest)
				if err != nil {
					return Card{}, err
				}
				return New(i, r)
			}
		}
	}
	return Card{}, NewError(ErrInvalidCardIdentity, "cannot parse card %q", s)
}
