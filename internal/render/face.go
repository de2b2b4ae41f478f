package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/playdeck/internal/card"
)

const (
	faceInner = 7
	faceWidth = faceInner + 2
)

// Four-colour deck palette
var suitPalette = map[card.Suit]string{
	card.Clubs:    "#2e7d32",
	card.Diamonds: "#1565c0",
	card.Hearts:   "#c62828",
	card.Spades:   "#212121",
}

var faceText = colorful.Color{R: 1, G: 1, B: 1}

func suitColor(s card.Suit) colorful.Color {
	c, err := colorful.Hex(suitPalette[s])
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// Face draws the card as a small framed box. With colour on, the inside is
// shaded from the suit colour at the top to a darker blend at the bottom.
func (r *Renderer) Face(c card.Card) []string {
	pad := strings.Repeat(" ", faceInner-len(c.RankSymbol))
	blank := strings.Repeat(" ", faceInner)
	rows := []string{
		c.RankSymbol + pad,
		blank,
		"   " + c.SuitIcon + "   ",
		blank,
		pad + c.RankSymbol,
	}

	base := suitColor(c.Suit)
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "┌"+strings.Repeat("─", faceInner)+"┐")
	for i, row := range rows {
		if r.color {
			bg := base
			if i > 0 {
				t := float64(i) / float64(len(rows)-1)
				bg = base.BlendLab(colorful.Color{}, 0.45*t).Clamped()
			}
			row = truecolor(row, faceText, bg)
		}
		lines = append(lines, "│"+row+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", faceInner)+"┘")

	return lines
}

// truecolor wraps text in 24-bit foreground and background escape codes
func truecolor(text string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m",
		r1, g1, b1, r2, g2, b2, text)
}
