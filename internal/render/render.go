package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/playdeck/internal/card"
	"github.com/arcanaland/playdeck/internal/deck"
)

// defaultWidth is used when the output is not a terminal
const defaultWidth = 80

// Renderer prints cards to a terminal
type Renderer struct {
	out   io.Writer
	color bool
	width int
}

// Option configures a Renderer
type Option func(*Renderer)

// WithColor forces colour on or off regardless of the output
func WithColor(on bool) Option {
	return func(r *Renderer) {
		r.color = on
	}
}

// WithWidth sets the line width used for wrapping
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// New returns a Renderer writing to out. Colour is on and the width is taken
// from the terminal when out is a terminal.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out, width: defaultWidth}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.color = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			r.width = width
		}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Color reports whether output is coloured
func (r *Renderer) Color() bool {
	return r.color
}

func (r *Renderer) paint(s string, attrs ...colorize.Attribute) string {
	c := colorize.New(attrs...)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// Label formats a field label
func (r *Renderer) Label(s string) string {
	return r.paint(s, colorize.FgCyan)
}

// Value formats a field value
func (r *Renderer) Value(s string) string {
	return r.paint(s, colorize.FgHiWhite)
}

// Warning formats a warning line
func (r *Renderer) Warning(s string) string {
	return r.paint(s, colorize.FgYellow)
}

// Failure formats an error line
func (r *Renderer) Failure(s string) string {
	return r.paint(s, colorize.FgRed)
}

// suited colours text in the colour of the suit
func (r *Renderer) suited(s card.Suit, text string) string {
	if s.Red() {
		return r.paint(text, colorize.FgRed)
	}
	return r.paint(text, colorize.FgHiWhite)
}

// Cards prints cards in the given form, laid out like Hand.Show and wrapped
// to the renderer width
func (r *Renderer) Cards(cards []card.Card, form card.Form) error {
	if form == "" {
		form = card.FormSymbol
	}

	cells := make([]string, 0, len(cards))
	for _, c := range cards {
		text, err := c.Field(form)
		if err != nil {
			return err
		}
		if form == card.FormSymbol {
			text = fmt.Sprintf("%-6s", text)
		} else {
			text += " "
		}
		cells = append(cells, text)
	}

	for _, line := range wrapCells(cells, r.width) {
		var sb strings.Builder
		for _, i := range line {
			sb.WriteString(r.suited(cards[i].Suit, cells[i]))
		}
		fmt.Fprintln(r.out, strings.TrimRight(sb.String(), " "))
	}
	return nil
}

// Deck prints the cards left in d, one line per suit
func (r *Renderer) Deck(d *deck.Deck) {
	lines := make([][]string, card.SuitCount)
	for _, c := range d.Remaining() {
		lines[c.Suit-1] = append(lines[c.Suit-1], r.suited(c.Suit, c.Symbol))
	}

	for i, line := range lines {
		s := card.Suit(i + 1)
		fmt.Fprintf(r.out, "%s %s\n", r.Label(fmt.Sprintf("%-9s", s.String()+":")), strings.Join(line, " "))
	}
	fmt.Fprintf(r.out, "%s %s\n", r.Label("Remaining:"), r.Value(fmt.Sprint(d.Count())))
}

// Card prints the card face next to every display form of the card
func (r *Renderer) Card(c card.Card) {
	face := r.Face(c)

	info := make([]string, 0, len(card.Forms))
	for _, f := range card.Forms {
		text, _ := c.Field(f)
		info = append(info, r.Label(fmt.Sprintf("%-20s", string(f)+":"))+r.Value(text))
	}

	fmt.Fprintln(r.out)
	for i := 0; i < max(len(face), len(info)); i++ {
		fmt.Fprint(r.out, "  ")
		if i < len(face) {
			fmt.Fprint(r.out, face[i])
		} else {
			fmt.Fprint(r.out, strings.Repeat(" ", faceWidth))
		}
		fmt.Fprint(r.out, "    ")
		if i < len(info) {
			fmt.Fprint(r.out, info[i])
		}
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)
}

// wrapCells groups cell indexes into lines no wider than width
func wrapCells(cells []string, width int) [][]int {
	var lines [][]int
	var current []int
	used := 0

	for i, cell := range cells {
		w := utf8.RuneCountInString(cell)
		if len(current) > 0 && used+w > width {
			lines = append(lines, current)
			current = nil
			used = 0
		}
		current = append(current, i)
		used += w
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
