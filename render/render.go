package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ardnew/diced/dice"
	"github.com/ardnew/diced/roll"
)

// Options control the result line.
type Options struct {
	// Color highlights values at or below 1 and at or above the die size.
	Color bool
	// Sum appends the total of the roll. It takes precedence over Count.
	Sum bool
	// Count appends the number of critical successes and failures.
	Count bool
}

// Printer writes formatted results to an output stream.
type Printer struct {
	w    io.Writer
	opts Options

	low  lipgloss.Style
	high lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	// Colors are forced, so highlights survive pipes and buffers.
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)

	return &Printer{
		w:    w,
		opts: opts,
		low:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		high: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

// Options returns the options of p.
func (p *Printer) Options() Options { return p.opts }

// Header returns the header line of d, such as "2d6 +1:".
func Header(d dice.Die) string {
	if d.Modifier == 0 {
		return fmt.Sprintf("%dd%d:", d.Quantity, d.Size)
	}

	return fmt.Sprintf("%dd%d %s:", d.Quantity, d.Size, d.ModifierString())
}

// Fumble returns the message written when dice roll off the table.
func Fumble(d dice.Die) string {
	noun := "dice"
	if d.Quantity == 1 {
		noun = "die"
	}

	return "Your " + noun + " rolled off the table. Doesn't count!"
}

// Line returns the result line of r, without trailing newline.
func (p *Printer) Line(r roll.Result) string {
	var sb strings.Builder

	sb.WriteString("=> (")

	// Highlight bound is compared in 16-bit signed arithmetic, like the values.
	high := int16(r.Die.Size)

	for i, v := range r.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(p.value(v, high))
	}

	sb.WriteByte(')')

	switch {
	case p.opts.Sum:
		fmt.Fprintf(&sb, ": [%d]", r.Sum())
	case p.opts.Count:
		fmt.Fprintf(&sb, ": [crit successes: %d, crit failures: %d]",
			r.CritSuccesses(), r.CritFailures())
	}

	return sb.String()
}

func (p *Printer) value(v, high int16) string {
	s := strconv.Itoa(int(v))

	if !p.opts.Color {
		return s
	}

	switch {
	case v <= 1:
		return p.low.Render(s)
	case v >= high:
		return p.high.Render(s)
	default:
		return s
	}
}

// Result writes the header and result line of r.
func (p *Printer) Result(r roll.Result) error {
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", Header(r.Die), p.Line(r))

	return err
}

// Throw writes the first result of t and, if it rolled off the table, the
// fumble message followed by the reroll.
func (p *Printer) Throw(t roll.Throw) error {
	if err := p.Result(t.First); err != nil {
		return err
	}

	if !t.Fumbled() {
		return nil
	}

	if _, err := fmt.Fprintln(p.w, Fumble(t.First.Die)); err != nil {
		return err
	}

	return p.Result(*t.Reroll)
}

// Throws writes each throw in order, stopping at the first write error.
func (p *Printer) Throws(ts []roll.Throw) error {
	for _, t := range ts {
		if err := p.Throw(t); err != nil {
			return err
		}
	}

	return nil
}
