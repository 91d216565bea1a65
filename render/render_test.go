package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/diced/dice"
	"github.com/ardnew/diced/render"
	"github.com/ardnew/diced/roll"
)

func result(q, s uint16, m int16, rolls ...uint16) roll.Result {
	return roll.Result{Die: dice.Die{Quantity: q, Size: s, Modifier: m}, Rolls: rolls}
}

func TestHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1d20:", render.Header(dice.Die{Quantity: 1, Size: 20}))
	assert.Equal(t, "2d6 +1:", render.Header(dice.Die{Quantity: 2, Size: 6, Modifier: 1}))
	assert.Equal(t, "3d8 -2:", render.Header(dice.Die{Quantity: 3, Size: 8, Modifier: -2}))
}

func TestFumble(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Your die rolled off the table. Doesn't count!",
		render.Fumble(dice.Die{Quantity: 1, Size: 20}))
	assert.Equal(t, "Your dice rolled off the table. Doesn't count!",
		render.Fumble(dice.Die{Quantity: 2, Size: 20}))
	assert.Equal(t, "Your dice rolled off the table. Doesn't count!",
		render.Fumble(dice.Die{Quantity: 0, Size: 20}))
}

func TestPrinter_Line(t *testing.T) {
	t.Parallel()

	res := result(3, 6, 1, 1, 6, 3)

	tests := []struct {
		name string
		opts render.Options
		want string
	}{
		{"plain", render.Options{}, "=> (2, 7, 4)"},
		{"sum", render.Options{Sum: true}, "=> (2, 7, 4): [13]"},
		{"count", render.Options{Count: true}, "=> (2, 7, 4): [crit successes: 1, crit failures: 1]"},
		{"sum wins", render.Options{Sum: true, Count: true}, "=> (2, 7, 4): [13]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, render.New(&bytes.Buffer{}, tt.opts).Line(res))
		})
	}
}

func TestPrinter_LineEmpty(t *testing.T) {
	t.Parallel()

	p := render.New(&bytes.Buffer{}, render.Options{Sum: true, Color: true})
	assert.Equal(t, "=> (): [0]", p.Line(result(0, 6, 2)))
}

func TestPrinter_Color(t *testing.T) {
	t.Parallel()

	p := render.New(&bytes.Buffer{}, render.Options{Color: true})

	line := p.Line(result(3, 20, 0, 1, 10, 20))
	require.Contains(t, line, "\x1b[")
	assert.Contains(t, line, "10")
	assert.Contains(t, line, ", 10, ", "middle value is not styled")

	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "=> ("), ")"), ", ")
	require.Len(t, parts, 3)
	assert.NotEqual(t, "1", parts[0])
	assert.Contains(t, parts[0], "1")
	assert.NotEqual(t, "20", parts[2])
	assert.Contains(t, parts[2], "20")
	assert.NotEqual(t, parts[0], strings.Replace(parts[2], "20", "1", 1),
		"low and high values use different styles")
}

func TestPrinter_ColorUsesDisplayedValue(t *testing.T) {
	t.Parallel()

	p := render.New(&bytes.Buffer{}, render.Options{Color: true})

	// 4+2 reaches the size and 1-1 falls below 1 after the modifier.
	assert.Contains(t, p.Line(result(1, 6, 2, 4)), "\x1b[")
	assert.Contains(t, p.Line(result(1, 6, -1, 1)), "\x1b[")
	assert.Equal(t, "=> (3)", p.Line(result(1, 6, -1, 4)))
}

func TestPrinter_NoColor(t *testing.T) {
	t.Parallel()

	p := render.New(&bytes.Buffer{}, render.Options{})
	assert.NotContains(t, p.Line(result(2, 20, 0, 1, 20)), "\x1b[")
}

func TestPrinter_Throw(t *testing.T) {
	t.Parallel()

	first := result(1, 20, 0, 3)
	reroll := result(1, 20, 0, 17)

	var buf bytes.Buffer

	p := render.New(&buf, render.Options{Sum: true})
	require.NoError(t, p.Throws([]roll.Throw{
		{First: first, Reroll: &reroll},
		{First: result(2, 6, 1, 2, 5)},
	}))

	assert.Equal(t, strings.Join([]string{
		"1d20:",
		"=> (3): [3]",
		"Your die rolled off the table. Doesn't count!",
		"1d20:",
		"=> (17): [17]",
		"2d6 +1:",
		"=> (3, 6): [9]",
		"",
	}, "\n"), buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrinter_WriteError(t *testing.T) {
	t.Parallel()

	p := render.New(failWriter{}, render.Options{})
	require.EqualError(t, p.Throw(roll.Throw{First: result(1, 4, 0, 2)}), "closed")
}
