package roll

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	randv2 "math/rand/v2"

	"github.com/ardnew/diced/dice"
)

// Source yields uniform integers in [0, n). It is satisfied by
// *math/rand/v2.Rand.
type Source interface {
	IntN(n int) int
}

// Painful-mode rerolls happen when a draw in [1, PainRange] exceeds
// PainThreshold.
const (
	PainRange     = 100
	PainThreshold = 78
)

// Roller rolls dice using a single randomness source.
//
// A Roller is not safe for concurrent use.
type Roller struct {
	src Source
}

// New returns a Roller drawing from src.
func New(src Source) *Roller {
	return &Roller{src: src}
}

// NewSeeded returns a deterministic Roller backed by a PCG generator.
func NewSeeded(seed uint64) *Roller {
	return New(randv2.New(randv2.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom returns a Roller seeded from the operating system's
// cryptographic random source.
func NewRandom() (*Roller, error) {
	seed, err := Seed()
	if err != nil {
		return nil, err
	}

	return NewSeeded(seed), nil
}

// Seed returns a random seed read from crypto/rand.
func Seed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("generate seed: %w", err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Roll draws d.Quantity independent samples in [1, d.Size].
func (r *Roller) Roll(d dice.Die) Result {
	rolls := make([]uint16, d.Quantity)
	for i := range rolls {
		rolls[i] = uint16(r.src.IntN(int(d.Size)) + 1)
	}

	return Result{Die: d, Rolls: rolls}
}

// Throw rolls d once. When painful, the dice may then roll off the table:
// with a fixed probability of 22% the first result does not count and d is
// rolled again.
func (r *Roller) Throw(d dice.Die, painful bool) Throw {
	t := Throw{First: r.Roll(d)}

	if painful && r.src.IntN(PainRange)+1 > PainThreshold {
		reroll := r.Roll(d)
		t.Reroll = &reroll
	}

	return t
}

// ThrowAll throws each die in order.
func (r *Roller) ThrowAll(ds []dice.Die, painful bool) []Throw {
	throws := make([]Throw, len(ds))
	for i, d := range ds {
		throws[i] = r.Throw(d, painful)
	}

	return throws
}
