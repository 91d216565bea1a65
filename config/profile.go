package config

import "github.com/ardnew/diced/dice"

// Set returns the dice set with the given name.
func (p Profile) Set(name string) (DiceSet, bool) {
	for _, s := range p.Sets {
		if s.Name == name {
			return s, true
		}
	}

	return DiceSet{}, false
}

// Names returns the names of all sets in order.
func (p Profile) Names() []string {
	names := make([]string, len(p.Sets))
	for i, s := range p.Sets {
		names[i] = s.Name
	}

	return names
}

// Resolve expands args into dice, preserving order. An argument naming a set
// expands to the dice of that set; any other argument is parsed as a dice
// expression. With no arguments, the dice of every set are returned.
func (p Profile) Resolve(args []string) ([]dice.Die, error) {
	var out []dice.Die

	if len(args) == 0 {
		for _, s := range p.Sets {
			out = append(out, s.Dice...)
		}
	}

	for _, arg := range args {
		if s, ok := p.Set(arg); ok {
			out = append(out, s.Dice...)

			continue
		}

		d, err := dice.ParseOne(arg)
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	if len(out) == 0 {
		return nil, dice.ErrEmptyInput
	}

	return out, nil
}
