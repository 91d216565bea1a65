package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/diced/config"
)

// Profiles writes each profile followed by its dice sets, one per line:
//
//	fighter
//	  attack: 1d20+5
//	  damage: 2d6+3
//
// The profile identified by active is marked with an asterisk.
func Profiles(w io.Writer, profiles []config.Profile, active string) error {
	for _, p := range profiles {
		mark := ""
		if active != "" && p.Ident == active {
			mark = " *"
		}

		if _, err := fmt.Fprintf(w, "%s%s\n", p.Ident, mark); err != nil {
			return err
		}

		for _, s := range p.Sets {
			exprs := make([]string, len(s.Dice))
			for i, d := range s.Dice {
				exprs[i] = d.String()
			}

			if _, err := fmt.Fprintf(w, "  %s: %s\n", s.Name, strings.Join(exprs, " ")); err != nil {
				return err
			}
		}
	}

	return nil
}
