package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ardnew/diced/config"
	"github.com/ardnew/diced/render"
	"github.com/ardnew/diced/roll"
)

// commands are the available commands, in help order.
var commands = []string{
	":help", ":list", ":use", ":color", ":sum", ":count", ":painful", ":clear", ":quit",
}

func helpMessage() string {
	return `Commands:

  :help          Print this cruft
  :list          List profiles and dice sets
  :use [IDENT]   Resolve set names from profile IDENT (none if omitted)
  :color         Toggle coloring of critical rolls
  :sum           Toggle sums
  :count         Toggle critical success and failure counts
  :painful       Toggle unwanted features
  :clear         Clear screen
  :quit          Exit

Usage:
  Type dice expressions (2d6+1) or set names of the active profile
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit`
}

// session holds the roll settings of an interactive roller.
type session struct {
	opts    render.Options
	painful bool
	profile string
	cfg     config.Config
	roller  *roll.Roller
}

// outcome is the result of executing one input line.
type outcome struct {
	out   string
	err   error
	quit  bool
	clear bool
}

// exec executes a command or rolls the dice named by line.
func (s *session) exec(line string) outcome {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return outcome{}
	case strings.HasPrefix(line, ":"):
		return s.command(strings.Fields(line))
	default:
		return s.roll(strings.Fields(line))
	}
}

func (s *session) roll(args []string) outcome {
	dice, err := s.cfg.Resolve(s.profile, args)
	if err != nil {
		return outcome{err: err}
	}

	var buf bytes.Buffer

	err = render.New(&buf, s.opts).Throws(s.roller.ThrowAll(dice, s.painful))

	return outcome{out: strings.TrimSuffix(buf.String(), "\n"), err: err}
}

func (s *session) command(fields []string) outcome {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case ":q", ":quit", ":exit":
		return outcome{quit: true}

	case ":h", ":help":
		return outcome{out: helpMessage()}

	case ":l", ":list":
		if len(s.cfg.Profiles) == 0 {
			return outcome{out: "no profiles configured"}
		}

		var buf bytes.Buffer

		err := render.Profiles(&buf, s.cfg.Profiles, s.profile)

		return outcome{out: strings.TrimSuffix(buf.String(), "\n"), err: err}

	case ":use":
		if len(args) == 0 {
			s.profile = ""

			return outcome{out: "using no profile"}
		}

		if _, err := s.cfg.Profile(args[0]); err != nil {
			return outcome{err: err}
		}

		s.profile = args[0]

		return outcome{out: "using profile " + s.profile}

	case ":color":
		return outcome{out: toggle("color", &s.opts.Color)}

	case ":sum":
		return outcome{out: toggle("sum", &s.opts.Sum)}

	case ":count":
		return outcome{out: toggle("count", &s.opts.Count)}

	case ":painful":
		return outcome{out: toggle("painful", &s.painful)}

	case ":c", ":clear":
		return outcome{clear: true}

	default:
		return outcome{err: fmt.Errorf("%w %s (try :help)", ErrUnknownCommand, cmd)}
	}
}

func toggle(name string, v *bool) string {
	*v = !*v

	if *v {
		return name + " on"
	}

	return name + " off"
}

// reload replaces the configuration. If the active profile no longer exists,
// the session falls back to no profile.
func (s *session) reload(cfg config.Config) string {
	s.cfg = cfg

	msg := fmt.Sprintf("reloaded %d profile(s)", len(cfg.Profiles))

	if s.profile != "" {
		if _, err := cfg.Profile(s.profile); err != nil {
			msg += "; profile " + s.profile + " removed, using no profile"
			s.profile = ""
		}
	}

	return msg
}

// candidates returns the completion candidates for the word starting at byte
// offset wordStart of input.
func (s *session) candidates(input string, wordStart int) []string {
	before := strings.Fields(input[:wordStart])
	word := input[wordStart:]

	switch {
	case len(before) == 0 && strings.HasPrefix(word, ":"):
		return commands

	case len(before) == 1 && before[0] == ":use":
		return s.cfg.Idents()

	case len(before) > 0 && strings.HasPrefix(before[0], ":"):
		return nil

	case s.profile != "":
		p, err := s.cfg.Profile(s.profile)
		if err != nil {
			return nil
		}

		return p.Names()

	default:
		return nil
	}
}
