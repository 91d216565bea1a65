package repl

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/diced/config"
	"github.com/ardnew/diced/roll"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "1d20", 4, "1d20", 0, 4},
		{"second_word", "1d20 att", 8, "att", 5, 8},
		{"mid_word", "attack", 3, "attack", 0, 6},
		{"at_start", "attack", 0, "attack", 0, 6},
		{"empty_at_boundary", ":use ", 5, "", 5, 5},
		{"command", ":us", 3, ":us", 0, 3},
		{"modifier_signs", "2d6+1 3d8-2", 11, "3d8-2", 6, 11},
		{"cursor_past_end", "1d4", 10, "1d4", 0, 3},
		{"tabs", "a\tb", 3, "b", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Find("a", []string{"attack", "damage", "ability", "percentile"})

	bar := renderCandidateBar(matches, 0, false, 200)
	for _, want := range []string{"attack", "damage", "ability"} {
		if !strings.Contains(ansi.Strip(bar), want) {
			t.Errorf("bar %q missing %q", ansi.Strip(bar), want)
		}
	}

	narrow := ansi.Strip(renderCandidateBar(matches, 0, false, 12))
	if !strings.HasSuffix(narrow, "...") {
		t.Errorf("narrow bar %q should be ellipsized", narrow)
	}

	if got := renderCandidateBar(nil, 0, false, 80); got != "" {
		t.Errorf("empty bar = %q", got)
	}
}

func testModel(t *testing.T) model {
	t.Helper()

	return newModel(context.Background(), Config{
		Profiles: config.Default(),
		Roller:   roll.NewSeeded(1),
	}, NewHistory(""))
}

func typeRunes(m model, s string) model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})

	return next.(model)
}

func press(m model, k tea.KeyType) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})

	return next.(model), cmd
}

func TestModel_TabCompletesCommand(t *testing.T) {
	m := typeRunes(testModel(t), ":he")

	if len(m.matches) != 1 || m.matches[0].Str != ":help" {
		t.Fatalf("matches = %v, want [:help]", m.matches)
	}

	m, _ = press(m, tea.KeyTab)

	if got := m.input.Value(); got != ":help" {
		t.Errorf("input after Tab = %q, want %q", got, ":help")
	}
}

func TestModel_TabCycles(t *testing.T) {
	m := typeRunes(testModel(t), ":use ")

	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want both profiles", m.matches)
	}

	m, _ = press(m, tea.KeyTab)
	if got := m.input.Value(); got != ":use fighter" {
		t.Errorf("first Tab = %q", got)
	}

	m, _ = press(m, tea.KeyTab)
	if got := m.input.Value(); got != ":use stats" {
		t.Errorf("second Tab = %q", got)
	}

	m, _ = press(m, tea.KeyShiftTab)
	if got := m.input.Value(); got != ":use fighter" {
		t.Errorf("Shift-Tab = %q", got)
	}

	m, _ = press(m, tea.KeyEsc)
	if got := m.input.Value(); got != ":use " {
		t.Errorf("Esc = %q, want original input", got)
	}
}

func TestModel_ExecuteAndHistory(t *testing.T) {
	m := typeRunes(testModel(t), ":use stats")

	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("Enter should produce output")
	}

	if m.session.profile != "stats" {
		t.Errorf("profile = %q, want stats", m.session.profile)
	}

	if m.input.Value() != "" || m.history.Len() != 1 {
		t.Errorf("after Enter input = %q, history = %d", m.input.Value(), m.history.Len())
	}

	if !strings.Contains(m.input.Prompt, "stats") {
		t.Errorf("prompt %q should name the active profile", m.input.Prompt)
	}

	m = typeRunes(m, "ability")
	m, _ = press(m, tea.KeyEnter)

	m, _ = press(m, tea.KeyUp)
	if got := m.input.Value(); got != "ability" {
		t.Errorf("Up = %q, want ability", got)
	}

	m, _ = press(m, tea.KeyUp)
	if got := m.input.Value(); got != ":use stats" {
		t.Errorf("Up twice = %q", got)
	}

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	if got := m.input.Value(); got != "" {
		t.Errorf("Down past end = %q, want empty", got)
	}
}

func TestModel_Quit(t *testing.T) {
	m, cmd := press(testModel(t), tea.KeyCtrlD)
	if !m.quitting || cmd == nil {
		t.Error("Ctrl+D on empty line should quit")
	}

	m = typeRunes(testModel(t), "1d6")

	m, _ = press(m, tea.KeyCtrlC)
	if m.quitting || m.input.Value() != "" {
		t.Errorf("Ctrl+C with input should clear it, got %q quitting=%v",
			m.input.Value(), m.quitting)
	}

	m = typeRunes(m, ":quit")

	m, _ = press(m, tea.KeyEnter)
	if !m.quitting || m.View() != "" {
		t.Error(":quit should quit with an empty view")
	}
}

func TestModel_Reload(t *testing.T) {
	m := typeRunes(testModel(t), ":use fighter")
	m, _ = press(m, tea.KeyEnter)

	next, cmd := m.Update(reloadMsg{cfg: config.Config{}})
	m = next.(model)

	if cmd == nil || m.session.profile != "" || len(m.session.cfg.Profiles) != 0 {
		t.Errorf("reload: profile %q, %d profiles", m.session.profile, len(m.session.cfg.Profiles))
	}
}
