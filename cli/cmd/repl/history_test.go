package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_AddPersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, line := range []string{"1d20", "  2d6+1 ", "", "1d20", "1d20", ":sum"} {
		if err := h.Add(line); err != nil {
			t.Fatalf("Add(%q) error = %v", line, err)
		}
	}

	want := []string{"2d6+1", "1d20", ":sum"}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, wantFile := string(data), "2d6+1\n1d20\n:sum\n"; got != wantFile {
		t.Errorf("history file = %q, want %q", got, wantFile)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded Entries() = %q, want %q", got, want)
	}
}

func TestHistory_LoadCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)
	if err := os.WriteFile(path, []byte("a\nb\n\na\n  c  \nb\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	if got, want := h.Entries(), []string{"a", "c", "b"}; !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}
}

func TestHistory_LoadMissing(t *testing.T) {
	t.Parallel()

	h := NewHistory(filepath.Join(t.TempDir(), "absent", baseHistory))
	if err := h.Load(); err != nil {
		t.Errorf("Load() error = %v, want nil", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistory_InMemory(t *testing.T) {
	t.Parallel()

	h := NewHistory("")
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	_ = h.Add("1d4")
	_ = h.Add("1d6")

	if line, err := h.Get(0); err != nil || line != "1d4" {
		t.Errorf("Get(0) = (%q, %v), want (\"1d4\", nil)", line, err)
	}

	for _, i := range []int{-1, 2} {
		if _, err := h.Get(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d) error = %v, want %v", i, err, ErrOutOfBounds)
		}
	}
}
