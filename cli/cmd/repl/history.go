package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
)

const baseHistory = "history.utf8"

// History manages submitted lines with file persistence. Index 0 is the
// oldest entry, and each line appears at most once.
type History struct {
	path    string
	entries []string
}

// NewHistory creates a new History instance with the given file path.
// An empty path keeps the history in memory only.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads history entries from the history file.
func (h *History) Load() error {
	h.entries = nil

	if h.path == "" {
		return nil
	}

	file, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h.entries = slices.DeleteFunc(h.entries, func(e string) bool { return e == line })
		h.entries = append(h.entries, line)
	}

	return scanner.Err()
}

// Add appends entry to the history. If the same line exists, the old entry is
// removed and the file is rewritten; otherwise the line is appended to it.
func (h *History) Add(entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}

	// Skip if same as last entry
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return nil
	}

	n := len(h.entries)
	h.entries = slices.DeleteFunc(h.entries, func(e string) bool { return e == entry })
	rewrite := len(h.entries) != n
	h.entries = append(h.entries, entry)

	if h.path == "" {
		return nil
	}

	if rewrite {
		return h.rewriteFile()
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(entry + "\n")

	return err
}

// Get retrieves a historic line by index.
func (h *History) Get(i int) (string, error) {
	if i < 0 || i >= len(h.entries) {
		return "", ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of all history entries.
func (h *History) Entries() []string { return slices.Clone(h.entries) }

// rewriteFile rewrites the entire history file with current entries.
func (h *History) rewriteFile() error {
	file, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	for _, entry := range h.entries {
		if _, err := w.WriteString(entry + "\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}
