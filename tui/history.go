// Package tui provides a Bubble Tea terminal UI over the game engine.
package tui

// History is a fixed-size ring buffer of submitted commands with
// cursor-based navigation.
type History struct {
	buf    []string
	start  int // index of the oldest entry in buf
	n      int // number of stored entries
	cursor int // -1 = not navigating, 0..n-1 = age order, 0 oldest
}

// NewHistory creates a history buffer holding at most size commands.
// A non-positive size disables history.
func NewHistory(size int) *History {
	if size < 0 {
		size = 0
	}
	return &History{buf: make([]string, size), cursor: -1}
}

// Len returns the number of stored commands.
func (h *History) Len() int { return h.n }

// at returns the i-th oldest entry.
func (h *History) at(i int) string {
	return h.buf[(h.start+i)%len(h.buf)]
}

// Push adds a command. Empty commands and consecutive duplicates are
// skipped; the oldest entry is overwritten when full.
func (h *History) Push(cmd string) {
	if cmd == "" || len(h.buf) == 0 {
		return
	}
	if h.n > 0 && h.at(h.n-1) == cmd {
		return
	}
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = cmd
		h.n++
		return
	}
	h.buf[h.start] = cmd
	h.start = (h.start + 1) % len(h.buf)
}

// Prev returns the previous (older) entry. At the oldest entry it stays put.
func (h *History) Prev() (string, bool) {
	if h.n == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = h.n - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.at(h.cursor), true
}

// Next returns the next (newer) entry, or ("", false) once past the newest.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= h.n {
		h.cursor = -1
		return "", false
	}
	return h.at(h.cursor), true
}

// ResetCursor stops navigation.
func (h *History) ResetCursor() {
	h.cursor = -1
}
