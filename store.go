package log

// lineStore is the append-only, in-process sequence of rendered lines, with a
// cursor tracking how many have been surfaced to a polling consumer. The
// sequence never shrinks while the engine is live; release drops it at
// teardown. All access happens under the engine mutex.
type lineStore struct {
	lines     []string
	displayed int
	released  bool
}

// append adds a rendered line. Returns false when the store has been
// released and the line was dropped.
func (s *lineStore) append(line string) bool {
	if s.released {
		return false
	}
	s.lines = append(s.lines, line)
	return true
}

// length reports the number of stored lines.
func (s *lineStore) length() int {
	return len(s.lines)
}

// snapshot returns a copy of all stored lines.
func (s *lineStore) snapshot() []string {
	if len(s.lines) == 0 {
		return nil
	}
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// pending returns a copy of the lines not yet surfaced and advances the
// cursor past them. The cursor only ever moves forward.
func (s *lineStore) pending() []string {
	if s.displayed >= len(s.lines) {
		return nil
	}
	batch := make([]string, len(s.lines)-s.displayed)
	copy(batch, s.lines[s.displayed:])
	s.displayed = len(s.lines)
	return batch
}

// markDisplayed advances the cursor over one line already echoed to the
// console, keeping the cursor within bounds.
func (s *lineStore) markDisplayed() {
	if s.displayed < len(s.lines) {
		s.displayed++
	}
}

// release drops the owned line storage. Further appends are refused.
func (s *lineStore) release() {
	s.lines = nil
	s.displayed = 0
	s.released = true
}
