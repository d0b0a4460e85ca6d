package router

// Stack is the navigation history. The last entry is the active screen.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds an entry on top of the stack.
func (s *Stack) Push(entry Entry) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Replace swaps the whole history for the given entries.
func (s *Stack) Replace(entries []Entry) {
	s.entries = append(make([]Entry, 0, len(entries)), entries...)
}

// Entries returns a copy of the history, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
