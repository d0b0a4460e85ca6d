package router

import (
	"io"
	"log/slog"
	"sync"
)

// Status is the outcome of a navigation request. Navigation never fails with an
// error; callers that care inspect the status.
type Status int

const (
	StatusDispatched Status = iota // The request changed the navigation state
	StatusDropped                  // No navigation tree was bound yet
	StatusUnresolved               // The target route is not in the table
	StatusIgnored                  // Nothing to do, e.g. going back at the root
	StatusRejected                 // The request is invalid and was not applied
)

func (s Status) String() string {
	switch s {
	case StatusDispatched:
		return "dispatched"
	case StatusDropped:
		return "dropped"
	case StatusUnresolved:
		return "unresolved"
	case StatusIgnored:
		return "ignored"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Navigator is the navigation tree: a single history stack validated against
// a route table. It is safe for use from multiple goroutines.
type Navigator struct {
	mu       sync.Mutex
	table    *Table
	stack    *Stack
	onChange func(top Entry, ok bool)
	logger   *slog.Logger
}

// NewNavigator creates a navigator with an empty history.
func NewNavigator(table *Table, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Navigator{
		table:  table,
		stack:  NewStack(),
		logger: logger,
	}
}

// Table returns the route table the navigator resolves against.
func (n *Navigator) Table() *Table {
	return n.table
}

// OnChange registers a callback fired after every applied request with the new
// active entry. Only one callback is kept.
func (n *Navigator) OnChange(fn func(top Entry, ok bool)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Navigate pushes a route on the history. Routes of another stack can only be
// reached through Reset, so crossing stacks is rejected.
func (n *Navigator) Navigate(route Route, params Params) Status {
	target, ok := n.table.Lookup(route)
	if !ok {
		n.logger.Debug("Navigate to unknown route", "route", route)
		return StatusUnresolved
	}

	n.mu.Lock()
	if top := n.stack.Peek(); top != nil {
		if from := n.table.StackOf(top.Route); from != target.Stack {
			n.mu.Unlock()
			n.logger.Debug("Navigate across stacks rejected", "from", top.Route, "to", route)
			return StatusRejected
		}
	}
	n.stack.Push(Entry{Route: route, Params: params.Clone()})
	n.mu.Unlock()

	n.logger.Debug("Navigated", "route", route)
	n.changed()
	return StatusDispatched
}

// GoBack pops the active entry. At the root it does nothing.
func (n *Navigator) GoBack() Status {
	n.mu.Lock()
	if n.stack.Len() <= 1 {
		n.mu.Unlock()
		return StatusIgnored
	}
	popped := n.stack.Pop()
	n.mu.Unlock()

	n.logger.Debug("Went back", "from", popped.Route)
	n.changed()
	return StatusDispatched
}

// Reset replaces the whole history with entries[0..index], making
// entries[index] active. Entries past index are discarded. The request is
// applied atomically: an empty list, an out of range index or any unknown
// route rejects it and leaves the history untouched.
func (n *Navigator) Reset(entries []Entry, index int) Status {
	if len(entries) == 0 || index < 0 || index >= len(entries) {
		n.logger.Debug("Reset rejected", "entries", len(entries), "index", index)
		return StatusRejected
	}

	kept := make([]Entry, 0, index+1)
	for _, e := range entries[:index+1] {
		if !n.table.Has(e.Route) {
			n.logger.Debug("Reset rejected, unknown route", "route", e.Route)
			return StatusRejected
		}
		kept = append(kept, Entry{Route: e.Route, Params: e.Params.Clone()})
	}

	n.mu.Lock()
	n.stack.Replace(kept)
	n.mu.Unlock()

	n.logger.Debug("Reset", "route", kept[len(kept)-1].Route, "depth", len(kept))
	n.changed()
	return StatusDispatched
}

// SetParams merges params into the active entry. A nil value removes the key.
func (n *Navigator) SetParams(params Params) Status {
	n.mu.Lock()
	top := n.stack.Peek()
	if top == nil {
		n.mu.Unlock()
		return StatusIgnored
	}

	merged := top.Params.Clone()
	if merged == nil {
		merged = Params{}
	}
	for k, v := range params {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	top.Params = merged
	n.mu.Unlock()

	n.changed()
	return StatusDispatched
}

// Current returns the active entry.
func (n *Navigator) Current() (Entry, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	top := n.stack.Peek()
	if top == nil {
		return Entry{}, false
	}
	return Entry{Route: top.Route, Params: top.Params.Clone()}, true
}

// History returns the history, bottom first.
func (n *Navigator) History() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Entries()
}

// CanGoBack reports whether GoBack would change anything.
func (n *Navigator) CanGoBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Len() > 1
}

func (n *Navigator) changed() {
	n.mu.Lock()
	fn := n.onChange
	n.mu.Unlock()

	if fn == nil {
		return
	}
	top, ok := n.Current()
	fn(top, ok)
}
