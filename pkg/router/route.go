package router

import (
	"fmt"
	"strings"
)

// Route is the name of a navigable screen.
type Route string

// StackName groups routes that share a navigation history.
type StackName string

// Params carries optional arguments for a route.
type Params map[string]any

// Clone returns a shallow copy. A nil Params clones to nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Entry is one element of the navigation history.
type Entry struct {
	Route  Route
	Params Params
}

// Param returns the named parameter and whether it was present and non-nil.
func (e Entry) Param(key string) (any, bool) {
	v, ok := e.Params[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// RouteEntry is a static record of the route table.
type RouteEntry struct {
	Stack           StackName
	Route           Route
	Title           string
	ShowHeader      bool
	HideHeaderTitle bool
}

// Table is the immutable association between routes, their stack and display
// options. Build it once at startup.
type Table struct {
	entries []RouteEntry
	index   map[Route]int
}

// NewTable validates and builds a route table. Route names must be unique and
// non-empty, and every route must name a stack.
func NewTable(entries ...RouteEntry) (*Table, error) {
	t := &Table{
		entries: make([]RouteEntry, 0, len(entries)),
		index:   make(map[Route]int, len(entries)),
	}

	for _, e := range entries {
		if e.Route == "" {
			return nil, fmt.Errorf("router: route with empty name in stack %q", e.Stack)
		}
		if e.Stack == "" {
			return nil, fmt.Errorf("router: route %q has no stack", e.Route)
		}
		if _, dup := t.index[e.Route]; dup {
			return nil, fmt.Errorf("router: duplicate route %q", e.Route)
		}
		t.index[e.Route] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// MustTable is NewTable for package-level tables; it panics on error.
func MustTable(entries ...RouteEntry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the entry for a route.
func (t *Table) Lookup(route Route) (RouteEntry, bool) {
	i, ok := t.index[route]
	if !ok {
		return RouteEntry{}, false
	}
	return t.entries[i], true
}

// Has reports whether the route is known.
func (t *Table) Has(route Route) bool {
	_, ok := t.index[route]
	return ok
}

// StackOf returns the stack a route belongs to, or "" if unknown.
func (t *Table) StackOf(route Route) StackName {
	e, _ := t.Lookup(route)
	return e.Stack
}

// InStack returns the routes of one stack in declaration order.
func (t *Table) InStack(stack StackName) []RouteEntry {
	var out []RouteEntry
	for _, e := range t.entries {
		if e.Stack == stack {
			out = append(out, e)
		}
	}
	return out
}

// Routes returns every entry in declaration order.
func (t *Table) Routes() []RouteEntry {
	out := make([]RouteEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Describe renders the table one route per line, for logs and snapshots.
func (t *Table) Describe() string {
	var b strings.Builder
	for _, e := range t.entries {
		fmt.Fprintf(&b, "%-12s %-16s header=%t hideTitle=%t title=%q\n",
			e.Stack, e.Route, e.ShowHeader, e.HideHeaderTitle, e.Title)
	}
	return b.String()
}
