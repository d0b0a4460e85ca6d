package router

import (
	"errors"
	"io"
	"log/slog"

	"go.uber.org/atomic"
)

// ErrAlreadyBound is returned when a coordinator is bound a second time.
var ErrAlreadyBound = errors.New("router: coordinator already bound")

// Coordinator lets code outside the screen being rendered (timers, store
// callbacks, hardware handlers) request navigation. Create one at application
// start, pass it explicitly to whoever needs it and bind it once the
// navigation tree exists. Until then every request is dropped.
type Coordinator struct {
	tree   atomic.Pointer[Navigator]
	logger *slog.Logger
}

// NewCoordinator creates an unbound coordinator.
func NewCoordinator(logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Coordinator{logger: logger}
}

// Bind attaches the navigation tree. The binding is permanent for the life of
// the coordinator.
func (c *Coordinator) Bind(tree *Navigator) error {
	if tree == nil {
		return errors.New("router: bind nil navigator")
	}
	if !c.tree.CompareAndSwap(nil, tree) {
		return ErrAlreadyBound
	}
	return nil
}

// Bound reports whether a navigation tree is attached.
func (c *Coordinator) Bound() bool {
	return c.tree.Load() != nil
}

// Navigate requests a forward transition to route.
func (c *Coordinator) Navigate(route Route, params Params) Status {
	tree := c.tree.Load()
	if tree == nil {
		c.logger.Debug("Navigation dropped, no tree bound", "op", "navigate", "route", route)
		return StatusDropped
	}
	return tree.Navigate(route, params)
}

// GoBack requests a pop of the active history.
func (c *Coordinator) GoBack() Status {
	tree := c.tree.Load()
	if tree == nil {
		c.logger.Debug("Navigation dropped, no tree bound", "op", "go_back")
		return StatusDropped
	}
	return tree.GoBack()
}

// Reset replaces the history, see Navigator.Reset.
func (c *Coordinator) Reset(entries []Entry, index int) Status {
	tree := c.tree.Load()
	if tree == nil {
		c.logger.Debug("Navigation dropped, no tree bound", "op", "reset")
		return StatusDropped
	}
	return tree.Reset(entries, index)
}

// SetParams updates the active entry's params.
func (c *Coordinator) SetParams(params Params) Status {
	tree := c.tree.Load()
	if tree == nil {
		c.logger.Debug("Navigation dropped, no tree bound", "op", "set_params")
		return StatusDropped
	}
	return tree.SetParams(params)
}

// Current returns the active entry of the bound tree.
func (c *Coordinator) Current() (Entry, bool) {
	tree := c.tree.Load()
	if tree == nil {
		return Entry{}, false
	}
	return tree.Current()
}
