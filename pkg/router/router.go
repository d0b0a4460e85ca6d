package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrExit is returned by a screen to stop the router.
var ErrExit = errors.New("router: exit")

// ScreenFunc runs a screen for the given history entry. It blocks while the
// screen is shown and returns once the screen has requested navigation (or
// wants to be shown again). The context is cancelled when the screen is
// unmounted by navigation made elsewhere.
type ScreenFunc func(ctx context.Context, entry Entry) error

// Router runs the screen at the top of the navigation history until a screen
// returns ErrExit or the history empties.
type Router struct {
	screens map[Route]ScreenFunc
	nav     *Navigator
	logger  *slog.Logger
}

// New creates a Router with its own navigation tree over table.
func New(table *Table, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{
		screens: make(map[Route]ScreenFunc),
		nav:     NewNavigator(table, logger),
		logger:  logger,
	}
}

// Register adds a screen to the router.
// The screen function will be called whenever its route is active.
func (r *Router) Register(route Route, fn ScreenFunc) *Router {
	r.screens[route] = fn
	return r
}

// Navigator returns the navigation tree, to be bound to a Coordinator.
func (r *Router) Navigator() *Navigator {
	return r.nav
}

// Run starts the router. If the history is empty it is reset to start first.
// It returns nil when a screen returns ErrExit or the history empties, and
// ctx.Err() when ctx is cancelled.
func (r *Router) Run(ctx context.Context, start Entry) error {
	if _, ok := r.nav.Current(); !ok {
		if status := r.nav.Reset([]Entry{start}, 0); status != StatusDispatched {
			return fmt.Errorf("router: cannot start at %q: %s", start.Route, status)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, ok := r.nav.Current()
		if !ok {
			return nil
		}

		fn, ok := r.screens[entry.Route]
		if !ok {
			return fmt.Errorf("router: screen %q not registered", entry.Route)
		}

		if err := r.runScreen(ctx, fn, entry); err != nil {
			if errors.Is(err, ErrExit) {
				r.logger.Debug("Router exit requested", "route", entry.Route)
				return nil
			}
			return fmt.Errorf("router: screen %q error: %w", entry.Route, err)
		}
	}
}

func (r *Router) runScreen(ctx context.Context, fn ScreenFunc, entry Entry) error {
	screenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.nav.OnChange(func(Entry, bool) { cancel() })
	defer r.nav.OnChange(nil)

	err := fn(screenCtx, entry)

	// A screen torn down by navigation made elsewhere is not a failure.
	if err != nil && ctx.Err() == nil && screenCtx.Err() != nil && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
