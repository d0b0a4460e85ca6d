// Package router provides named-route screen navigation with an explicit
// navigation capability instead of a global navigation handle.
//
// A static Table maps routes to the stack they belong to. A Navigator holds the
// history and applies navigate, go back, reset and set-params requests against
// the table. A Coordinator is the capability handed to code that needs to
// navigate: it is created at start-up, bound once to the Navigator, and drops
// requests made before binding. The Router runs the screen on top of the
// history in a loop.
//
// # Basic Usage
//
//	table := router.MustTable(
//	    router.RouteEntry{Stack: "onboarding", Route: "splash"},
//	    router.RouteEntry{Stack: "app", Route: "home"},
//	    router.RouteEntry{Stack: "app", Route: "detail"},
//	)
//
//	r := router.New(table, logger)
//	nav := router.NewCoordinator(logger)
//	_ = nav.Bind(r.Navigator())
//
//	r.Register("splash", func(ctx context.Context, e router.Entry) error {
//	    // Leaving onboarding forgets it: back never returns here.
//	    nav.Reset([]router.Entry{{Route: "home"}}, 0)
//	    return nil
//	})
//
//	r.Register("home", func(ctx context.Context, e router.Entry) error {
//	    nav.Navigate("detail", router.Params{"id": "42"})
//	    return nil
//	})
//
//	_ = r.Run(ctx, router.Entry{Route: "splash"})
//
// # Stacks
//
// Navigate only moves within the active stack. Moving between stacks, such as
// leaving onboarding for the app, is done with Reset so the previous stack is
// evicted from history.
//
// # Status
//
// Navigation requests never return errors. Each returns a Status saying
// whether it was dispatched, dropped (unbound coordinator), unresolved
// (unknown route), ignored (nothing to do) or rejected (invalid request).
package router
