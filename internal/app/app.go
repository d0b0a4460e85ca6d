// Package app holds the screens of the product shelf and the route table they
// are registered under. Screens never touch SDL: they describe what to show
// through a View and react to the Result.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cast"

	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/internal/store"
	"github.com/yiponline/shelf/pkg/router"
)

// DefaultSplashDelay is how long the splash screen stays up.
const DefaultSplashDelay = 2500 * time.Millisecond

// Options wires an App. Store, View, Photos and Translator are required.
type Options struct {
	Store       *store.Store
	View        View
	Photos      PhotoPicker
	Translator  *i18n.Translator
	Logger      *slog.Logger
	SplashTitle string
	SplashDelay time.Duration
	Clock       func() time.Time
}

type App struct {
	store  *store.Store
	view   View
	photos PhotoPicker
	tr     *i18n.Translator
	logger *slog.Logger

	coordinator *router.Coordinator
	nav         Navigation

	splashTitle string
	splashDelay time.Duration
	now         func() time.Time

	// The add product form outlives tab switches.
	draft Draft
	focus int
}

// New validates opts and creates an App with an unbound coordinator.
func New(opts Options) (*App, error) {
	switch {
	case opts.Store == nil:
		return nil, errors.New("app: store is required")
	case opts.View == nil:
		return nil, errors.New("app: view is required")
	case opts.Photos == nil:
		return nil, errors.New("app: photo picker is required")
	case opts.Translator == nil:
		return nil, errors.New("app: translator is required")
	}

	a := &App{
		store:       opts.Store,
		view:        opts.View,
		photos:      opts.Photos,
		tr:          opts.Translator,
		logger:      opts.Logger,
		splashTitle: opts.SplashTitle,
		splashDelay: opts.SplashDelay,
		now:         opts.Clock,
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.splashTitle == "" {
		a.splashTitle = "Yiponline"
	}
	if a.splashDelay <= 0 {
		a.splashDelay = DefaultSplashDelay
	}
	if a.now == nil {
		a.now = time.Now
	}

	a.coordinator = router.NewCoordinator(a.logger)
	a.nav = a.coordinator
	return a, nil
}

// Coordinator returns the navigation capability handed to screens.
func (a *App) Coordinator() *router.Coordinator {
	return a.coordinator
}

// Router builds a router with every screen registered and binds the
// coordinator to its navigation tree. It can only be called once per App.
func (a *App) Router() (*router.Router, error) {
	r := router.New(Routes(), a.logger)
	r.Register(RouteSplash, a.splashScreen).
		Register(RouteDashboard, a.dashboardScreen).
		Register(RouteProducts, a.productsScreen).
		Register(RouteProductDetail, a.productDetailScreen).
		Register(RouteAddProduct, a.addProductScreen)

	if err := a.coordinator.Bind(r.Navigator()); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return r, nil
}

// Run shows the splash screen and runs until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	r, err := a.Router()
	if err != nil {
		return err
	}

	onChange := store.Handler(a.logStoreEvent)
	if err := a.store.Subscribe(store.TopicChanged, onChange); err != nil {
		return err
	}
	if err := a.store.Subscribe(store.TopicError, onChange); err != nil {
		return err
	}
	defer func() {
		_ = a.store.Unsubscribe(store.TopicChanged, onChange)
		_ = a.store.Unsubscribe(store.TopicError, onChange)
	}()

	a.logger.Debug("Starting", "routes", len(Routes().Routes()))
	return r.Run(ctx, router.Entry{Route: RouteSplash})
}

func (a *App) logStoreEvent(e store.Event) {
	if e.Err != "" {
		a.logger.Debug("Store error", "topic", e.Topic, "error", e.Err)
		return
	}
	a.logger.Debug("Store changed", "topic", e.Topic, "count", len(e.Products))
}

func (a *App) navigate(route router.Route, params router.Params) {
	if status := a.nav.Navigate(route, params); status != router.StatusDispatched {
		a.logger.Warn("Navigation not applied", "route", route, "status", status)
	}
}

// back pops the history. A screen at the root has nowhere to go back to, so
// the dashboard is reset in instead of re-showing the same screen forever.
func (a *App) back() {
	switch status := a.nav.GoBack(); status {
	case router.StatusDispatched:
	case router.StatusIgnored:
		a.nav.Reset([]router.Entry{{Route: RouteDashboard}}, 0)
	default:
		a.logger.Warn("Go back not applied", "status", status)
	}
}

// confirm asks a yes/no question. Backing out counts as no.
func (a *App) confirm(ctx context.Context, title, message, confirmLabel string) (bool, error) {
	ok, err := a.view.Confirm(ctx, ConfirmRequest{
		Title:   title,
		Message: message,
		Confirm: confirmLabel,
		Cancel:  a.tr.T(i18n.ActionCancel),
	})
	if errors.Is(err, ErrCancelled) {
		return false, nil
	}
	return ok, err
}

func (a *App) notice(ctx context.Context, title, message string) error {
	err := a.view.Notice(ctx, title, message, a.tr.T(i18n.ActionOK))
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	return err
}

func (a *App) priceTag(p store.Product) string {
	return a.tr.T(i18n.PriceTag, map[string]any{"Price": p.FormattedPrice()})
}

// screenErr maps view errors to what the router expects.
func screenErr(err error) error {
	if errors.Is(err, ErrQuit) {
		return router.ErrExit
	}
	return err
}

// stringParam reads a route param as a string. Params set by other screens
// may carry ids as numbers.
func stringParam(entry router.Entry, key string) (string, bool) {
	v, ok := entry.Param(key)
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
