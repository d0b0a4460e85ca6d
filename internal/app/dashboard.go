package app

import (
	"context"
	"slices"

	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/pkg/router"
)

// host tells a screen whether it is a dashboard tab or a route of its own.
type host int

const (
	hostStandalone host = iota
	hostDashboard
)

// dashboardScreen hosts the product list and the add product form as tabs.
// The active tab is the "tab" param. An "initial" param selects a tab once and
// is then cleared.
func (a *App) dashboardScreen(ctx context.Context, entry router.Entry) error {
	if initial, ok := stringParam(entry, ParamInitial); ok {
		params := router.Params{ParamInitial: nil}
		if tabIndex(router.Route(initial)) >= 0 {
			params[ParamTab] = initial
		} else {
			a.logger.Warn("Unknown initial tab", "tab", initial)
		}
		a.nav.SetParams(params)
		return nil
	}

	switch a.activeTab(entry) {
	case RouteAddProduct:
		return a.addProduct(ctx, hostDashboard)
	default:
		return a.productList(ctx, hostDashboard)
	}
}

func (a *App) activeTab(entry router.Entry) router.Route {
	tab, _ := stringParam(entry, ParamTab)
	if tabIndex(router.Route(tab)) < 0 {
		return dashboardTabs[0]
	}
	return router.Route(tab)
}

func tabIndex(route router.Route) int {
	return slices.Index(dashboardTabs, route)
}

func (a *App) tabs(active router.Route) *Tabs {
	return &Tabs{
		Labels: []string{a.tr.T(i18n.TabProducts), a.tr.T(i18n.TabAddProduct)},
		Active: max(tabIndex(active), 0),
	}
}

// switchTab moves the strip by delta, wrapping around.
func (a *App) switchTab(from router.Route, delta int) {
	n := len(dashboardTabs)
	next := dashboardTabs[((tabIndex(from)+delta)%n+n)%n]
	a.selectTab(next)
}

func (a *App) selectTab(tab router.Route) {
	if status := a.nav.SetParams(router.Params{ParamTab: string(tab)}); status != router.StatusDispatched {
		a.logger.Warn("Tab switch not applied", "tab", tab, "status", status)
	}
}

// quit asks before leaving the app from the dashboard root.
func (a *App) quit(ctx context.Context) error {
	ok, err := a.confirm(ctx, a.tr.T(i18n.QuitTitle), a.tr.T(i18n.QuitBody), a.tr.T(i18n.ActionQuit))
	if err != nil {
		return screenErr(err)
	}
	if ok {
		return router.ErrExit
	}
	return nil
}
