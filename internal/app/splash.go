package app

import (
	"context"

	"github.com/yiponline/shelf/pkg/router"
)

// splashScreen shows the brand for a fixed delay, then swaps the onboarding
// stack for the app stack. Leaving early cancels the timer, so the reset only
// happens if the splash is still showing.
func (a *App) splashScreen(ctx context.Context, _ router.Entry) error {
	if err := a.view.Splash(ctx, a.splashTitle, a.splashDelay); err != nil {
		return screenErr(err)
	}

	if status := a.nav.Reset([]router.Entry{{Route: RouteDashboard}}, 0); status != router.StatusDispatched {
		a.logger.Error("Could not leave the splash screen", "status", status)
		return router.ErrExit
	}
	return nil
}
