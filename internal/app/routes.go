package app

import "github.com/yiponline/shelf/pkg/router"

const (
	StackOnboarding router.StackName = "onboarding"
	StackApp        router.StackName = "app"
)

const (
	RouteSplash        router.Route = "splash"
	RouteDashboard     router.Route = "dashboard"
	RouteProducts      router.Route = "products"
	RouteProductDetail router.Route = "product-detail"
	RouteAddProduct    router.Route = "add-product"
)

// Route parameters.
const (
	ParamProductID = "productId"
	ParamTab       = "tab"
	ParamInitial   = "initial"
)

// dashboardTabs are the routes hosted by the dashboard, in strip order.
var dashboardTabs = []router.Route{RouteProducts, RouteAddProduct}

// Routes returns the static route table. No screen shows a header.
func Routes() *router.Table {
	return router.MustTable(
		router.RouteEntry{Stack: StackOnboarding, Route: RouteSplash},
		router.RouteEntry{Stack: StackApp, Route: RouteDashboard},
		router.RouteEntry{Stack: StackApp, Route: RouteProducts},
		router.RouteEntry{Stack: StackApp, Route: RouteProductDetail},
		router.RouteEntry{Stack: StackApp, Route: RouteAddProduct},
	)
}
