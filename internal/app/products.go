package app

import (
	"context"

	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/internal/store"
	"github.com/yiponline/shelf/pkg/router"
)

func (a *App) productsScreen(ctx context.Context, _ router.Entry) error {
	return a.productList(ctx, hostStandalone)
}

func (a *App) productList(ctx context.Context, h host) error {
	products := a.store.Products()

	screen := ListScreen{
		Title:        a.tr.T(i18n.ProductsTitle),
		Badge:        a.tr.T(i18n.CountBadge, map[string]any{"Count": len(products), "Max": store.MaxProducts}),
		Items:        make([]ListItem, 0, len(products)),
		EmptyTitle:   a.tr.T(i18n.EmptyTitle),
		EmptyMessage: a.tr.T(i18n.EmptySubtitle),
	}
	for _, p := range products {
		screen.Items = append(screen.Items, ListItem{Text: p.Name, Detail: a.priceTag(p), Image: p.Photo})
	}

	screen.Help = []Hint{{"B", a.tr.T(i18n.ActionBack)}}
	if len(products) > 0 {
		screen.Help = append(screen.Help, Hint{"A", a.tr.T(i18n.ActionOpen)}, Hint{"X", a.tr.T(i18n.ActionDelete)})
	}
	if a.store.CanAddProduct() {
		screen.Help = append(screen.Help, Hint{"Y", a.tr.T(i18n.ActionAdd)})
	}
	if h == hostDashboard {
		screen.Tabs = a.tabs(RouteProducts)
		screen.Help[0].Label = a.tr.T(i18n.ActionQuit)
		screen.Help = append(screen.Help, Hint{"L/R", a.tr.T(i18n.ActionTabs)})
	}

	res, err := a.view.List(ctx, screen)
	if err != nil {
		return screenErr(err)
	}

	switch res.Action {
	case ActionSelect:
		if p, ok := productAt(products, res.Index); ok {
			a.navigate(RouteProductDetail, router.Params{ParamProductID: p.ID})
		}
	case ActionDelete:
		if p, ok := productAt(products, res.Index); ok {
			return a.deleteFromList(ctx, p)
		}
	case ActionAdd:
		if h == hostDashboard {
			a.selectTab(RouteAddProduct)
		} else {
			a.navigate(RouteAddProduct, nil)
		}
	case ActionNextTab, ActionPrevTab:
		if h == hostDashboard {
			a.switchTab(RouteProducts, tabDelta(res.Action))
		}
	case ActionBack:
		if h == hostDashboard {
			return a.quit(ctx)
		}
		a.back()
	}
	return nil
}

func (a *App) deleteFromList(ctx context.Context, p store.Product) error {
	ok, err := a.confirm(ctx,
		a.tr.T(i18n.DeleteTitle),
		a.tr.T(i18n.DeleteConfirmList, map[string]any{"Name": p.Name}),
		a.tr.T(i18n.ActionDelete))
	if err != nil {
		return screenErr(err)
	}
	if ok {
		a.store.RemoveProduct(p.ID)
	}
	return nil
}

func productAt(products []store.Product, i int) (store.Product, bool) {
	if i < 0 || i >= len(products) {
		return store.Product{}, false
	}
	return products[i], true
}

func tabDelta(action Action) int {
	if action == ActionPrevTab {
		return -1
	}
	return 1
}
