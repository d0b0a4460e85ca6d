package app

import (
	"context"
	"strconv"

	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/internal/store"
	"github.com/yiponline/shelf/pkg/router"
)

func (a *App) productDetailScreen(ctx context.Context, entry router.Entry) error {
	id, _ := stringParam(entry, ParamProductID)
	p, ok := a.store.Find(id)
	if !ok {
		return a.productNotFound(ctx, id)
	}

	res, err := a.view.Detail(ctx, a.detailScreen(p))
	if err != nil {
		return screenErr(err)
	}

	switch res.Action {
	case ActionDelete:
		ok, err := a.confirm(ctx,
			a.tr.T(i18n.DeleteTitle),
			a.tr.T(i18n.DeleteConfirmDetail, map[string]any{"Name": p.Name}),
			a.tr.T(i18n.ActionDelete))
		if err != nil {
			return screenErr(err)
		}
		if ok {
			a.store.RemoveProduct(p.ID)
			a.back()
		}
	case ActionBack:
		a.back()
	}
	return nil
}

func (a *App) detailScreen(p store.Product) DetailScreen {
	return DetailScreen{
		Title:      a.tr.T(i18n.DetailTitle),
		Image:      p.Photo,
		Heading:    p.Name,
		Subheading: a.priceTag(p),
		Sections: []Section{
			{
				Title: a.tr.T(i18n.DetailTitle),
				Fields: []Field{
					{a.tr.T(i18n.LabelCreated), p.CreatedAt.Local().Format(a.tr.T(i18n.DateLayout))},
					{a.tr.T(i18n.LabelPrice), a.priceTag(p)},
				},
			},
			{
				Title: a.tr.T(i18n.StatsTitle),
				Fields: []Field{
					{a.tr.T(i18n.LabelProductID), "#" + p.ShortID()},
					{a.tr.T(i18n.LabelDaysOld), strconv.Itoa(p.DaysOld(a.now()))},
				},
			},
		},
		Help: []Hint{
			{"B", a.tr.T(i18n.ActionBack)},
			{"X", a.tr.T(i18n.ActionDelete)},
		},
	}
}

// productNotFound covers a missing id and a product removed while its detail
// page was in the history.
func (a *App) productNotFound(ctx context.Context, id string) error {
	a.logger.Debug("Product not found", "id", id)

	_, err := a.view.Detail(ctx, DetailScreen{
		Title:   a.tr.T(i18n.NotFoundTitle),
		Message: a.tr.T(i18n.NotFoundBody),
		Help:    []Hint{{"A", a.tr.T(i18n.ActionGoBack)}},
	})
	if err != nil {
		return screenErr(err)
	}

	a.back()
	return nil
}
