package app

import (
	"context"
	"errors"
	"strings"

	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/pkg/router"
)

// MaxNameLength caps the product name as typed.
const MaxNameLength = 50

// Form field order.
const (
	fieldName = iota
	fieldPrice
	fieldPhoto
	fieldSubmit
)

func (a *App) addProductScreen(ctx context.Context, _ router.Entry) error {
	return a.addProduct(ctx, hostStandalone)
}

func (a *App) addProduct(ctx context.Context, h host) error {
	// An error left by an earlier attempt is shown before the form.
	if msg := a.store.Error(); msg != "" {
		if err := a.notice(ctx, a.tr.T(i18n.ErrorTitle), msg); err != nil {
			return screenErr(err)
		}
		a.store.ClearError()
		return nil
	}

	screen := a.formScreen()
	if h == hostDashboard {
		screen.Tabs = a.tabs(RouteAddProduct)
		screen.Help = append(screen.Help, Hint{"L/R", a.tr.T(i18n.ActionTabs)})
	}

	res, err := a.view.Form(ctx, screen)
	if err != nil {
		return screenErr(err)
	}

	switch res.Action {
	case ActionSelect:
		a.focus = res.Index
		if res.Index == fieldSubmit {
			return a.submit(ctx)
		}
		return a.edit(ctx, res.Index)
	case ActionSubmit:
		return a.submit(ctx)
	case ActionNextTab, ActionPrevTab:
		if h == hostDashboard {
			a.switchTab(RouteAddProduct, tabDelta(res.Action))
		}
	case ActionBack:
		if h == hostDashboard {
			a.selectTab(RouteProducts)
			return nil
		}
		a.back()
	}
	return nil
}

func (a *App) formScreen() FormScreen {
	screen := FormScreen{
		Title: a.tr.T(i18n.AddTitle),
		Fields: []FormField{
			{Label: a.tr.T(i18n.LabelName), Value: a.draft.Name, Placeholder: a.tr.T(i18n.PlaceholderName), Kind: FieldText},
			{Label: a.tr.T(i18n.LabelPriceInput), Value: a.draft.Price, Placeholder: a.tr.T(i18n.PlaceholderPrice), Kind: FieldNumber},
			{Label: a.tr.T(i18n.LabelPhoto), Value: a.draft.Photo, Placeholder: a.tr.T(i18n.PlaceholderPhoto), Kind: FieldPhoto},
		},
		Submit: a.tr.T(i18n.SubmitButton),
		Focus:  a.focus,
		Help: []Hint{
			{"B", a.tr.T(i18n.ActionBack)},
			{"A", a.tr.T(i18n.ActionEdit)},
			{"START", a.tr.T(i18n.SubmitButton)},
		},
	}
	if !a.store.CanAddProduct() {
		screen.Warning = a.tr.T(i18n.LimitWarning)
	}
	return screen
}

// edit opens the editor for one field. Backing out of an editor keeps the
// previous value.
func (a *App) edit(ctx context.Context, field int) error {
	var (
		value string
		err   error
	)

	switch field {
	case fieldName:
		value, err = a.view.Keyboard(ctx, KeyboardRequest{
			Prompt:    a.tr.T(i18n.LabelName),
			Initial:   a.draft.Name,
			MaxLength: MaxNameLength,
		})
	case fieldPrice:
		value, err = a.view.Keyboard(ctx, KeyboardRequest{
			Prompt:  a.tr.T(i18n.LabelPriceInput),
			Initial: a.draft.Price,
			Numeric: true,
		})
	case fieldPhoto:
		value, err = a.photos.PickPhoto(ctx)
	default:
		return nil
	}

	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return screenErr(err)
	}

	switch field {
	case fieldName:
		if r := []rune(value); len(r) > MaxNameLength {
			value = string(r[:MaxNameLength])
		}
		a.draft.Name = value
	case fieldPrice:
		a.draft.Price = value
	case fieldPhoto:
		a.draft.Photo = value
	}
	return nil
}

func (a *App) submit(ctx context.Context) error {
	price, problem := Validate(a.draft, a.store.CanAddProduct())
	if problem != nil {
		return screenErr(a.notice(ctx, a.tr.T(problem.Title), a.tr.T(problem.Message)))
	}

	if _, ok := a.store.AddProduct(strings.TrimSpace(a.draft.Name), price, a.draft.Photo); !ok {
		// The store refused it. The error slot is presented on the next run.
		return nil
	}

	a.draft = Draft{}
	a.focus = fieldName
	return screenErr(a.notice(ctx, a.tr.T(i18n.SuccessTitle), a.tr.T(i18n.SuccessBody)))
}
