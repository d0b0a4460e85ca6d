package ui

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"time"

	"github.com/yiponline/shelf/internal/app"
	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/internal/logging"
)

type PhotoOptions struct {
	Dir        string
	Extensions []string
}

// View implements app.View and app.PhotoPicker with the SDL widgets.
type View struct {
	tr     *i18n.Translator
	photos PhotoOptions

	process func(ctx context.Context, message string, fn func(context.Context) error) error
	scan    func(dir string, extensions []string) ([]string, error)
}

var (
	_ app.View        = (*View)(nil)
	_ app.PhotoPicker = (*View)(nil)
)

func NewView(tr *i18n.Translator, photos PhotoOptions) *View {
	return &View{tr: tr, photos: photos, process: ProcessMessage, scan: ScanPhotos}
}

// viewErr translates widget errors into the app's vocabulary.
func viewErr(err error) error {
	switch {
	case errors.Is(err, ErrCancelled):
		return app.ErrCancelled
	case errors.Is(err, ErrQuit):
		return app.ErrQuit
	}
	return err
}

func footer(hints []app.Hint) []FooterHelpItem {
	out := make([]FooterHelpItem, len(hints))
	for i, h := range hints {
		out[i] = FooterHelpItem{ButtonName: h.Button, HelpText: h.Label}
	}
	return out
}

// hasHint reports whether button is advertised in the footer. Optional
// actions are enabled only when advertised.
func hasHint(hints []app.Hint, button string) bool {
	return slices.ContainsFunc(hints, func(h app.Hint) bool { return h.Button == button })
}

func tabs(t *app.Tabs) ([]string, int) {
	if t == nil {
		return nil, 0
	}
	return t.Labels, t.Active
}

func (v *View) Splash(ctx context.Context, title string, delay time.Duration) error {
	return viewErr(Splash(ctx, title, delay))
}

func (v *View) List(ctx context.Context, screen app.ListScreen) (app.Result, error) {
	labels, active := tabs(screen.Tabs)
	opts := ListOptions{
		Title:                 screen.Title,
		Badge:                 screen.Badge,
		Tabs:                  labels,
		ActiveTab:             active,
		Items:                 make([]ListItem, len(screen.Items)),
		EmptyTitle:            screen.EmptyTitle,
		EmptyMessage:          screen.EmptyMessage,
		EnableAction:          hasHint(screen.Help, "X"),
		EnableSecondaryAction: hasHint(screen.Help, "Y"),
		FooterHelpItems:       footer(screen.Help),
	}
	for i, item := range screen.Items {
		opts.Items[i] = ListItem{Text: item.Text, Detail: item.Detail, ImagePath: item.Image}
	}

	res, err := List(ctx, opts)
	if IsCancelled(err) {
		return app.Result{Action: app.ActionBack}, nil
	}
	if err != nil {
		return app.Result{}, viewErr(err)
	}

	out := app.Result{Index: res.Index}
	switch res.Action {
	case ListActionSelected:
		out.Action = app.ActionSelect
	case ListActionTriggered:
		out.Action = app.ActionDelete
	case ListActionSecondaryTriggered:
		out.Action = app.ActionAdd
	case ListActionNextTab:
		out.Action = app.ActionNextTab
	case ListActionPrevTab:
		out.Action = app.ActionPrevTab
	}
	return out, nil
}

func (v *View) Detail(ctx context.Context, screen app.DetailScreen) (app.Result, error) {
	opts := DetailOptions{
		Title:           screen.Title,
		ImagePath:       screen.Image,
		Heading:         screen.Heading,
		Subheading:      screen.Subheading,
		Message:         screen.Message,
		EnableAction:    hasHint(screen.Help, "X"),
		FooterHelpItems: footer(screen.Help),
	}
	for _, s := range screen.Sections {
		section := DetailSection{Title: s.Title}
		for _, f := range s.Fields {
			section.Fields = append(section.Fields, KeyValue{Key: f.Label, Value: f.Value})
		}
		opts.Sections = append(opts.Sections, section)
	}

	res, err := Detail(ctx, opts)
	if IsCancelled(err) {
		return app.Result{Action: app.ActionBack}, nil
	}
	if err != nil {
		return app.Result{}, viewErr(err)
	}

	switch res.Action {
	case DetailActionConfirmed:
		return app.Result{Action: app.ActionSelect}, nil
	case DetailActionTriggered:
		return app.Result{Action: app.ActionDelete}, nil
	}
	return app.Result{}, nil
}

func (v *View) Form(ctx context.Context, screen app.FormScreen) (app.Result, error) {
	labels, active := tabs(screen.Tabs)
	opts := FormOptions{
		Title:           screen.Title,
		Tabs:            labels,
		ActiveTab:       active,
		Fields:          make([]FormField, len(screen.Fields)),
		SubmitLabel:     screen.Submit,
		Warning:         screen.Warning,
		Focus:           screen.Focus,
		FooterHelpItems: footer(screen.Help),
	}
	for i, f := range screen.Fields {
		field := FormField{Label: f.Label, Value: f.Value, Placeholder: f.Placeholder}
		if f.Kind == app.FieldPhoto && f.Value != "" {
			field.ImagePath = f.Value
			field.Value = filepath.Base(f.Value)
		}
		opts.Fields[i] = field
	}

	res, err := Form(ctx, opts)
	if IsCancelled(err) {
		return app.Result{Action: app.ActionBack}, nil
	}
	if err != nil {
		return app.Result{}, viewErr(err)
	}

	out := app.Result{Index: res.Index}
	switch res.Action {
	case FormActionSelected:
		out.Action = app.ActionSelect
	case FormActionSubmitted:
		out.Action = app.ActionSubmit
	case FormActionNextTab:
		out.Action = app.ActionNextTab
	case FormActionPrevTab:
		out.Action = app.ActionPrevTab
	}
	return out, nil
}

func (v *View) Keyboard(ctx context.Context, req app.KeyboardRequest) (string, error) {
	text, err := Keyboard(ctx, KeyboardOptions{
		Prompt:    req.Prompt,
		Initial:   req.Initial,
		Numeric:   req.Numeric,
		MaxLength: req.MaxLength,
	})
	return text, viewErr(err)
}

func (v *View) Notice(ctx context.Context, title, message, button string) error {
	return viewErr(Notice(ctx, title, message, button))
}

func (v *View) Confirm(ctx context.Context, req app.ConfirmRequest) (bool, error) {
	ok, err := Confirm(ctx, req.Title, req.Message, req.Confirm, req.Cancel)
	return ok, viewErr(err)
}

// PickPhoto scans the photo directory in the background, then lets the user
// choose one file. An empty or unreadable directory shows a notice and
// counts as cancelled.
func (v *View) PickPhoto(ctx context.Context) (string, error) {
	photos, err := v.findPhotos(ctx)
	if err != nil {
		return "", viewErr(err)
	}

	if len(photos) == 0 {
		empty := v.tr.T(i18n.PickerEmpty, map[string]any{"Dir": v.photos.Dir})
		if err := Notice(ctx, v.tr.T(i18n.PickerTitle), empty, v.tr.T(i18n.ActionOK)); err != nil {
			return "", viewErr(err)
		}
		return "", app.ErrCancelled
	}

	items := make([]ListItem, len(photos))
	for i, p := range photos {
		items[i] = ListItem{Text: filepath.Base(p), ImagePath: p}
	}

	res, err := List(ctx, ListOptions{
		Title: v.tr.T(i18n.PickerTitle),
		Items: items,
		FooterHelpItems: []FooterHelpItem{
			{"B", v.tr.T(i18n.ActionBack)},
			{"A", v.tr.T(i18n.ActionSelect)},
		},
	})
	if err != nil {
		return "", viewErr(err)
	}
	return photos[res.Index], nil
}

// findPhotos scans the photo directory behind a loading message. A failed scan
// counts as no photos. The scan result is only read once the background task
// has reported back, since an aborted loop leaves it running.
func (v *View) findPhotos(ctx context.Context) ([]string, error) {
	var found []string
	err := v.process(ctx, v.tr.T(i18n.PickerLoading), func(context.Context) error {
		var err error
		found, err = v.scan(v.photos.Dir, v.photos.Extensions)
		return err
	})
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, ErrQuit), IsInfrastructureError(err), ctx.Err() != nil:
		return nil, err
	default:
		logging.Logger().Warn("Photo scan failed", "dir", v.photos.Dir, "error", err)
		return nil, nil
	}
}
