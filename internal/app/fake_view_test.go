package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yiponline/shelf/internal/i18n"
	"github.com/yiponline/shelf/internal/store"
	"github.com/yiponline/shelf/pkg/router"
)

var errUnscripted = errors.New("fake view: no scripted response")

type notice struct {
	Title   string
	Message string
}

type scripted[T any] struct {
	value T
	err   error
}

// fakeView records what screens asked for and answers from per-call queues.
// An empty queue fails the call with errUnscripted.
type fakeView struct {
	splashes []string
	lists    []ListScreen
	details  []DetailScreen
	forms    []FormScreen
	prompts  []KeyboardRequest
	notices  []notice
	confirms []ConfirmRequest

	splashErr error
	listQ     []scripted[Result]
	detailQ   []scripted[Result]
	formQ     []scripted[Result]
	keyboardQ []scripted[string]
	noticeQ   []error
	confirmQ  []scripted[bool]
}

func pop[T any](q *[]scripted[T]) (T, error) {
	if len(*q) == 0 {
		var zero T
		return zero, errUnscripted
	}
	next := (*q)[0]
	*q = (*q)[1:]
	return next.value, next.err
}

func (f *fakeView) Splash(ctx context.Context, title string, delay time.Duration) error {
	f.splashes = append(f.splashes, title)
	if f.splashErr != nil {
		return f.splashErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (f *fakeView) List(ctx context.Context, screen ListScreen) (Result, error) {
	f.lists = append(f.lists, screen)
	return pop(&f.listQ)
}

func (f *fakeView) Detail(ctx context.Context, screen DetailScreen) (Result, error) {
	f.details = append(f.details, screen)
	return pop(&f.detailQ)
}

func (f *fakeView) Form(ctx context.Context, screen FormScreen) (Result, error) {
	f.forms = append(f.forms, screen)
	return pop(&f.formQ)
}

func (f *fakeView) Keyboard(ctx context.Context, req KeyboardRequest) (string, error) {
	f.prompts = append(f.prompts, req)
	return pop(&f.keyboardQ)
}

func (f *fakeView) Notice(ctx context.Context, title, message, button string) error {
	f.notices = append(f.notices, notice{title, message})
	if len(f.noticeQ) == 0 {
		return nil
	}
	err := f.noticeQ[0]
	f.noticeQ = f.noticeQ[1:]
	return err
}

func (f *fakeView) Confirm(ctx context.Context, req ConfirmRequest) (bool, error) {
	f.confirms = append(f.confirms, req)
	return pop(&f.confirmQ)
}

func (f *fakeView) list(action Action, index int) *fakeView {
	f.listQ = append(f.listQ, scripted[Result]{value: Result{Action: action, Index: index}})
	return f
}

func (f *fakeView) detail(action Action) *fakeView {
	f.detailQ = append(f.detailQ, scripted[Result]{value: Result{Action: action}})
	return f
}

func (f *fakeView) form(action Action, index int) *fakeView {
	f.formQ = append(f.formQ, scripted[Result]{value: Result{Action: action, Index: index}})
	return f
}

func (f *fakeView) keyboard(value string, err error) *fakeView {
	f.keyboardQ = append(f.keyboardQ, scripted[string]{value: value, err: err})
	return f
}

func (f *fakeView) confirm(ok bool) *fakeView {
	f.confirmQ = append(f.confirmQ, scripted[bool]{value: ok})
	return f
}

type fakePicker struct {
	photos []scripted[string]
	calls  int
}

func (p *fakePicker) PickPhoto(ctx context.Context) (string, error) {
	p.calls++
	return pop(&p.photos)
}

type harness struct {
	app    *App
	view   *fakeView
	photos *fakePicker
	store  *store.Store
	nav    *router.Navigator
	now    time.Time
}

// newUnboundHarness builds an App whose coordinator is not bound yet, for
// tests that go through Run.
func newUnboundHarness(t *testing.T) *harness {
	t.Helper()

	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	s, err := store.New(store.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	h := &harness{
		view:   &fakeView{},
		photos: &fakePicker{},
		store:  s,
		now:    now,
	}

	h.app, err = New(Options{
		Store:       s,
		View:        h.view,
		Photos:      h.photos,
		Translator:  i18n.MustNew("en"),
		SplashDelay: time.Millisecond,
		Clock:       func() time.Time { return now.Add(72 * time.Hour) },
	})
	require.NoError(t, err)
	return h
}

// newHarness binds the coordinator to a navigator holding history, so screen
// funcs can be called directly.
func newHarness(t *testing.T, history ...router.Entry) *harness {
	t.Helper()

	h := newUnboundHarness(t)
	h.nav = router.NewNavigator(Routes(), nil)
	require.NoError(t, h.app.Coordinator().Bind(h.nav))
	if len(history) > 0 {
		require.Equal(t, router.StatusDispatched, h.nav.Reset(history, len(history)-1))
	}
	return h
}

func (h *harness) addProducts(t *testing.T, names ...string) []store.Product {
	t.Helper()
	out := make([]store.Product, 0, len(names))
	for _, name := range names {
		p, ok := h.store.AddProduct(name, decimal.RequireFromString("9.5"), "/photos/"+name+".png")
		require.True(t, ok)
		out = append(out, p)
	}
	return out
}

func (h *harness) top(t *testing.T) router.Entry {
	t.Helper()
	e, ok := h.nav.Current()
	require.True(t, ok)
	return e
}

func (h *harness) routes() []router.Route {
	var out []router.Route
	for _, e := range h.nav.History() {
		out = append(out, e.Route)
	}
	return out
}
