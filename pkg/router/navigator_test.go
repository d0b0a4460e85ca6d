package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stackOnboarding StackName = "onboarding"
	stackApp        StackName = "app"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		RouteEntry{Stack: stackOnboarding, Route: "splash"},
		RouteEntry{Stack: stackApp, Route: "dashboard"},
		RouteEntry{Stack: stackApp, Route: "products"},
		RouteEntry{Stack: stackApp, Route: "detail"},
	)
	require.NoError(t, err)
	return table
}

func routesOf(entries []Entry) []Route {
	out := make([]Route, len(entries))
	for i, e := range entries {
		out[i] = e.Route
	}
	return out
}

func TestNewTable_Validation(t *testing.T) {
	_, err := NewTable(RouteEntry{Stack: stackApp, Route: "a"}, RouteEntry{Stack: stackApp, Route: "a"})
	assert.ErrorContains(t, err, "duplicate route")

	_, err = NewTable(RouteEntry{Stack: stackApp})
	assert.ErrorContains(t, err, "empty name")

	_, err = NewTable(RouteEntry{Route: "a"})
	assert.ErrorContains(t, err, "no stack")

	assert.Panics(t, func() { MustTable(RouteEntry{Route: "a"}) })
}

func TestTable_Queries(t *testing.T) {
	table := testTable(t)

	assert.True(t, table.Has("products"))
	assert.False(t, table.Has("settings"))
	assert.Equal(t, stackOnboarding, table.StackOf("splash"))
	assert.Equal(t, StackName(""), table.StackOf("settings"))

	app := table.InStack(stackApp)
	require.Len(t, app, 3)
	assert.Equal(t, Route("dashboard"), app[0].Route)

	routes := table.Routes()
	routes[0].Route = "mutated"
	assert.True(t, table.Has("splash"))
}

func TestNavigator_NavigateAndGoBack(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	require.Equal(t, StatusDispatched, nav.Reset([]Entry{{Route: "dashboard"}}, 0))

	assert.Equal(t, StatusDispatched, nav.Navigate("detail", Params{"productId": "42"}))
	top, ok := nav.Current()
	require.True(t, ok)
	assert.Equal(t, Route("detail"), top.Route)
	assert.Equal(t, "42", top.Params["productId"])

	assert.Equal(t, StatusDispatched, nav.GoBack())
	top, _ = nav.Current()
	assert.Equal(t, Route("dashboard"), top.Route)

	assert.Equal(t, StatusIgnored, nav.GoBack())
	assert.Equal(t, []Route{"dashboard"}, routesOf(nav.History()))
}

func TestNavigator_NavigateUnknownRoute(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	nav.Reset([]Entry{{Route: "dashboard"}}, 0)

	assert.Equal(t, StatusUnresolved, nav.Navigate("settings", nil))
	assert.Equal(t, []Route{"dashboard"}, routesOf(nav.History()))
}

func TestNavigator_NavigateAcrossStacksRejected(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	nav.Reset([]Entry{{Route: "splash"}}, 0)

	assert.Equal(t, StatusRejected, nav.Navigate("dashboard", nil))
	assert.Equal(t, []Route{"splash"}, routesOf(nav.History()))

	nav.Reset([]Entry{{Route: "dashboard"}}, 0)
	assert.Equal(t, StatusRejected, nav.Navigate("splash", nil))
}

func TestNavigator_ResetEvictsHistory(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	nav.Reset([]Entry{{Route: "splash"}}, 0)

	assert.Equal(t, StatusDispatched, nav.Reset([]Entry{{Route: "dashboard"}}, 0))
	assert.False(t, nav.CanGoBack())
	assert.Equal(t, StatusIgnored, nav.GoBack())

	top, _ := nav.Current()
	assert.Equal(t, Route("dashboard"), top.Route)
}

func TestNavigator_ResetIndex(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)

	status := nav.Reset([]Entry{{Route: "dashboard"}, {Route: "products"}, {Route: "detail"}}, 1)
	assert.Equal(t, StatusDispatched, status)
	assert.Equal(t, []Route{"dashboard", "products"}, routesOf(nav.History()))
}

func TestNavigator_ResetRejectedIsAtomic(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	nav.Reset([]Entry{{Route: "dashboard"}, {Route: "products"}}, 1)
	before := nav.History()

	assert.Equal(t, StatusRejected, nav.Reset(nil, 0))
	assert.Equal(t, StatusRejected, nav.Reset([]Entry{{Route: "dashboard"}}, 1))
	assert.Equal(t, StatusRejected, nav.Reset([]Entry{{Route: "dashboard"}}, -1))
	assert.Equal(t, StatusRejected, nav.Reset([]Entry{{Route: "dashboard"}, {Route: "nowhere"}}, 1))

	assert.Equal(t, before, nav.History())
}

func TestNavigator_ParamsAreCopied(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	params := Params{"productId": "1"}
	nav.Reset([]Entry{{Route: "detail", Params: params}}, 0)

	params["productId"] = "2"
	top, _ := nav.Current()
	assert.Equal(t, "1", top.Params["productId"])

	top.Params["productId"] = "3"
	again, _ := nav.Current()
	assert.Equal(t, "1", again.Params["productId"])
}

func TestNavigator_SetParams(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	assert.Equal(t, StatusIgnored, nav.SetParams(Params{"tab": "products"}))

	nav.Reset([]Entry{{Route: "dashboard", Params: Params{"initial": "add-product"}}}, 0)
	assert.Equal(t, StatusDispatched, nav.SetParams(Params{"initial": nil, "tab": "add-product"}))

	top, _ := nav.Current()
	_, hasInitial := top.Param("initial")
	assert.False(t, hasInitial)
	tab, ok := top.Param("tab")
	assert.True(t, ok)
	assert.Equal(t, "add-product", tab)
}

func TestNavigator_OnChange(t *testing.T) {
	nav := NewNavigator(testTable(t), nil)
	var seen []Route
	nav.OnChange(func(top Entry, ok bool) {
		if ok {
			seen = append(seen, top.Route)
		}
	})

	nav.Reset([]Entry{{Route: "dashboard"}}, 0)
	nav.Navigate("products", nil)
	nav.Navigate("nowhere", nil)
	nav.GoBack()
	nav.GoBack()

	assert.Equal(t, []Route{"dashboard", "products", "dashboard"}, seen)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "dispatched", StatusDispatched.String())
	assert.Equal(t, "dropped", StatusDropped.String())
	assert.Equal(t, "unresolved", StatusUnresolved.String())
	assert.Equal(t, "ignored", StatusIgnored.String())
	assert.Equal(t, "rejected", StatusRejected.String())
	assert.Equal(t, "unknown", Status(99).String())
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(Entry{Route: "a"})
	s.Push(Entry{Route: "b"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Route("b"), s.Peek().Route)

	popped := s.Pop()
	require.NotNil(t, popped)
	assert.Equal(t, Route("b"), popped.Route)

	s.Replace([]Entry{{Route: "x"}, {Route: "y"}, {Route: "z"}})
	assert.Equal(t, []Route{"x", "y", "z"}, routesOf(s.Entries()))

	s.Clear()
	assert.True(t, s.IsEmpty())
}
