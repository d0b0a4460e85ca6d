package app

import (
	"context"
	"errors"
	"time"

	"github.com/yiponline/shelf/pkg/router"
)

var (
	// ErrCancelled is returned by a view or the photo picker when the user backs
	// out without choosing anything.
	ErrCancelled = errors.New("cancelled")

	// ErrQuit is returned by a view when the platform asks the program to close,
	// for example the window being closed.
	ErrQuit = errors.New("quit requested")
)

// Action is what the user did on a screen.
type Action int

const (
	ActionNone    Action = iota
	ActionSelect         // Confirm on the focused row or field
	ActionDelete         // Delete the focused row
	ActionAdd            // Shortcut to the add screen
	ActionBack           // Back button
	ActionNextTab        // Right shoulder
	ActionPrevTab        // Left shoulder
	ActionSubmit         // Start, or confirm on the submit button
)

// Result reports the action and the row or field it applies to.
type Result struct {
	Action Action
	Index  int
}

// Tabs is the tab strip of a tab host. A nil Tabs hides the strip.
type Tabs struct {
	Labels []string
	Active int
}

// ListItem is one row of a ListScreen.
type ListItem struct {
	Text   string
	Detail string // Right aligned, e.g. "$12.00"
	Image  string // Optional image path
}

// ListScreen is a selectable list with an optional count badge and empty state.
type ListScreen struct {
	Title        string
	Badge        string
	Tabs         *Tabs
	Items        []ListItem
	EmptyTitle   string
	EmptyMessage string
	Help         []Hint
}

// Field is a label and value pair on a DetailScreen.
type Field struct {
	Label string
	Value string
}

// Section groups Fields under a title.
type Section struct {
	Title  string
	Fields []Field
}

// DetailScreen is a read-only page. When Message is set the page is a plain
// message with a single confirm button, used for empty or missing states.
type DetailScreen struct {
	Title      string
	Image      string
	Heading    string
	Subheading string
	Sections   []Section
	Message    string
	Help       []Hint
}

// FieldKind selects the editor opened for a form field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldPhoto
)

// FormField is one editable row of a FormScreen.
type FormField struct {
	Label       string
	Value       string
	Placeholder string
	Kind        FieldKind
}

// FormScreen lists fields followed by a submit row. Focus == len(Fields)
// selects the submit row.
type FormScreen struct {
	Title   string
	Tabs    *Tabs
	Fields  []FormField
	Submit  string
	Warning string
	Focus   int
	Help    []Hint
}

// KeyboardRequest opens the on-screen keyboard for a single value.
type KeyboardRequest struct {
	Prompt    string
	Initial   string
	Numeric   bool
	MaxLength int // Zero for unlimited
}

// ConfirmRequest is a yes/no question. Cancel is focused first.
type ConfirmRequest struct {
	Title   string
	Message string
	Confirm string
	Cancel  string
}

// Hint is a footer entry pairing a button with its label, e.g. {"A", "Open"}.
type Hint struct {
	Button string
	Label  string
}

// View draws screens and waits for the user. Every call blocks until the user
// acts or ctx is cancelled, in which case ctx.Err() is returned.
type View interface {
	Splash(ctx context.Context, title string, delay time.Duration) error
	List(ctx context.Context, screen ListScreen) (Result, error)
	Detail(ctx context.Context, screen DetailScreen) (Result, error)
	Form(ctx context.Context, screen FormScreen) (Result, error)
	Keyboard(ctx context.Context, req KeyboardRequest) (string, error)
	Notice(ctx context.Context, title, message, button string) error
	Confirm(ctx context.Context, req ConfirmRequest) (bool, error)
}

// PhotoPicker asks the user for a single image and returns a reference to it.
// Backing out returns ErrCancelled.
type PhotoPicker interface {
	PickPhoto(ctx context.Context) (string, error)
}

// Navigation is the navigation capability handed to screens. *router.Coordinator
// implements it.
type Navigation interface {
	Navigate(route router.Route, params router.Params) router.Status
	GoBack() router.Status
	Reset(entries []router.Entry, index int) router.Status
	SetParams(params router.Params) router.Status
}
