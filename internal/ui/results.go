package ui

// ListAction is what the user did in a List.
type ListAction int

const (
	ListActionSelected           ListAction = iota // A on a row
	ListActionTriggered                            // X, when EnableAction is set
	ListActionSecondaryTriggered                   // Y, when EnableSecondaryAction is set
	ListActionNextTab                              // R1, when tabs are shown
	ListActionPrevTab                              // L1, when tabs are shown
)

type ListResult struct {
	Action ListAction
	Index  int
}

// DetailAction is what the user did in a Detail page.
type DetailAction int

const (
	DetailActionNone      DetailAction = iota
	DetailActionConfirmed              // A
	DetailActionTriggered              // X, when EnableAction is set
)

type DetailResult struct {
	Action DetailAction
}

// FormAction is what the user did in a Form.
type FormAction int

const (
	FormActionSelected  FormAction = iota // A on a row. Index len(Fields) is the submit row.
	FormActionSubmitted                   // Start
	FormActionNextTab
	FormActionPrevTab
)

type FormResult struct {
	Action FormAction
	Index  int
}
