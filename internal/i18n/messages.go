package i18n

// Message ids. Each id must exist in locales/active.en.toml.
const (
	TabProducts   = "TabProducts"
	TabAddProduct = "TabAddProduct"

	ProductsTitle = "ProductsTitle"
	CountBadge    = "CountBadge"
	EmptyTitle    = "EmptyTitle"
	EmptySubtitle = "EmptySubtitle"
	PriceTag      = "PriceTag"

	DeleteTitle         = "DeleteTitle"
	DeleteConfirmList   = "DeleteConfirmList"
	DeleteConfirmDetail = "DeleteConfirmDetail"

	ActionCancel = "ActionCancel"
	ActionDelete = "ActionDelete"
	ActionOK     = "ActionOK"
	ActionBack   = "ActionBack"
	ActionOpen   = "ActionOpen"
	ActionAdd    = "ActionAdd"
	ActionQuit   = "ActionQuit"
	ActionTabs   = "ActionTabs"
	ActionEdit   = "ActionEdit"
	ActionGoBack = "ActionGoBack"
	ActionSelect = "ActionSelect"

	DetailTitle    = "DetailTitle"
	NotFoundTitle  = "NotFoundTitle"
	NotFoundBody   = "NotFoundBody"
	LabelCreated   = "LabelCreated"
	LabelPrice     = "LabelPrice"
	StatsTitle     = "StatsTitle"
	LabelProductID = "LabelProductID"
	LabelDaysOld   = "LabelDaysOld"
	DateLayout     = "DateLayout"

	AddTitle         = "AddTitle"
	LabelName        = "LabelName"
	LabelPriceInput  = "LabelPriceInput"
	LabelPhoto       = "LabelPhoto"
	PlaceholderName  = "PlaceholderName"
	PlaceholderPrice = "PlaceholderPrice"
	PlaceholderPhoto = "PlaceholderPhoto"
	SubmitButton     = "SubmitButton"
	LimitWarning     = "LimitWarning"

	ValidationTitle        = "ValidationTitle"
	ValidationName         = "ValidationName"
	ValidationNameLength   = "ValidationNameLength"
	ValidationPriceEmpty   = "ValidationPriceEmpty"
	ValidationPriceInvalid = "ValidationPriceInvalid"
	ValidationPhoto        = "ValidationPhoto"
	LimitTitle             = "LimitTitle"
	LimitBody              = "LimitBody"

	ErrorTitle    = "ErrorTitle"
	SuccessTitle  = "SuccessTitle"
	SuccessBody   = "SuccessBody"
	CapacityError = "CapacityError"

	QuitTitle = "QuitTitle"
	QuitBody  = "QuitBody"

	PickerTitle   = "PickerTitle"
	PickerEmpty   = "PickerEmpty"
	PickerLoading = "PickerLoading"
)
