package i18n

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_English(t *testing.T) {
	tr := MustNew("en")

	assert.Equal(t, "Maximum of 5 products allowed!", tr.T(CapacityError))
	assert.Equal(t, "3/5", tr.T(CountBadge, map[string]any{"Count": 3, "Max": 5}))
	assert.Equal(t, `Are you sure you want to delete "Lamp"?`, tr.T(DeleteConfirmList, map[string]any{"Name": "Lamp"}))
	assert.Equal(t, "$12.50", tr.T(PriceTag, map[string]any{"Price": "12.50"}))
}

func TestTranslator_SpanishFallsBackToEnglish(t *testing.T) {
	tr := MustNew("es")

	assert.Equal(t, "Mis productos", tr.T(ProductsTitle))
	// Not translated, English wins.
	assert.Equal(t, "OK", tr.T(ActionOK))
	assert.Equal(t, "2/5", tr.T(CountBadge, map[string]any{"Count": 2, "Max": 5}))
}

func TestTranslator_RegionalTag(t *testing.T) {
	tr := MustNew("es-MX")
	assert.Equal(t, "Mis productos", tr.T(ProductsTitle))
}

func TestTranslator_UnknownLanguage(t *testing.T) {
	tr := MustNew("not a tag")
	assert.Equal(t, "My Products", tr.T(ProductsTitle))
	assert.Equal(t, "en", tr.Language().String())
}

func TestTranslator_MissingID(t *testing.T) {
	tr := MustNew("en")
	assert.Equal(t, "NoSuchMessage", tr.T("NoSuchMessage"))
}

// Every exported id must be present in the English bundle.
func TestMessages_AllDefinedInEnglish(t *testing.T) {
	data, err := localeFS.ReadFile("locales/active.en.toml")
	require.NoError(t, err)

	var defined map[string]any
	require.NoError(t, toml.Unmarshal(data, &defined))

	ids := []string{
		TabProducts, TabAddProduct, ProductsTitle, CountBadge, EmptyTitle, EmptySubtitle, PriceTag,
		DeleteTitle, DeleteConfirmList, DeleteConfirmDetail,
		ActionCancel, ActionDelete, ActionOK, ActionBack, ActionOpen, ActionAdd, ActionQuit, ActionTabs,
		ActionEdit, ActionGoBack, ActionSelect,
		DetailTitle, NotFoundTitle, NotFoundBody, LabelCreated, LabelPrice, StatsTitle, LabelProductID,
		LabelDaysOld, DateLayout,
		AddTitle, LabelName, LabelPriceInput, LabelPhoto, PlaceholderName, PlaceholderPrice, PlaceholderPhoto,
		SubmitButton, LimitWarning,
		ValidationTitle, ValidationName, ValidationNameLength, ValidationPriceEmpty, ValidationPriceInvalid, ValidationPhoto,
		LimitTitle, LimitBody,
		ErrorTitle, SuccessTitle, SuccessBody, CapacityError,
		QuitTitle, QuitBody, PickerTitle, PickerEmpty, PickerLoading,
	}

	for _, id := range ids {
		entry, ok := defined[id]
		if assert.True(t, ok, "missing %s", id) {
			assert.Equal(t, reflect.Map, reflect.TypeOf(entry).Kind(), "%s must be a table", id)
		}
	}
}
