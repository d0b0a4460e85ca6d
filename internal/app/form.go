package app

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/yiponline/shelf/internal/i18n"
)

// Draft is the add product form as typed by the user. The name limit matches
// MaxNameLength.
type Draft struct {
	Name  string `validate:"required,max=50"`
	Price string `validate:"required,positive_decimal"`
	Photo string `validate:"required"`
}

// Problem is a validation failure, as message ids.
type Problem struct {
	Title   string
	Message string
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("positive_decimal", positiveDecimal); err != nil {
		panic(err)
	}
	return v
}

func positiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

// problems maps a failing field and tag to the message shown for it.
var problems = map[string]map[string]string{
	"Name": {
		"required": i18n.ValidationName,
		"max":      i18n.ValidationNameLength,
	},
	"Price": {
		"required":         i18n.ValidationPriceEmpty,
		"positive_decimal": i18n.ValidationPriceInvalid,
	},
	"Photo": {
		"required": i18n.ValidationPhoto,
	},
}

// Validate checks the draft in the order the user is told about problems and
// returns the parsed price. canAdd is advisory: the store enforces the cap again
// when the product is added.
func Validate(d Draft, canAdd bool) (decimal.Decimal, *Problem) {
	d.Name = strings.TrimSpace(d.Name)
	d.Price = strings.TrimSpace(d.Price)

	if err := draftValidator.Struct(d); err != nil {
		return decimal.Zero, problemFor(err)
	}
	if !canAdd {
		return decimal.Zero, &Problem{i18n.LimitTitle, i18n.LimitBody}
	}

	// Already checked by positive_decimal.
	price, _ := decimal.NewFromString(d.Price)
	return price, nil
}

// problemFor reports the first failing field. Field errors come back in
// struct field order.
func problemFor(err error) *Problem {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if msg, ok := problems[fe.Field()][fe.Tag()]; ok {
			return &Problem{i18n.ValidationTitle, msg}
		}
	}
	return &Problem{i18n.ValidationTitle, i18n.ValidationName}
}
