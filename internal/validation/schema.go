package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// FormInput is the raw, unvalidated state of the conversion form.
type FormInput struct {
	FromCurrency string  `json:"from_currency" validate:"required"`
	ToCurrency   string  `json:"to_currency" validate:"required"`
	Amount       float64 `json:"amount" validate:"gte=0.01"`
	Date         string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the set of validation failures for one form submission.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField returns the failures keyed by field name for inline rendering.
func (e FieldErrors) ByField() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := m[fe.Field]; !ok {
			m[fe.Field] = fe.Message
		}
	}
	return m
}

// messages maps field names to their user-facing validation messages.
// The amount message covers both the range rule and numeric coercion
// failures, which are folded into the same rule.
var messages = map[string]string{
	"from_currency": "Please select a currency to convert from",
	"to_currency":   "Please select a currency to convert to",
	"amount":        "Amount must be greater than 0",
	"date":          "Date must be in YYYY-MM-DD format",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under json field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks raw form input against the conversion schema and returns
// either a validated ConversionRequest or the field-level failures.
func Validate(input FormInput) (models.ConversionRequest, FieldErrors) {
	if err := validate.Struct(input); err != nil {
		var fieldErrs FieldErrors
		for _, ve := range err.(validator.ValidationErrors) {
			msg, ok := messages[ve.Field()]
			if !ok {
				msg = "Invalid value"
			}
			fieldErrs = append(fieldErrs, FieldError{Field: ve.Field(), Message: msg})
		}
		return models.ConversionRequest{}, fieldErrs
	}

	return models.ConversionRequest{
		FromCurrency: input.FromCurrency,
		ToCurrency:   input.ToCurrency,
		Amount:       input.Amount,
		Date:         input.Date,
	}, nil
}
