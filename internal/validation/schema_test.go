package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      FormInput
		wantErrors map[string]string
	}{
		{
			name:  "valid_with_date",
			input: FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: 100, Date: "2024-01-01"},
		},
		{
			name:  "valid_without_date",
			input: FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: 0.5},
		},
		{
			name:  "amount_at_lower_boundary",
			input: FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: 0.01},
		},
		{
			name:       "amount_just_below_boundary",
			input:      FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: 0.00999},
			wantErrors: map[string]string{"amount": "Amount must be greater than 0"},
		},
		{
			name:       "amount_zero",
			input:      FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: 0},
			wantErrors: map[string]string{"amount": "Amount must be greater than 0"},
		},
		{
			name:       "amount_negative",
			input:      FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: -5},
			wantErrors: map[string]string{"amount": "Amount must be greater than 0"},
		},
		{
			name:       "missing_from_currency",
			input:      FormInput{ToCurrency: "EUR", Amount: 100},
			wantErrors: map[string]string{"from_currency": "Please select a currency to convert from"},
		},
		{
			name:       "missing_to_currency",
			input:      FormInput{FromCurrency: "USD", Amount: 100},
			wantErrors: map[string]string{"to_currency": "Please select a currency to convert to"},
		},
		{
			name:  "malformed_date",
			input: FormInput{FromCurrency: "USD", ToCurrency: "EUR", Amount: 100, Date: "01/01/2024"},
			wantErrors: map[string]string{
				"date": "Date must be in YYYY-MM-DD format",
			},
		},
		{
			name:  "everything_missing",
			input: FormInput{},
			wantErrors: map[string]string{
				"from_currency": "Please select a currency to convert from",
				"to_currency":   "Please select a currency to convert to",
				"amount":        "Amount must be greater than 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ferrs := Validate(tt.input)

			if tt.wantErrors == nil {
				require.Nil(t, ferrs)
				assert.Equal(t, tt.input.FromCurrency, req.FromCurrency)
				assert.Equal(t, tt.input.ToCurrency, req.ToCurrency)
				assert.Equal(t, tt.input.Amount, req.Amount)
				assert.Equal(t, tt.input.Date, req.Date)
				return
			}

			require.NotNil(t, ferrs)
			assert.Equal(t, tt.wantErrors, ferrs.ByField())
		})
	}
}

func TestValidate_EqualCurrenciesAllowed(t *testing.T) {
	// Both currencies are validated independently; nothing prevents them
	// from being equal.
	_, ferrs := Validate(FormInput{FromCurrency: "USD", ToCurrency: "USD", Amount: 10})
	assert.Nil(t, ferrs)
}

func TestFieldErrors_Error(t *testing.T) {
	ferrs := FieldErrors{
		{Field: "amount", Message: "Amount must be greater than 0"},
	}
	assert.Contains(t, ferrs.Error(), "amount")
	assert.Contains(t, ferrs.Error(), "Amount must be greater than 0")
}
