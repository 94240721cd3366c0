package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source convert.go -destination mock_convert.go -package handlers

// Converter performs validated currency conversions.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ProcessedConversionResult, error)
}

// ValidationErrorResponse carries field-level validation failures.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Field-level error messages keyed by field name
	Errors map[string]string `json:"errors"`
}

// ConvertErrorResponse represents a non-validation conversion failure.
// swagger:model ConvertErrorResponse
type ConvertErrorResponse struct {
	// Error message
	// default: an error occurred
	Error string `json:"error"`
}

// decodeFormInput decodes a conversion form payload. A JSON type error on
// the amount field is folded into the amount validation message rather
// than reported as a malformed body.
func decodeFormInput(r *http.Request) (validation.FormInput, validation.FieldErrors, error) {
	var input validation.FormInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "amount" {
			return input, validation.FieldErrors{
				{Field: "amount", Message: "Amount must be greater than 0"},
			}, nil
		}
		return input, nil, err
	}
	return input, nil, nil
}

// NewConvertHandler handles stateless currency conversion requests.
// @Summary Convert currency
// @Description Converts an amount between two currencies using the settled rate for the given date (yesterday when omitted).
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body validation.FormInput true "Conversion Request"
// @Success 200 {object} models.ProcessedConversionResult "Conversion result"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 502 {object} handlers.ConvertErrorResponse "Provider failure"
// @Router /convert [post]
func NewConvertHandler(converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		input, ferrs, err := decodeFormInput(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "Invalid request body"})
			return
		}
		if ferrs == nil {
			_, ferrs = validation.Validate(input)
		}
		if ferrs != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: ferrs.ByField()})
			return
		}

		req := models.ConversionRequest{
			FromCurrency: input.FromCurrency,
			ToCurrency:   input.ToCurrency,
			Amount:       input.Amount,
			Date:         input.Date,
		}

		result, err := converter.Convert(ctx, req)
		if err != nil {
			writeConversionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(result)
	}
}

// writeConversionError maps non-validation conversion failures onto the
// generic retry-prompt response.
func writeConversionError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var reqErr *facades.RequestError
	var rateErr *services.RateNotFoundError
	switch {
	case errors.As(err, &reqErr), errors.As(err, &rateErr):
		w.WriteHeader(http.StatusBadGateway)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = json.NewEncoder(w).Encode(ConvertErrorResponse{Error: "an error occurred"})
}
