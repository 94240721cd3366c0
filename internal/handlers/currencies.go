package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source currencies.go -destination mock_currencies.go -package handlers

// CurrencyLister serves the supported-currency list.
type CurrencyLister interface {
	GetCurrencies(ctx context.Context) (*models.CurrenciesResponse, error)
}

// CurrenciesErrorResponse represents a failure to fetch currencies.
// swagger:model CurrenciesErrorResponse
type CurrenciesErrorResponse struct {
	// Error message
	// default: Failed to retrieve currencies
	Error string `json:"error"`
}

// NewGetCurrenciesHandler returns an HTTP handler for the supported-currency list.
// @Summary List supported currencies
// @Description Returns the currencies supported by the rate provider
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse "Supported currencies"
// @Failure 500 {object} handlers.CurrenciesErrorResponse "Failed to retrieve currencies"
// @Router /currencies [get]
func NewGetCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currencies, err := svc.GetCurrencies(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(CurrenciesErrorResponse{
				Error: "Failed to retrieve currencies",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(currencies)
	}
}
