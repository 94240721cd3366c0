package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// RequestError is returned when the provider responds outside the 2xx range.
type RequestError struct {
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("API request failed: %s", e.Status)
}

// CurrencyAPIFacade performs authenticated calls against the exchange-rate
// provider's REST API. It does no caching and no retries.
type CurrencyAPIFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewCurrencyAPIFacade creates a facade for the given provider base URL and
// API key. A zero timeout leaves outbound calls unbounded.
func NewCurrencyAPIFacade(baseURL, apiKey string, timeout time.Duration) *CurrencyAPIFacade {
	return &CurrencyAPIFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// BuildURL appends the API key plus the supplied query parameters to the
// configured base URL. Parameters with empty values are skipped.
func (f *CurrencyAPIFacade) BuildURL(path string, params map[string]string) string {
	q := url.Values{}
	q.Set("apikey", f.apiKey)
	for key, value := range params {
		if value != "" {
			q.Set(key, value)
		}
	}
	return f.baseURL + path + "?" + q.Encode()
}

// get performs an HTTP GET and decodes the JSON body into out. The API key
// is sent both as a query parameter and as a header. Transport errors
// propagate unchanged.
func (f *CurrencyAPIFacade) get(ctx context.Context, path string, params map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BuildURL(path, params), nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("currency API request failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Errorw("currency API returned non-2xx status",
			"path", path, "status", resp.Status)
		return &RequestError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// GetCurrencies fetches the provider's list of supported currencies.
func (f *CurrencyAPIFacade) GetCurrencies(ctx context.Context) (*models.CurrenciesResponse, error) {
	var resp models.CurrenciesResponse
	if err := f.get(ctx, "/v3/currencies", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetHistoricalRates fetches settled rates for the given date, quoted in
// baseCurrency for the comma-separated target currencies.
func (f *CurrencyAPIFacade) GetHistoricalRates(ctx context.Context, date, baseCurrency, currencies string) (*models.HistoricalRatesResponse, error) {
	params := map[string]string{
		"date":          date,
		"base_currency": baseCurrency,
		"currencies":    currencies,
	}

	var resp models.HistoricalRatesResponse
	if err := f.get(ctx, "/v3/historical", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
