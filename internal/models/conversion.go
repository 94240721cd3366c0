package models

// ConversionRequest represents a validated currency conversion request.
// Date is optional; when empty the conversion service substitutes yesterday,
// the most recent date with settled rates.
// swagger:model ConversionRequest
type ConversionRequest struct {
	// Source currency
	// required: true
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// example: EUR
	ToCurrency string `json:"to_currency"`

	// Amount to convert
	// required: true
	// example: 100.0
	Amount float64 `json:"amount"`

	// Settlement date in YYYY-MM-DD format
	// example: 2024-01-01
	Date string `json:"date,omitempty"`
}

// HistoricalRate is a single currency rate as returned by the provider.
type HistoricalRate struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// RatesMeta carries provider metadata for a rates response.
type RatesMeta struct {
	LastUpdatedAt string `json:"last_updated_at"`
}

// HistoricalRatesResponse mirrors the provider's /v3/historical payload.
type HistoricalRatesResponse struct {
	Data map[string]HistoricalRate `json:"data"`
	Meta RatesMeta                 `json:"meta"`
}

// ProcessedConversionResult is the shaped outcome of a successful conversion.
// ConvertedAmount is rounded to 2 decimal places; ExchangeRate is the
// unrounded provider rate.
// swagger:model ProcessedConversionResult
type ProcessedConversionResult struct {
	// Amount before conversion
	// example: 100.0
	OriginalAmount float64 `json:"original_amount"`

	// Amount after conversion, rounded to 2 decimal places
	// example: 85.0
	ConvertedAmount float64 `json:"converted_amount"`

	// Source currency
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// example: EUR
	ToCurrency string `json:"to_currency"`

	// Unrounded exchange rate applied
	// example: 0.85
	ExchangeRate float64 `json:"exchange_rate"`

	// Settlement date used for the conversion
	// example: 2024-01-01
	Date string `json:"date"`

	// Provider timestamp of the rate data
	// example: 2024-01-01T23:59:59Z
	LastUpdatedAt string `json:"last_updated_at"`
}

// ConversionEvent is published to Kafka after each successful conversion.
type ConversionEvent struct {
	ConversionID    string  `json:"conversion_id"`
	Timestamp       int64   `json:"timestamp"`
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	OriginalAmount  float64 `json:"original_amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
	Date            string  `json:"date"`
}
