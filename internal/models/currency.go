package models

// Currency describes a supported currency as returned by the provider.
// swagger:model Currency
type Currency struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	SymbolNative  string   `json:"symbol_native"`
	DecimalDigits int      `json:"decimal_digits"`
	Rounding      float64  `json:"rounding"`
	Code          string   `json:"code"`
	NamePlural    string   `json:"name_plural"`
	Type          string   `json:"type"`
	Countries     []string `json:"countries"`
}

// CurrenciesResponse mirrors the provider's /v3/currencies payload.
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Data map[string]Currency `json:"data"`
}
