package cachekey

import (
	"fmt"
	"strconv"
)

// latestToken stands in for the date when none was supplied.
const latestToken = "latest"

// Params is the semantic identity of a conversion request.
// Date is a YYYY-MM-DD string; empty means "latest".
type Params struct {
	FromCurrency string
	ToCurrency   string
	Amount       float64
	Date         string
}

// Key derives a deterministic cache key for a conversion request:
// {from}-{to}-{amount}-{date|latest}. Two requests produce equal keys
// iff all four fields compare equal.
func Key(p Params) string {
	date := p.Date
	if date == "" {
		date = latestToken
	}
	amount := strconv.FormatFloat(p.Amount, 'f', -1, 64)
	return fmt.Sprintf("%s-%s-%s-%s", p.FromCurrency, p.ToCurrency, amount, date)
}

// Equal reports whether two conversion requests are equivalent for
// memoization purposes.
func Equal(a, b Params) bool {
	return Key(a) == Key(b)
}
