package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	f := NewCurrencyAPIFacade("https://api.example.com", "secret", time.Second)

	t.Run("appends_api_key", func(t *testing.T) {
		raw := f.BuildURL("/v3/currencies", nil)
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/v3/currencies", u.Path)
		assert.Equal(t, "secret", u.Query().Get("apikey"))
	})

	t.Run("includes_supplied_params", func(t *testing.T) {
		raw := f.BuildURL("/v3/historical", map[string]string{
			"date":          "2024-01-01",
			"base_currency": "USD",
			"currencies":    "EUR",
		})
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", u.Query().Get("date"))
		assert.Equal(t, "USD", u.Query().Get("base_currency"))
		assert.Equal(t, "EUR", u.Query().Get("currencies"))
	})

	t.Run("skips_empty_params", func(t *testing.T) {
		raw := f.BuildURL("/v3/historical", map[string]string{
			"date":          "",
			"base_currency": "USD",
		})
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.False(t, u.Query().Has("date"))
		assert.Equal(t, "USD", u.Query().Get("base_currency"))
	})

	t.Run("trims_trailing_slash", func(t *testing.T) {
		f := NewCurrencyAPIFacade("https://api.example.com/", "secret", time.Second)
		raw := f.BuildURL("/v3/currencies", nil)
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/v3/currencies", u.Path)
	})
}

func TestGetHistoricalRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/historical", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("apikey"))
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("date"))
		assert.Equal(t, "USD", r.URL.Query().Get("base_currency"))
		assert.Equal(t, "EUR", r.URL.Query().Get("currencies"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {"EUR": {"code": "EUR", "value": 0.85}},
			"meta": {"last_updated_at": "2024-01-01T23:59:59Z"}
		}`))
	}))
	defer srv.Close()

	f := NewCurrencyAPIFacade(srv.URL, "secret", time.Second)

	resp, err := f.GetHistoricalRates(context.Background(), "2024-01-01", "USD", "EUR")
	require.NoError(t, err)
	require.Contains(t, resp.Data, "EUR")
	assert.Equal(t, 0.85, resp.Data["EUR"].Value)
	assert.Equal(t, "2024-01-01T23:59:59Z", resp.Meta.LastUpdatedAt)
}

func TestGetCurrencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/currencies", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {"USD": {"code": "USD", "name": "US Dollar", "symbol": "$"}}
		}`))
	}))
	defer srv.Close()

	f := NewCurrencyAPIFacade(srv.URL, "secret", time.Second)

	resp, err := f.GetCurrencies(context.Background())
	require.NoError(t, err)
	require.Contains(t, resp.Data, "USD")
	assert.Equal(t, "US Dollar", resp.Data["USD"].Name)
}

func TestGet_Non2xxStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not_found", status: http.StatusNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "server_error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			f := NewCurrencyAPIFacade(srv.URL, "secret", time.Second)

			_, err := f.GetCurrencies(context.Background())
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Contains(t, reqErr.Error(), "API request failed")
		})
	}
}

func TestGet_TransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	f := NewCurrencyAPIFacade(srv.URL, "secret", time.Second)

	_, err := f.GetCurrencies(context.Background())
	require.Error(t, err)

	// Network-level failures are not wrapped in RequestError.
	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr))
}
