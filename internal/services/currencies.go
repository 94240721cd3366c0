package services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source currencies.go -destination mock_currencies.go -package services

// CurrencyListFetcher fetches the supported-currency list from the provider.
type CurrencyListFetcher interface {
	GetCurrencies(ctx context.Context) (*models.CurrenciesResponse, error)
}

// CurrencyListCache caches the supported-currency list.
type CurrencyListCache interface {
	GetCurrencies(ctx context.Context) (*models.CurrenciesResponse, error)
	SetCurrencies(ctx context.Context, currencies *models.CurrenciesResponse) error
}

// CurrenciesService serves the supported-currency list, preferring the
// cache and falling back to the provider.
type CurrenciesService struct {
	fetcher CurrencyListFetcher
	cache   CurrencyListCache
}

// NewCurrenciesService creates a new service instance. cache may be nil,
// in which case every call goes to the provider.
func NewCurrenciesService(fetcher CurrencyListFetcher, cache CurrencyListCache) *CurrenciesService {
	return &CurrenciesService{
		fetcher: fetcher,
		cache:   cache,
	}
}

// GetCurrencies returns the supported currencies. The currency set changes
// rarely, so cached lists are served for their full TTL.
func (svc *CurrenciesService) GetCurrencies(ctx context.Context) (*models.CurrenciesResponse, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.GetCurrencies(ctx); err == nil {
			return cached, nil
		}
	}

	currencies, err := svc.fetcher.GetCurrencies(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch currencies from provider", "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetCurrencies(ctx, currencies); err != nil {
			logger.Log.Errorw("failed to cache currencies", "error", err)
		}
	}

	return currencies, nil
}
