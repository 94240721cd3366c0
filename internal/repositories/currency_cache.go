package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const currenciesKey = "currencies"

// CurrencyCacheRepository caches the provider's supported-currency list in
// Redis. The list changes rarely, so it is cached with a long TTL.
type CurrencyCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCurrencyCacheRepository creates a new repository instance with the given TTL.
func NewCurrencyCacheRepository(client *redis.Client, expiration time.Duration) *CurrencyCacheRepository {
	return &CurrencyCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetCurrencies fetches the cached currency list.
func (r *CurrencyCacheRepository) GetCurrencies(ctx context.Context) (*models.CurrenciesResponse, error) {
	val, err := r.client.Get(ctx, currenciesKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("currency list not found in cache")
		}
		logger.Log.Errorw("failed to read currency list from cache", "error", err)
		return nil, err
	}

	var currencies models.CurrenciesResponse
	if err := json.Unmarshal([]byte(val), &currencies); err != nil {
		logger.Log.Errorw("failed to unmarshal cached currency list", "error", err)
		return nil, err
	}

	return &currencies, nil
}

// SetCurrencies caches the currency list with expiration.
func (r *CurrencyCacheRepository) SetCurrencies(ctx context.Context, currencies *models.CurrenciesResponse) error {
	data, err := json.Marshal(currencies)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, currenciesKey, data, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to cache currency list", "error", err)
	}

	return err
}
