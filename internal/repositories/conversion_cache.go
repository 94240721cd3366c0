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

// ConversionCacheRepository memoizes processed conversion results in Redis,
// keyed by the request's cache key.
type ConversionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewConversionCacheRepository creates a new repository instance with the given TTL.
func NewConversionCacheRepository(client *redis.Client, expiration time.Duration) *ConversionCacheRepository {
	return &ConversionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetResult fetches a cached conversion result for the given cache key.
func (r *ConversionCacheRepository) GetResult(ctx context.Context, key string) (*models.ProcessedConversionResult, error) {
	redisKey := fmt.Sprintf("conversion_result:%s", key)

	val, err := r.client.Get(ctx, redisKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("conversion result not found in cache for %s", key)
		}
		logger.Log.Errorw("failed to read conversion result from cache", "key", redisKey, "error", err)
		return nil, err
	}

	var result models.ProcessedConversionResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		logger.Log.Errorw("failed to unmarshal cached conversion result", "key", redisKey, "error", err)
		return nil, err
	}

	return &result, nil
}

// SetResult caches a conversion result under the given cache key with expiration.
func (r *ConversionCacheRepository) SetResult(ctx context.Context, key string, result *models.ProcessedConversionResult) error {
	redisKey := fmt.Sprintf("conversion_result:%s", key)

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, redisKey, data, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to cache conversion result", "key", redisKey, "error", err)
	}

	return err
}
