package store

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-currency-converter/internal/cachekey"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source conversion.go -destination mock_conversion.go -package store

// Converter performs validated currency conversions.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ProcessedConversionResult, error)
}

// ResultCache memoizes completed conversions by cache key.
type ResultCache interface {
	GetResult(ctx context.Context, key string) (*models.ProcessedConversionResult, error)
	SetResult(ctx context.Context, key string, result *models.ProcessedConversionResult) error
}

// ConversionStore owns the shared conversion outcome: the last successful
// result and the last error, each in its own slot. Overlapping submissions
// are allowed; every submission carries a monotonically increasing sequence
// number and responses older than the last published one are discarded.
type ConversionStore struct {
	converter Converter
	cache     ResultCache // optional

	mu        sync.Mutex
	seq       uint64
	published uint64
	pending   int
	lastInput *validation.FormInput
	result    *models.ProcessedConversionResult
	err       error
}

// NewConversionStore creates an isolated store instance. cache may be nil,
// in which case every submission reaches the converter.
func NewConversionStore(converter Converter, cache ResultCache) *ConversionStore {
	return &ConversionStore{
		converter: converter,
		cache:     cache,
	}
}

// Submit validates the raw input and runs the conversion. Validation
// failures are returned as validation.FieldErrors and never recorded in
// the store's error slot.
func (s *ConversionStore) Submit(ctx context.Context, input validation.FormInput) (*models.ProcessedConversionResult, error) {
	s.mu.Lock()
	in := input
	s.lastInput = &in
	s.mu.Unlock()

	req, ferrs := validation.Validate(input)
	if ferrs != nil {
		return nil, ferrs
	}

	s.mu.Lock()
	s.seq++
	id := s.seq
	s.pending++
	s.mu.Unlock()

	key := cachekey.Key(cachekey.Params{
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Amount:       req.Amount,
		Date:         req.Date,
	})

	if s.cache != nil {
		if cached, err := s.cache.GetResult(ctx, key); err == nil {
			s.publish(id, cached, nil)
			return cached, nil
		}
	}

	result, err := s.converter.Convert(ctx, req)
	if err != nil {
		s.publish(id, nil, err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetResult(ctx, key, result); err != nil {
			logger.Log.Errorw("failed to cache conversion result", "key", key, "error", err)
		}
	}

	s.publish(id, result, nil)
	return result, nil
}

// Retry re-issues the most recently submitted request. It re-validates
// first and silently no-ops, without touching the converter, when there is
// no previous submission or the input no longer validates.
func (s *ConversionStore) Retry(ctx context.Context) (*models.ProcessedConversionResult, error) {
	s.mu.Lock()
	input := s.lastInput
	s.mu.Unlock()

	if input == nil {
		return nil, nil
	}
	if _, ferrs := validation.Validate(*input); ferrs != nil {
		return nil, nil
	}

	return s.Submit(ctx, *input)
}

// publish records a submission outcome unless a newer submission has
// already been published.
func (s *ConversionStore) publish(id uint64, result *models.ProcessedConversionResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending--

	if id < s.published {
		logger.Log.Infow("stale conversion response discarded", "submission", id, "published", s.published)
		return
	}
	s.published = id

	if err != nil {
		s.err = err
		return
	}
	s.result = result
	s.err = nil
}

// Result returns the last successfully published conversion, or nil.
func (s *ConversionStore) Result() *models.ProcessedConversionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the last recorded non-validation error, or nil.
func (s *ConversionStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// HasError reports whether the last published outcome was a failure.
func (s *ConversionStore) HasError() bool {
	return s.Err() != nil
}

// Pending reports whether any submission is still in flight.
func (s *ConversionStore) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

// Clear drops the current result and error.
func (s *ConversionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
	s.err = nil
}
