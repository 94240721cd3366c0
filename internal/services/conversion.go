package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source conversion.go -destination mock_conversion.go -package services

const dateLayout = "2006-01-02"

// HistoricalRatesFetcher fetches settled rates from the external provider.
type HistoricalRatesFetcher interface {
	GetHistoricalRates(ctx context.Context, date, baseCurrency, currencies string) (*models.HistoricalRatesResponse, error)
}

// ConversionEventWriter publishes completed conversions to Kafka.
type ConversionEventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RateNotFoundError is returned when the provider response does not contain
// a rate for the requested target currency.
type RateNotFoundError struct {
	Currency string
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("exchange rate for %s not found in provider response", e.Currency)
}

// ConversionService turns validated conversion requests into processed
// results: it resolves the settlement date, fetches the rate, applies it
// and shapes the response.
type ConversionService struct {
	rates  HistoricalRatesFetcher
	events ConversionEventWriter
	now    func() time.Time
}

// NewConversionService creates a new service instance. events may be nil,
// in which case event publishing is skipped.
func NewConversionService(rates HistoricalRatesFetcher, events ConversionEventWriter) *ConversionService {
	return &ConversionService{
		rates:  rates,
		events: events,
		now:    time.Now,
	}
}

// Convert performs a currency conversion for an already-validated request.
// When no date is supplied it defaults to yesterday: the provider only
// guarantees settled rates up to the previous calendar day.
func (svc *ConversionService) Convert(ctx context.Context, req models.ConversionRequest) (*models.ProcessedConversionResult, error) {
	date := req.Date
	if date == "" {
		date = svc.now().AddDate(0, 0, -1).Format(dateLayout)
	}

	resp, err := svc.rates.GetHistoricalRates(ctx, date, req.FromCurrency, req.ToCurrency)
	if err != nil {
		logger.Log.Errorw("historical rates request failed",
			"from", req.FromCurrency, "to", req.ToCurrency, "date", date, "error", err)
		return nil, err
	}

	rate, ok := resp.Data[req.ToCurrency]
	if !ok {
		return nil, &RateNotFoundError{Currency: req.ToCurrency}
	}

	// Converted amount is rounded half-up to 2 decimal places; the rate in
	// the result stays unrounded.
	converted := decimal.NewFromFloat(req.Amount).
		Mul(decimal.NewFromFloat(rate.Value)).
		Round(2)

	result := &models.ProcessedConversionResult{
		OriginalAmount:  req.Amount,
		ConvertedAmount: converted.InexactFloat64(),
		FromCurrency:    req.FromCurrency,
		ToCurrency:      req.ToCurrency,
		ExchangeRate:    rate.Value,
		Date:            date,
		LastUpdatedAt:   resp.Meta.LastUpdatedAt,
	}

	svc.publishConversion(ctx, result)

	return result, nil
}

// publishConversion publishes a completed conversion to Kafka.
func (svc *ConversionService) publishConversion(ctx context.Context, result *models.ProcessedConversionResult) {
	if svc.events == nil {
		return
	}

	event := models.ConversionEvent{
		ConversionID:    uuid.NewString(),
		Timestamp:       svc.now().Unix(),
		FromCurrency:    result.FromCurrency,
		ToCurrency:      result.ToCurrency,
		OriginalAmount:  result.OriginalAmount,
		ConvertedAmount: result.ConvertedAmount,
		ExchangeRate:    result.ExchangeRate,
		Date:            result.Date,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal conversion event", "conversion_id", event.ConversionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ConversionID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish conversion event", "conversion_id", event.ConversionID, "error", err)
	} else {
		logger.Log.Infow("conversion event published", "conversion_id", event.ConversionID, "amount", event.ConvertedAmount)
	}
}
