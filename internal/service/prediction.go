package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/guttosm/forgecast/internal/domain/models"
	"github.com/guttosm/forgecast/internal/forecast"
	"github.com/guttosm/forgecast/internal/logger"
	"github.com/guttosm/forgecast/internal/market"
	"github.com/guttosm/forgecast/internal/metrics"
	"github.com/guttosm/forgecast/internal/predictor"
)

const (
	// DefaultInterval is the candle granularity used by the fallback.
	DefaultInterval = "1h"
	// DefaultLimit is how many candles the fallback requests.
	DefaultLimit = 48
)

// PredictionService turns a user token into a prediction.
//
// Predict is total: it never returns an error and always yields a finite value.
type PredictionService interface {
	Predict(ctx context.Context, token string) models.PredictionResult
	DelegateAvailable() bool
}

// Options tune the fallback fetch and the delegate deadline.
type Options struct {
	Interval        string
	Limit           int
	DelegateTimeout time.Duration
}

type predictionService struct {
	capability predictor.Capability
	candles    market.CandleSource
	opts       Options
}

// NewPredictionService wires the resolved delegate capability and the candle source.
func NewPredictionService(capability predictor.Capability, candles market.CandleSource, opts Options) PredictionService {
	if opts.Interval == "" {
		opts.Interval = DefaultInterval
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if p, ok := capability.Predictor(); ok {
		capability = predictor.Available(predictor.WithTimeout(p, opts.DelegateTimeout), capability.Source())
	}
	return &predictionService{capability: capability, candles: candles, opts: opts}
}

func (s *predictionService) DelegateAvailable() bool {
	return s.capability.Available()
}

// Predict tries the delegate first and falls back to recent candles.
//
// Steps:
//  1. normalize token into a symbol;
//  2. ask the delegate when one is available;
//  3. on absence or failure, fetch candles and run the fallback estimator,
//     or use the default estimate when candles are unavailable;
//  4. replace any non-finite value with the default estimate.
func (s *predictionService) Predict(ctx context.Context, token string) (res models.PredictionResult) {
	start := time.Now()
	symbol := forecast.NormalizeSymbol(token)
	res = models.PredictionResult{
		Symbol: symbol,
		Token:  strings.ToUpper(token),
		Value:  forecast.DefaultEstimate,
		Method: models.MethodFallback,
	}

	defer func() {
		if r := recover(); r != nil {
			logger.L().Error().
				Str("symbol", symbol.String()).
				Str("panic", fmt.Sprintf("%v", r)).
				Bytes("stack", debug.Stack()).
				Msg("prediction panicked, using default estimate")
			res.Value = forecast.DefaultEstimate
		}
		if !forecast.IsFinite(res.Value) {
			logger.L().Warn().Str("symbol", symbol.String()).Str("method", string(res.Method)).Msg("non-finite estimate replaced by default")
			res.Value = forecast.DefaultEstimate
		}
		metrics.Predictions.WithLabelValues(string(res.Method)).Inc()
		metrics.PredictionLatency.WithLabelValues(string(res.Method)).Observe(time.Since(start).Seconds())
	}()

	if p, ok := s.capability.Predictor(); ok {
		v, err := p.Predict(ctx, symbol)
		if err == nil {
			res.Value = v
			res.Method = models.MethodModel
			return res
		}
		metrics.DelegateFailures.WithLabelValues(failureReason(err)).Inc()
		logger.L().Warn().Err(err).Str("symbol", symbol.String()).Msg("delegate prediction failed, falling back")
	}

	res.Value = s.fallback(ctx, symbol)
	return res
}

func (s *predictionService) fallback(ctx context.Context, symbol models.Symbol) float64 {
	if s.candles == nil {
		return forecast.DefaultEstimate
	}
	candles, err := s.candles.Klines(ctx, symbol, s.opts.Interval, s.opts.Limit)
	if err != nil {
		metrics.MarketDataErrors.Inc()
		logger.L().Warn().Err(err).Str("symbol", symbol.String()).Msg("fallback candles unavailable, using default estimate")
		return forecast.DefaultEstimate
	}
	return forecast.FallbackEstimate(market.Closes(candles))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, predictor.ErrDelegateTimeout):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
