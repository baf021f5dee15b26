package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/forgecast/internal/domain/models"
	"github.com/guttosm/forgecast/internal/forecast"
	"github.com/guttosm/forgecast/internal/market"
	"github.com/guttosm/forgecast/internal/predictor"
)

type mockCandles struct {
	mock.Mock
}

func (m *mockCandles) Klines(ctx context.Context, symbol models.Symbol, interval string, limit int) ([]models.Candle, error) {
	args := m.Called(symbol, interval, limit)
	candles, _ := args.Get(0).([]models.Candle)
	return candles, args.Error(1)
}

// candlesFrom builds 48 candles whose reference (len-24) close is ref and last close is last.
func candlesFrom(ref, last float64) []models.Candle {
	out := make([]models.Candle, 48)
	for i := range out {
		out[i] = models.Candle{Close: 105}
	}
	out[48-forecast.Lookback].Close = ref
	out[47].Close = last
	return out
}

func delegate(v float64, err error) predictor.Capability {
	return predictor.Available(predictor.PredictorFunc(func(context.Context, models.Symbol) (float64, error) {
		return v, err
	}), "test")
}

func TestPredict_DelegateSuccess(t *testing.T) {
	src := &mockCandles{}
	svc := NewPredictionService(delegate(0.0421, nil), src, Options{DelegateTimeout: time.Second})

	res := svc.Predict(context.Background(), "eth")

	assert.Equal(t, models.Symbol("ETHUSDT"), res.Symbol)
	assert.Equal(t, "ETH", res.Token)
	assert.Equal(t, 0.0421, res.Value)
	assert.Equal(t, models.MethodModel, res.Method)
	assert.True(t, svc.DelegateAvailable())
	src.AssertNotCalled(t, "Klines", mock.Anything, mock.Anything, mock.Anything)
}

func TestPredict_DelegateFailureFallsBackToCandles(t *testing.T) {
	src := &mockCandles{}
	src.On("Klines", models.Symbol("BTCUSDT"), "1h", 48).Return(candlesFrom(100, 110), nil).Once()

	svc := NewPredictionService(delegate(0, errors.New("model missing")), src, Options{})
	res := svc.Predict(context.Background(), "btc")

	assert.Equal(t, models.MethodFallback, res.Method)
	assert.InDelta(t, math.Log(1.1), res.Value, 1e-12)
	src.AssertExpectations(t)
}

func TestPredict_UnavailableDelegateUsesCandles(t *testing.T) {
	src := &mockCandles{}
	src.On("Klines", models.Symbol("ETHUSDT"), "1h", 48).Return(candlesFrom(200, 100), nil)

	svc := NewPredictionService(predictor.Unavailable(), src, Options{})
	res := svc.Predict(context.Background(), "ETHUSDT")

	assert.False(t, svc.DelegateAvailable())
	assert.Equal(t, models.MethodFallback, res.Method)
	assert.InDelta(t, math.Log(0.5), res.Value, 1e-12)
}

func TestPredict_EverythingFails(t *testing.T) {
	src := &mockCandles{}
	src.On("Klines", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: status 500", market.ErrDataUnavailable))

	svc := NewPredictionService(delegate(0, errors.New("boom")), src, Options{})
	res := svc.Predict(context.Background(), "ETH")

	assert.Equal(t, models.MethodFallback, res.Method)
	assert.Equal(t, forecast.DefaultEstimate, res.Value)
}

func TestPredict_ShortHistoryUsesDefault(t *testing.T) {
	src := &mockCandles{}
	src.On("Klines", mock.Anything, mock.Anything, mock.Anything).Return(make([]models.Candle, 10), nil)

	res := NewPredictionService(predictor.Unavailable(), src, Options{}).Predict(context.Background(), "SOL")
	assert.Equal(t, forecast.DefaultEstimate, res.Value)
}

func TestPredict_NonFiniteDelegateValueKeepsMethod(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res := NewPredictionService(delegate(v, nil), nil, Options{}).Predict(context.Background(), "ETH")
		assert.Equal(t, forecast.DefaultEstimate, res.Value)
		assert.Equal(t, models.MethodModel, res.Method)
	}
}

func TestPredict_DelegatePanicDoesNotEscape(t *testing.T) {
	capability := predictor.Available(predictor.PredictorFunc(func(context.Context, models.Symbol) (float64, error) {
		panic("kaboom")
	}), "test")

	// Without a timeout wrapper the panic reaches Predict's own recover.
	svc := &predictionService{capability: capability, opts: Options{Interval: "1h", Limit: 48}}
	var res models.PredictionResult
	require.NotPanics(t, func() { res = svc.Predict(context.Background(), "ETH") })
	assert.Equal(t, forecast.DefaultEstimate, res.Value)
}

func TestPredict_HungDelegateIsBounded(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	hung := predictor.Available(predictor.PredictorFunc(func(context.Context, models.Symbol) (float64, error) {
		<-release
		return 1, nil
	}), "test")

	src := &mockCandles{}
	src.On("Klines", mock.Anything, mock.Anything, mock.Anything).Return(candlesFrom(100, 110), nil)

	start := time.Now()
	res := NewPredictionService(hung, src, Options{DelegateTimeout: 50 * time.Millisecond}).Predict(context.Background(), "ETH")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, models.MethodFallback, res.Method)
	assert.InDelta(t, math.Log(1.1), res.Value, 1e-12)
}

func TestNewPredictionService_Defaults(t *testing.T) {
	svc := NewPredictionService(predictor.Unavailable(), nil, Options{}).(*predictionService)
	assert.Equal(t, DefaultInterval, svc.opts.Interval)
	assert.Equal(t, DefaultLimit, svc.opts.Limit)
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, "timeout", failureReason(fmt.Errorf("%w: x", predictor.ErrDelegateTimeout)))
	assert.Equal(t, "canceled", failureReason(context.Canceled))
	assert.Equal(t, "error", failureReason(errors.New("x")))
}
