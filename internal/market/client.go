// Package market fetches candlestick history from the exchange's public REST API.
//
// The client performs exactly one request per call with a bounded timeout and
// never retries or caches. Every failure is reported as ErrDataUnavailable so
// callers can branch on a single condition.
package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/guttosm/forgecast/internal/domain/models"
)

// ErrDataUnavailable is wrapped by every error returned from Client.
var ErrDataUnavailable = errors.New("market data unavailable")

const (
	// DefaultBaseURL is the public Binance REST endpoint.
	DefaultBaseURL = "https://api.binance.com"
	// DefaultTimeout bounds a single kline request.
	DefaultTimeout = 10 * time.Second

	klinesPath = "/api/v3/klines"
	pingPath   = "/api/v3/ping"

	// closeIndex is the position of the close price inside a kline row.
	closeIndex = 4
	// maxErrorBody caps how much of an error response is kept for logs.
	maxErrorBody = 512
)

// CandleSource is the read side of the exchange used by the prediction service.
type CandleSource interface {
	Klines(ctx context.Context, symbol models.Symbol, interval string, limit int) ([]models.Candle, error)
}

// Client is a minimal Binance klines client.
//
// It is safe for concurrent use; the underlying http.Client pools connections.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for baseURL with the given per-request timeout.
// Empty baseURL and non-positive timeout fall back to the package defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Klines returns up to limit candles for symbol, oldest first.
//
// Transport errors, timeouts, non-2xx statuses and malformed bodies are all
// returned wrapping ErrDataUnavailable.
func (c *Client) Klines(ctx context.Context, symbol models.Symbol, interval string, limit int) ([]models.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol.String())
	q.Set("interval", interval)
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, klinesPath+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode klines: %v", ErrDataUnavailable, err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for i, row := range rows {
		cd, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataUnavailable, i, err)
		}
		candles = append(candles, cd)
	}
	if len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	return candles, nil
}

// Ping checks that the exchange answers its ping endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, pingPath)
	return err
}

func (c *Client) get(ctx context.Context, pathAndQuery string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrDataUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrDataUnavailable, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrDataUnavailable, err)
	}
	return body, nil
}

// parseRow converts one kline array into a Candle.
//
// Layout: [openTime, open, high, low, close, volume, closeTime, ...].
// Only the first five fields are mandatory.
func parseRow(row []json.RawMessage) (models.Candle, error) {
	var cd models.Candle
	if len(row) <= closeIndex {
		return cd, fmt.Errorf("expected at least %d fields, got %d", closeIndex+1, len(row))
	}

	openMs, err := parseMillis(row[0])
	if err != nil {
		return cd, fmt.Errorf("open time: %w", err)
	}
	cd.OpenTime = openMs

	prices := []*float64{&cd.Open, &cd.High, &cd.Low, &cd.Close}
	for i, dst := range prices {
		v, err := parseNumber(row[i+1])
		if err != nil {
			return cd, fmt.Errorf("field %d: %w", i+1, err)
		}
		*dst = v
	}

	if len(row) > 5 {
		if v, err := parseNumber(row[5]); err == nil {
			cd.Volume = v
		}
	}
	if len(row) > 6 {
		if ts, err := parseMillis(row[6]); err == nil {
			cd.CloseTime = ts
		}
	}
	return cd, nil
}

// parseNumber accepts both quoted decimals ("1234.56") and bare JSON numbers.
func parseNumber(raw json.RawMessage) (float64, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseMillis(raw json.RawMessage) (time.Time, error) {
	var ms int64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// Closes extracts close prices in the order of candles.
func Closes(candles []models.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}
