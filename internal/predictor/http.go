package predictor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/guttosm/forgecast/internal/domain/models"
)

// HTTPPredictor asks a remote inference service for the log-return.
//
// Request:  GET {baseURL}/predict/{symbol}
// Response: {"log_return": 0.0123}
type HTTPPredictor struct {
	baseURL string
	client  *http.Client
}

type httpPrediction struct {
	LogReturn *float64 `json:"log_return"`
}

// NewHTTPPredictor builds a predictor for baseURL. The caller bounds each call
// through the context, so the client carries no timeout of its own.
func NewHTTPPredictor(baseURL string, client *http.Client) *HTTPPredictor {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPPredictor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Predict performs one GET and decodes the log_return field.
func (p *HTTPPredictor) Predict(ctx context.Context, symbol models.Symbol) (float64, error) {
	endpoint := p.baseURL + "/predict/" + url.PathEscape(symbol.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDelegateFailure, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("%w: %v", ErrDelegateTimeout, ctx.Err())
		}
		return 0, fmt.Errorf("%w: %v", ErrDelegateFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrDelegateFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: read body: %v", ErrDelegateFailure, err)
	}
	var out httpPrediction
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("%w: decode: %v", ErrDelegateFailure, err)
	}
	if out.LogReturn == nil {
		return 0, fmt.Errorf("%w: missing log_return", ErrDelegateFailure)
	}
	return *out.LogReturn, nil
}
