package api

import (
	"fmt"
	"math"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/forgecast/internal/domain/dto"
	"github.com/guttosm/forgecast/internal/forecast"
	"github.com/guttosm/forgecast/internal/logger"
	"github.com/guttosm/forgecast/internal/service"
)

const (
	// forgeZero is the /forge body when anything goes wrong.
	forgeZero = "0.000000"
	// inferenceTarget names the quantity being predicted.
	inferenceTarget = "log_return_24h"
)

// Handler serves the prediction endpoints.
//
// Responsibilities:
//   - Read the token path parameter
//   - Delegate to the PredictionService (which never fails)
//   - Render plain-text or JSON responses
type Handler struct {
	svc service.PredictionService
}

// NewHandler constructs a Handler around svc.
func NewHandler(svc service.PredictionService) *Handler {
	return &Handler{svc: svc}
}

// Forge godoc
// @Summary      Log-return as plain text
// @Description  Returns the 24h log-return estimate formatted with 6 decimals. Always 200; "0.000000" on internal errors.
// @Tags         prediction
// @Produce      plain
// @Param        token  path      string  true  "Asset token or pair" example(ETH)
// @Success      200    {string}  string  "0.001234"
// @Router       /forge/{token} [get]
func (h *Handler) Forge(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error().
				Str("token", c.Param("token")).
				Str("panic", fmt.Sprintf("%v", r)).
				Bytes("stack", debug.Stack()).
				Msg("forge handler panicked")
			if !c.Writer.Written() {
				c.String(http.StatusOK, forgeZero)
			}
		}
	}()

	res := h.svc.Predict(c.Request.Context(), c.Param("token"))
	c.String(http.StatusOK, FormatForge(res.Value))
}

// FormatForge renders v with exactly 6 decimals, or "0.000000" when v is not finite.
func FormatForge(v float64) string {
	if !forecast.IsFinite(v) {
		return forgeZero
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Inference godoc
// @Summary      Detailed prediction
// @Description  Returns the log-return, the equivalent percent change and the method that produced it.
// @Tags         prediction
// @Produce      json
// @Param        token  path      string  true  "Asset token or pair" example(ETH)
// @Success      200    {object}  dto.InferenceResponse
// @Failure      500    {object}  dto.InferenceErrorResponse
// @Router       /inference/{token} [get]
func (h *Handler) Inference(c *gin.Context) {
	res := h.svc.Predict(c.Request.Context(), c.Param("token"))

	resp, err := buildInference(res.Symbol.String(), res.Token, res.Value, string(res.Method))
	if err != nil {
		logger.L().Error().Err(err).Str("symbol", res.Symbol.String()).Msg("inference response not serializable")
		c.JSON(http.StatusInternalServerError, dto.InferenceErrorResponse{Error: err.Error(), Status: "error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// buildInference rounds value to 6 decimals and derives percent_change from
// the rounded value, so clients can recompute one field from the other.
func buildInference(symbol, token string, value float64, method string) (dto.InferenceResponse, error) {
	if !forecast.IsFinite(value) {
		return dto.InferenceResponse{}, fmt.Errorf("value is not finite: %v", value)
	}
	rounded := roundTo(value, 6)
	pct := (math.Exp(rounded) - 1.0) * 100.0
	if !forecast.IsFinite(pct) {
		return dto.InferenceResponse{}, fmt.Errorf("percent_change is not finite for value %v", rounded)
	}
	return dto.InferenceResponse{
		Symbol:        symbol,
		Token:         token,
		Target:        inferenceTarget,
		Value:         rounded,
		PercentChange: roundTo(pct, 4),
		Method:        method,
		Status:        "success",
	}, nil
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Index godoc
// @Summary      Usage document
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.IndexResponse
// @Router       / [get]
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, indexDocument)
}

var indexDocument = dto.IndexResponse{
	Service:     "Forge API for ETH Forecasting",
	Version:     "1.0.0",
	Description: "24h log-return forecasts served from an external model, with a candle based fallback",
	Usage: map[string]string{
		"forge_endpoint":     "GET /forge/ETH - log return as plain text",
		"inference_endpoint": "GET /inference/ETH - full prediction as JSON",
		"health_check":       "GET /health - service health",
		"status":             "GET /api/status - dependency status",
	},
	ExampleCurl: "curl -s http://127.0.0.1:9000/forge/ETH",
}
