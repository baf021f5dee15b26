package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/forgecast/internal/domain/dto"
	"github.com/guttosm/forgecast/internal/logger"
)

// Endpoints lists the public routes reported by /api/status.
var Endpoints = []string{
	"/forge/<token>",
	"/inference/<token>",
	"/health",
	"/api/status",
}

// HealthHandler provides the health and status endpoints.
//
// Responsibilities:
//   - /health: liveness plus the delegate capability flag (no I/O).
//   - /api/status: probes exchange reachability and model artifact presence.
type HealthHandler struct {
	service      string
	delegate     bool
	exchangePing func(ctx context.Context) error
	pingTimeout  time.Duration
	artifactPath string
}

// NewHealthHandler constructs a HealthHandler.
//
// Parameters:
//   - service: name reported in responses.
//   - delegateAvailable: capability flag resolved at startup.
//   - exchangePing: reachability probe for the exchange, typically market.Client.Ping.
//   - pingTimeout: bound for exchangePing.
//   - artifactPath: file whose presence means a saved model exists.
func NewHealthHandler(service string, delegateAvailable bool, exchangePing func(ctx context.Context) error, pingTimeout time.Duration, artifactPath string) *HealthHandler {
	return &HealthHandler{
		service:      service,
		delegate:     delegateAvailable,
		exchangePing: exchangePing,
		pingTimeout:  pingTimeout,
		artifactPath: artifactPath,
	}
}

// Register mounts the health and status endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/status", h.Status)
}

// Health godoc
// @Summary      Liveness probe
// @Description  Always 200; reports whether the prediction delegate was loaded at startup
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "ok",
		Service:     h.service,
		XGAvailable: h.delegate,
	})
}

// Status godoc
// @Summary      Dependency status
// @Description  Probes the exchange (5s) and the saved model artifact; probe failures are reported as "error", never as a failed request
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	exchange, models := "error", "not_available"

	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		exchange = h.probeExchange(gctx)
		return nil
	})
	g.Go(func() error {
		models = probeArtifact(h.artifactPath)
		return nil
	})
	_ = g.Wait()

	c.JSON(http.StatusOK, dto.StatusResponse{
		Service:     h.service,
		Status:      "running",
		XGModule:    availability(h.delegate),
		BinanceAPI:  exchange,
		SavedModels: models,
		Endpoints:   Endpoints,
	})
}

func (h *HealthHandler) probeExchange(ctx context.Context) string {
	if h.exchangePing == nil {
		return "error"
	}
	if h.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.pingTimeout)
		defer cancel()
	}
	if err := h.exchangePing(ctx); err != nil {
		logger.L().Warn().Err(err).Msg("exchange ping failed")
		return "error"
	}
	return "ok"
}

// probeArtifact reports "available" when path exists, "not_available" when it
// does not, and "error" when it cannot be checked.
func probeArtifact(path string) string {
	if path == "" {
		return "not_available"
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return "available"
	case errors.Is(err, os.ErrNotExist):
		return "not_available"
	default:
		logger.L().Warn().Err(err).Str("path", path).Msg("model artifact probe failed")
		return "error"
	}
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "not_available"
}
