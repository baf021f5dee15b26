package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/forgecast/config"
	"github.com/guttosm/forgecast/internal/api"
	"github.com/guttosm/forgecast/internal/market"
	"github.com/guttosm/forgecast/internal/metrics"
	"github.com/guttosm/forgecast/internal/predictor"
	"github.com/guttosm/forgecast/internal/service"
)

// delegateResolver is an indirection for unit testing; defaults to predictor.Resolve.
var delegateResolver = predictor.Resolve

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Resolves the prediction delegate once (Available or Unavailable).
//   - Builds the exchange client used by the fallback and the status probe.
//   - Creates the prediction service and the HTTP handlers.
//   - Registers health, status and metrics.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	svc, exchange, err := NewPredictionService(config.AppConfig)
	if err != nil {
		return nil, nil, err
	}
	cfg := config.AppConfig

	metrics.Register()

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowOrigins:   cfg.Server.AllowOrigins,
	})

	healthHandler := api.NewHealthHandler(
		cfg.Server.ServiceName,
		svc.DelegateAvailable(),
		exchange.Ping,
		cfg.Exchange.PingTimeout,
		cfg.Model.ArtifactPath,
	)
	healthHandler.Register(router)

	cleanup := func() {}

	return router, cleanup, nil
}

// NewPredictionService builds the orchestrator from cfg without any HTTP wiring.
// It is shared by the API server and the one-shot predict mode.
func NewPredictionService(cfg config.Config) (service.PredictionService, *market.Client, error) {
	if cfg.Exchange.BaseURL == "" {
		return nil, nil, fmt.Errorf("exchange base url is required")
	}

	exchange := market.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.Timeout)
	capability := delegateResolver(cfg.Model)

	svc := service.NewPredictionService(capability, exchange, service.Options{
		Interval:        cfg.Exchange.Interval,
		Limit:           cfg.Exchange.Limit,
		DelegateTimeout: cfg.Model.Timeout,
	})
	return svc, exchange, nil
}
