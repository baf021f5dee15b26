package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/forgecast/internal/middleware"
)

// RouterOptions carries the HTTP-level settings taken from configuration.
type RouterOptions struct {
	RequestTimeout time.Duration
	AllowOrigins   string
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Bounds every request context by opts.RequestTimeout.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures prediction routes (/forge, /inference) and the index (/).
//
// Note:
//   - /health and /api/status are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(opts.AllowOrigins),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Docs & metrics ───────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ─── Prediction ───────────────────────────────
	router.GET("/", handler.Index)
	router.GET("/forge/:token", handler.Forge)
	router.GET("/inference/:token", handler.Inference)

	return router
}
