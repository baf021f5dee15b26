package main

//
//  @title           forgecast API
//  @version         1.0
//  @description     24h log-return forecasts for crypto assets, served from an external model with a candle based fallback.
//  @termsOfService  https://github.com/guttosm/forgecast
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/forgecast
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:9000
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        prediction
//  @tag.description Log-return forecasts
//
//  @tag.name        health
//  @tag.description Liveness and dependency status

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/forgecast/config"
	_ "github.com/guttosm/forgecast/docs" // swagger docs
	"github.com/guttosm/forgecast/internal/api"
	"github.com/guttosm/forgecast/internal/app"
	"github.com/guttosm/forgecast/internal/logger"
	"github.com/guttosm/forgecast/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - host (string): Interface to bind; empty binds all interfaces.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, host, port string) *http.Server {
	server := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// predictOnce runs a single prediction for token and writes the forge text to out.
func predictOnce(ctx context.Context, svc service.PredictionService, token string, timeout time.Duration, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res := svc.Predict(ctx, token)
	logger.L().Info().
		Str("symbol", res.Symbol.String()).
		Str("method", string(res.Method)).
		Float64("value", res.Value).
		Msg("prediction computed")

	_, err := fmt.Fprintln(out, api.FormatForge(res.Value))
	return err
}

// main is the entry point of the forgecast service.
//
// Modes (selected via --mode flag):
//   - api:     Starts the HTTP API (default).
//   - predict: Prints one forge value for --token and exits.
//
// Flags:
//   - --mode:  Execution mode ("api" or "predict"). Default: "api".
//   - --token: Token used by predict mode. Default: "ETH".
//   - --port:  Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or predict")
	token := flag.String("token", "ETH", "Token for predict mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "predict":
		svc, _, err := app.NewPredictionService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("service init error")
		}
		if err := predictOnce(ctx, svc, *token, config.AppConfig.Server.RequestTimeout, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("write prediction")
		}

	case "api":
		logger.L().Info().Str("service", config.AppConfig.Server.ServiceName).Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, config.AppConfig.Server.Host, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
