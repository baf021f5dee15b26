package config

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream exchange and the external prediction model.
//
// Example ENV equivalent:
//
//	SERVER_PORT=9000
//	EXCHANGE_BASE_URL=https://api.binance.com
//	EXCHANGE_TIMEOUT=10s
//	MODEL_COMMAND="python3 xg.py"
//	MODEL_TIMEOUT=20s
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Exchange ExchangeConfig // Candlestick source settings
	Model    ModelConfig    // External prediction model settings (all optional)
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Host: interface to bind; empty means all interfaces.
//   - Port: TCP port the HTTP server listens on (e.g., "9000").
//   - ServiceName: name reported by /health and /api/status.
//   - RequestTimeout: upper bound applied to every request context.
//   - AllowOrigins: comma separated CORS origins ("*" for any).
type ServerConfig struct {
	Host           string
	Port           string        `validate:"required,numeric"`
	ServiceName    string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
	AllowOrigins   string
}

// ExchangeConfig defines how candles are fetched for the fallback estimator.
type ExchangeConfig struct {
	BaseURL     string        `validate:"required,url"`
	Timeout     time.Duration `validate:"gt=0"`
	PingTimeout time.Duration `validate:"gt=0"`
	Interval    string        `validate:"required"`
	Limit       int           `validate:"gt=0,lte=1000"`
}

// ModelConfig describes the external model delegate.
//
// At most one of Command or URL is used; URL wins when both are set.
// When neither resolves, the service runs in fallback-only mode.
type ModelConfig struct {
	Command      string
	URL          string        `validate:"omitempty,url"`
	Timeout      time.Duration `validate:"gt=0"`
	ArtifactPath string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_HOST", "")
	viper.SetDefault("SERVER_PORT", "9000")
	viper.SetDefault("SERVICE_NAME", "Forge API")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.SetDefault("EXCHANGE_BASE_URL", "https://api.binance.com")
	viper.SetDefault("EXCHANGE_TIMEOUT", "10s")
	viper.SetDefault("EXCHANGE_PING_TIMEOUT", "5s")
	viper.SetDefault("EXCHANGE_INTERVAL", "1h")
	viper.SetDefault("EXCHANGE_LIMIT", 48)

	viper.SetDefault("MODEL_COMMAND", "")
	viper.SetDefault("MODEL_URL", "")
	viper.SetDefault("MODEL_TIMEOUT", "20s")
	viper.SetDefault("MODEL_ARTIFACT_PATH", "models/forge_model.keras")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Host:           viper.GetString("SERVER_HOST"),
			Port:           viper.GetString("SERVER_PORT"),
			ServiceName:    viper.GetString("SERVICE_NAME"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
			AllowOrigins:   viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Exchange: ExchangeConfig{
			BaseURL:     viper.GetString("EXCHANGE_BASE_URL"),
			Timeout:     viper.GetDuration("EXCHANGE_TIMEOUT"),
			PingTimeout: viper.GetDuration("EXCHANGE_PING_TIMEOUT"),
			Interval:    viper.GetString("EXCHANGE_INTERVAL"),
			Limit:       viper.GetInt("EXCHANGE_LIMIT"),
		},
		Model: ModelConfig{
			Command:      viper.GetString("MODEL_COMMAND"),
			URL:          viper.GetString("MODEL_URL"),
			Timeout:      viper.GetDuration("MODEL_TIMEOUT"),
			ArtifactPath: viper.GetString("MODEL_ARTIFACT_PATH"),
		},
	}

	validateConfig()
}

// Validate checks cfg against its struct tags and returns the names of offending fields.
func Validate(cfg Config) []string {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Namespace())
	}
	return out
}

// validateConfig terminates the application when AppConfig is incomplete.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	if invalid := Validate(AppConfig); len(invalid) > 0 {
		log.Fatalf("❌ Missing or invalid configuration: %v\n", invalid)
	}
}
