package predictor

import (
	"github.com/guttosm/forgecast/config"
	"github.com/guttosm/forgecast/internal/logger"
)

// Resolve decides once, at startup, which delegate the service will use.
//
// Order: MODEL_URL, then MODEL_COMMAND (only if its executable resolves),
// otherwise Unavailable. Resolution never fails; a missing model only means
// every request takes the fallback path.
func Resolve(cfg config.ModelConfig) Capability {
	if cfg.URL != "" {
		logger.L().Info().Str("url", cfg.URL).Msg("prediction delegate: http")
		return Available(NewHTTPPredictor(cfg.URL, nil), "http")
	}
	if cfg.Command != "" {
		p, err := NewCommandPredictor(cfg.Command)
		if err != nil {
			logger.L().Warn().Err(err).Msg("prediction delegate unavailable, running in fallback mode")
			return Unavailable()
		}
		logger.L().Info().Str("command", cfg.Command).Msg("prediction delegate: command")
		return Available(p, "command")
	}
	logger.L().Warn().Msg("no prediction delegate configured, running in fallback mode")
	return Unavailable()
}
