// Package predictor models the external prediction delegate.
//
// The model itself is opaque: the service only knows how to ask it for a
// log-return and whether it is present at all. Presence is resolved once at
// startup into a Capability and never re-evaluated.
package predictor

import (
	"context"
	"errors"

	"github.com/guttosm/forgecast/internal/domain/models"
)

var (
	// ErrDelegateFailure wraps every error returned by a delegate.
	ErrDelegateFailure = errors.New("prediction delegate failed")
	// ErrDelegateTimeout is returned when a delegate exceeds its deadline.
	ErrDelegateTimeout = errors.New("prediction delegate timed out")
)

// Predictor returns a 24h log-return estimate for symbol.
type Predictor interface {
	Predict(ctx context.Context, symbol models.Symbol) (float64, error)
}

// PredictorFunc adapts a plain function to Predictor.
type PredictorFunc func(ctx context.Context, symbol models.Symbol) (float64, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, symbol models.Symbol) (float64, error) {
	return f(ctx, symbol)
}

// Capability is either Unavailable or Available(predictor).
type Capability struct {
	predictor Predictor
	source    string
}

// Unavailable is the capability of a service running in fallback-only mode.
func Unavailable() Capability {
	return Capability{}
}

// Available wraps p. A nil p yields Unavailable.
func Available(p Predictor, source string) Capability {
	if p == nil {
		return Unavailable()
	}
	return Capability{predictor: p, source: source}
}

// Predictor returns the delegate and whether one is present.
func (c Capability) Predictor() (Predictor, bool) {
	return c.predictor, c.predictor != nil
}

// Available reports whether a delegate is present.
func (c Capability) Available() bool {
	return c.predictor != nil
}

// Source describes where the delegate came from ("command", "http"), empty when unavailable.
func (c Capability) Source() string {
	return c.source
}
