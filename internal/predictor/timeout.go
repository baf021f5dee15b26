package predictor

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/forgecast/internal/domain/models"
)

type result struct {
	value float64
	err   error
}

// WithTimeout bounds every call to p by d.
//
// The delegate runs on its own goroutine so a model that ignores its context
// still cannot hold the request past the deadline. Non-positive d returns p.
func WithTimeout(p Predictor, d time.Duration) Predictor {
	if d <= 0 {
		return p
	}
	return PredictorFunc(func(ctx context.Context, symbol models.Symbol) (float64, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		done := make(chan result, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					done <- result{err: fmt.Errorf("%w: panic: %v", ErrDelegateFailure, r)}
				}
			}()
			v, err := p.Predict(ctx, symbol)
			done <- result{value: v, err: err}
		}()

		select {
		case r := <-done:
			return r.value, r.err
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %s after %s", ErrDelegateTimeout, symbol, d)
		}
	})
}
