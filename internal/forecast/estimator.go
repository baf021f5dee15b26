package forecast

import "math"

const (
	// DefaultEstimate is returned whenever no estimate can be computed.
	DefaultEstimate = 0.001
	// Lookback is the number of hourly candles spanned by the estimate.
	Lookback = 24
	// priceFloor guards the logarithm against zero or negative prices.
	priceFloor = 1e-12
)

// FallbackEstimate returns the 24 period log-return of closes.
//
// closes must be ordered oldest first. The estimate is
// ln(last / closes[len-Lookback]) with both prices floored at 1e-12.
// Fewer than Lookback prices, or a non-finite result, yield DefaultEstimate.
func FallbackEstimate(closes []float64) float64 {
	if len(closes) < Lookback {
		return DefaultEstimate
	}
	last := math.Max(closes[len(closes)-1], priceFloor)
	ref := math.Max(closes[len(closes)-Lookback], priceFloor)

	v := math.Log(last / ref)
	if !IsFinite(v) {
		return DefaultEstimate
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
