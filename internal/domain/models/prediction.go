package models

// Symbol is a normalized trading pair such as "ETHUSDT".
type Symbol string

func (s Symbol) String() string { return string(s) }

// Method reports which computation produced a prediction.
type Method string

const (
	// MethodModel means the external model delegate answered.
	MethodModel Method = "model"
	// MethodFallback means the value came from recent exchange candles
	// or from the fixed default.
	MethodFallback Method = "fallback"
)

// PredictionResult is the outcome of one prediction request.
//
// Fields:
//   - Symbol: normalized trading pair used for the computation.
//   - Token: the caller supplied token, uppercased.
//   - Value: 24h log-return estimate, always finite.
//   - Method: path that produced Value.
//
// A result is built once per request and never cached.
type PredictionResult struct {
	Symbol Symbol
	Token  string
	Value  float64
	Method Method
}
