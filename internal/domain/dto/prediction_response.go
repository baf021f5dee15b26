package dto

// InferenceResponse is returned by GET /inference/{token}.
//
// Value is rounded to 6 decimals and PercentChange to 4; PercentChange is
// derived from the rounded Value so both fields agree.
type InferenceResponse struct {
	Symbol        string  `json:"symbol" example:"ETHUSDT"`
	Token         string  `json:"token" example:"ETH"`
	Target        string  `json:"target" example:"log_return_24h"`
	Value         float64 `json:"value" example:"0.012345"`
	PercentChange float64 `json:"percent_change" example:"1.2422"`
	Method        string  `json:"method" example:"fallback"`
	Status        string  `json:"status" example:"success"`
}

// InferenceErrorResponse is the 500 body of GET /inference/{token}.
type InferenceErrorResponse struct {
	Error  string `json:"error" example:"json: unsupported value: +Inf"`
	Status string `json:"status" example:"error"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Service     string `json:"service" example:"Forge API"`
	XGAvailable bool   `json:"xg_available" example:"false"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	Service     string   `json:"service" example:"Forge API"`
	Status      string   `json:"status" example:"running"`
	XGModule    string   `json:"xg_module" example:"not_available"`
	BinanceAPI  string   `json:"binance_api" example:"ok"`
	SavedModels string   `json:"saved_models" example:"not_available"`
	Endpoints   []string `json:"endpoints"`
}

// IndexResponse is the static usage document served at GET /.
type IndexResponse struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Usage       map[string]string `json:"usage"`
	ExampleCurl string            `json:"example_curl"`
}
