package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/forgecast/internal/domain/models"
	"github.com/guttosm/forgecast/internal/metrics"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.Register()

	svc := &mockPredictionService{value: 0.25, method: models.MethodModel}
	r := NewRouter(NewHandler(svc), RouterOptions{RequestTimeout: time.Second, AllowOrigins: "*"})

	w := get(r, "/forge/ETH")
	if w.Code != http.StatusOK || w.Body.String() != "0.250000" {
		t.Fatalf("forge: code=%d body=%q", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	if w := get(r, "/inference/ETH"); w.Code != http.StatusOK {
		t.Fatalf("inference: code=%d", w.Code)
	}
	if w := get(r, "/"); w.Code != http.StatusOK {
		t.Fatalf("index: code=%d", w.Code)
	}

	w = get(r, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatalf("metrics: code=%d", w.Code)
	}

	if w := get(r, "/unknown"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown route: code=%d", w.Code)
	}
}
