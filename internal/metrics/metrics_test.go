package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister_Idempotent(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(Predictions.WithLabelValues("fallback"))
	Predictions.WithLabelValues("fallback").Inc()
	if got := testutil.ToFloat64(Predictions.WithLabelValues("fallback")); got != before+1 {
		t.Fatalf("counter=%v, want %v", got, before+1)
	}
}
