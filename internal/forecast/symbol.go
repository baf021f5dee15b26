// Package forecast holds the pure pieces of the prediction path: symbol
// normalization and the candle-based fallback estimator.
package forecast

import (
	"strings"

	"github.com/guttosm/forgecast/internal/domain/models"
)

// QuoteSuffix is the quote currency every normalized symbol ends with.
const QuoteSuffix = "USDT"

// NormalizeSymbol maps a user token to an exchange trading pair.
//
// The token is uppercased and QuoteSuffix is appended unless already present,
// so "eth", "ETH" and "ethusdt" all become "ETHUSDT". Any input is accepted;
// unknown pairs surface later as upstream errors.
func NormalizeSymbol(token string) models.Symbol {
	s := strings.ToUpper(token)
	if strings.HasSuffix(s, QuoteSuffix) {
		return models.Symbol(s)
	}
	return models.Symbol(s + QuoteSuffix)
}
