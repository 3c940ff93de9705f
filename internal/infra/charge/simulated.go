package charge

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
)

// Simulated charges without a network. Tokens containing "fail" are declined,
// missing tokens are rejected, everything else succeeds with a fabricated
// transaction id.
type Simulated struct{}

func (Simulated) Charge(_ context.Context, cardToken string, amount decimal.Decimal, _ string) Result {
	if cardToken == "" {
		return Result{Success: false, Provider: "simulated", Reason: "no_card_token"}
	}
	if strings.Contains(cardToken, "fail") {
		return Result{Success: false, Provider: "simulated", Reason: "card_declined"}
	}

	b := make([]byte, 8)
	rand.Read(b)

	return Result{
		Success:       true,
		Provider:      "simulated",
		TransactionID: "txn_" + hex.EncodeToString(b),
		ChargedAmount: amount.StringFixed(2),
	}
}
