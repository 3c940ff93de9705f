package charge

import (
	"context"

	"github.com/shopspring/decimal"
)

// Result is the uniform outcome of a charge attempt, regardless of provider.
type Result struct {
	Success       bool   `json:"success"`
	Provider      string `json:"provider,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	ChargedAmount string `json:"chargedAmount,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Charger converts a card token plus amount into a charge attempt. A declined
// or errored charge comes back as a failed Result, never as an error.
type Charger interface {
	Charge(ctx context.Context, cardToken string, amount decimal.Decimal, ticketID string) Result
}

// NewCharger picks the live gateway when a secret is configured, the local
// simulator otherwise.
func NewCharger(stripeSecret string) Charger {
	if stripeSecret != "" {
		return NewStripeCharger(stripeSecret)
	}
	return Simulated{}
}
