package charge

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

// StripeCharger creates and immediately confirms a PaymentIntent, off-session.
// Settlement currency is fixed to GTQ.
type StripeCharger struct {
	key string
}

func NewStripeCharger(key string) *StripeCharger {
	stripe.Key = key
	return &StripeCharger{key: key}
}

func (s *StripeCharger) Charge(ctx context.Context, cardToken string, amount decimal.Decimal, ticketID string) Result {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount.Shift(2).Round(0).IntPart()),
		Currency:      stripe.String("gtq"),
		PaymentMethod: stripe.String(cardToken),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	params.Context = ctx
	params.AddMetadata("ticket_id", ticketID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return Result{Success: false, Provider: "stripe", Error: err.Error()}
	}

	return Result{
		Success:       true,
		Provider:      "stripe",
		TransactionID: pi.ID,
		ChargedAmount: amount.StringFixed(2),
	}
}
