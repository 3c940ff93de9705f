package charge

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimulatedChargePolicy(t *testing.T) {
	amount := decimal.RequireFromString("35.00")

	tests := []struct {
		name        string
		token       string
		wantSuccess bool
		wantReason  string
	}{
		{"missing token is declined", "", false, "no_card_token"},
		{"fail token is declined", "tok_fail_visa", false, "card_declined"},
		{"fail substring anywhere", "xxfailxx", false, "card_declined"},
		{"normal token succeeds", "tok_simulado_abc123", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Simulated{}.Charge(context.Background(), tt.token, amount, "5")
			if res.Success != tt.wantSuccess {
				t.Fatalf("success = %v, want %v (result %+v)", res.Success, tt.wantSuccess, res)
			}
			if res.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", res.Reason, tt.wantReason)
			}
			if res.Provider != "simulated" {
				t.Errorf("provider = %q, want simulated", res.Provider)
			}
			if tt.wantSuccess {
				if !strings.HasPrefix(res.TransactionID, "txn_") {
					t.Errorf("transactionId = %q, want txn_ prefix", res.TransactionID)
				}
				if res.ChargedAmount != "35.00" {
					t.Errorf("chargedAmount = %q, want 35.00", res.ChargedAmount)
				}
			}
		})
	}
}

func TestSimulatedTransactionIDsAreUnique(t *testing.T) {
	amount := decimal.RequireFromString("1.00")
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		res := Simulated{}.Charge(context.Background(), "tok_ok", amount, "1")
		if seen[res.TransactionID] {
			t.Fatalf("duplicate transaction id %q", res.TransactionID)
		}
		seen[res.TransactionID] = true
	}
}

func TestNewChargerSelection(t *testing.T) {
	if _, ok := NewCharger("").(Simulated); !ok {
		t.Errorf("empty secret should select the simulator, got %T", NewCharger(""))
	}
	if _, ok := NewCharger("sk_test_123").(*StripeCharger); !ok {
		t.Errorf("secret should select the stripe charger, got %T", NewCharger("sk_test_123"))
	}
}
