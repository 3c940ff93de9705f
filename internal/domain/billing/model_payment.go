package billing

import (
	"time"

	"parqueo-pagos/internal/infra/charge"
)

const (
	PaymentSucceeded = "Succeeded"
	PaymentFailed    = "Failed"
)

// Payment records every charge attempt, succeeded or failed. Rows are
// immutable once created; the provider response is kept as an audit payload.
// UserID is intentionally never populated by the close-ticket workflow —
// the linkage back to a user runs through TicketIDOrigen.
type Payment struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	TicketIDOrigen   string        `gorm:"column:ticket_id_origen;not null" json:"ticketIdOrigen"`
	UserID           *uint         `json:"userId"`
	CardToken        string        `json:"-"`
	Amount           string        `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status           string        `gorm:"not null;default:Failed" json:"status"`
	ProviderResponse charge.Result `gorm:"serializer:json" json:"providerResponse"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Payment) TableName() string { return "payments" }
