package payments

import (
	"errors"
	"fmt"
	"net/http"

	"parqueo-pagos/internal/domain/billing"
	"parqueo-pagos/internal/domain/parking"
	"parqueo-pagos/internal/infra/charge"
	"parqueo-pagos/internal/infra/invoice"
	"parqueo-pagos/internal/infra/notify"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Handler struct {
	Store      Store
	Charger    charge.Charger
	Notifier   *notify.Notifier
	InvoiceDir string
}

// CloseTicket charges for a parking ticket and finalizes it: load ticket,
// validate its precomputed total, pick a card, charge, persist the Payment,
// finalize the ticket, emit the invoice PDF and notify the client. The whole
// run is serialized per ticket id; the charge only happens when the ticket
// still reads Activo inside the critical section.
func (h *Handler) CloseTicket(c *gin.Context) {
	var input struct {
		TicketID  uint   `json:"ticketId" binding:"required"`
		CardID    uint   `json:"cardId"`
		CardToken string `json:"cardToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ticketId is required"})
		return
	}

	unlock := lockTicket(input.TicketID)
	defer unlock()

	ticket, err := h.Store.TicketWithClient(input.TicketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "details": err.Error()})
		return
	}

	amount, err := ticketAmount(ticket)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ticket amount is invalid or not calculated"})
		return
	}

	// Zero-cost stays finalize without billing artifacts.
	if amount.IsZero() {
		if ticket.Estado == parking.TicketActivo {
			won, err := h.Store.FinalizeTicket(ticket.IDTicket)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "details": err.Error()})
				return
			}
			if won {
				ticket.Estado = parking.TicketFinalizado
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Ticket with zero amount; no charge or invoice generated.",
			"ticket":  ticket,
		})
		return
	}

	card, status, msg := h.selectCard(input.CardID, input.CardToken, ticket)
	if status != 0 {
		c.JSON(status, gin.H{"message": msg})
		return
	}

	if ticket.Estado != parking.TicketActivo {
		c.JSON(http.StatusConflict, gin.H{"message": "Ticket already closed"})
		return
	}

	result := h.Charger.Charge(c.Request.Context(), card.token, amount, fmt.Sprint(ticket.IDTicket))

	payment := &billing.Payment{
		TicketIDOrigen:   fmt.Sprint(ticket.IDTicket),
		CardToken:        card.token,
		Amount:           amount.StringFixed(2),
		Status:           paymentStatus(result),
		ProviderResponse: result,
	}
	if err := h.Store.CreatePayment(payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment", "details": err.Error()})
		return
	}

	if !result.Success {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"message":      "Charge failed",
			"chargeResult": result,
			"payment":      payment,
		})
		return
	}

	won, err := h.Store.FinalizeTicket(ticket.IDTicket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "details": err.Error()})
		return
	}
	if won {
		ticket.Estado = parking.TicketFinalizado
	}

	pdfPath, err := invoice.Generate(h.InvoiceDir, payment)
	if err != nil {
		// No rollback of the persisted payment; the charge already happened.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice", "details": err.Error()})
		return
	}

	inv := &billing.Invoice{
		PaymentID:      payment.ID,
		TicketIDOrigen: payment.TicketIDOrigen,
		PDFPath:        pdfPath,
	}
	if err := h.Store.CreateInvoice(inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record invoice", "details": err.Error()})
		return
	}

	if cl := ticket.Cliente; cl != nil && cl.Nombre != "" {
		if cl.Email != "" {
			go h.Notifier.InvoiceEmail(cl.Email, payment.TicketIDOrigen, payment.Amount, pdfPath)
		}
		if cl.Telefono != "" {
			go h.Notifier.PaymentSMS(cl.Telefono, payment.TicketIDOrigen, payment.Amount)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"payment": payment,
		"pdfPath": pdfPath,
		"ticket":  ticket,
	})
}

// ticketAmount reads the ticket's precomputed total. This service never
// recomputes it from elapsed time.
func ticketAmount(ticket *parking.Ticket) (decimal.Decimal, error) {
	if ticket.MontoTotal == nil || *ticket.MontoTotal == "" {
		return decimal.Decimal{}, errors.New("monto_total not calculated")
	}
	return decimal.NewFromString(*ticket.MontoTotal)
}

func paymentStatus(result charge.Result) string {
	if result.Success {
		return billing.PaymentSucceeded
	}
	return billing.PaymentFailed
}
