package payments

import (
	"errors"
	"net/http"

	"parqueo-pagos/internal/domain/cards"
	"parqueo-pagos/internal/domain/parking"

	"gorm.io/gorm"
)

// selectedCard is the tagged shape the charge path consumes: either a
// registered card row or an ad-hoc one-off token.
type selectedCard struct {
	token      string
	last4      string
	registered bool
	cardID     uint
}

func adHocCard(token string) selectedCard {
	return selectedCard{token: token, last4: "0000"}
}

func registeredCard(card *cards.Card) selectedCard {
	return selectedCard{token: card.Token, last4: card.Last4, registered: true, cardID: card.ID}
}

// selectCard resolves the card to charge, in priority order: explicit token,
// explicit card id, the client's default card. A non-zero status means the
// request fails with that status and message.
func (h *Handler) selectCard(cardID uint, cardToken string, ticket *parking.Ticket) (selectedCard, int, string) {
	if cardToken != "" {
		return adHocCard(cardToken), 0, ""
	}

	if cardID != 0 {
		card, err := h.Store.CardByID(cardID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return selectedCard{}, http.StatusNotFound, "Card not found"
		}
		if err != nil {
			return selectedCard{}, http.StatusInternalServerError, "Failed to load card"
		}
		return registeredCard(card), 0, ""
	}

	if ticket.Cliente != nil {
		card, err := h.Store.DefaultCard(ticket.Cliente.IDCliente)
		if err == nil {
			return registeredCard(card), 0, ""
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return selectedCard{}, http.StatusInternalServerError, "Failed to load card"
		}
	}

	return selectedCard{}, http.StatusBadRequest, "No card available. Send cardToken or cardId."
}
