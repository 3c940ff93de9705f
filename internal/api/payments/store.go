package payments

import (
	"parqueo-pagos/internal/domain/billing"
	"parqueo-pagos/internal/domain/cards"
	"parqueo-pagos/internal/domain/parking"

	"gorm.io/gorm"
)

// Store is the persistence surface the close-ticket workflow needs.
// Not-found conditions surface as gorm.ErrRecordNotFound.
type Store interface {
	TicketWithClient(id uint) (*parking.Ticket, error)
	CardByID(id uint) (*cards.Card, error)
	DefaultCard(clientID uint) (*cards.Card, error)
	CreatePayment(p *billing.Payment) error
	CreateInvoice(inv *billing.Invoice) error
	// FinalizeTicket transitions Activo -> Finalizado as one conditional
	// update and reports whether this call won the transition.
	FinalizeTicket(id uint) (bool, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) TicketWithClient(id uint) (*parking.Ticket, error) {
	var ticket parking.Ticket
	if err := s.db.Preload("Cliente").First(&ticket, "id_ticket = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *gormStore) CardByID(id uint) (*cards.Card, error) {
	var card cards.Card
	if err := s.db.First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *gormStore) DefaultCard(clientID uint) (*cards.Card, error) {
	var card cards.Card
	if err := s.db.Where("user_id = ? AND is_default = ?", clientID, true).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *gormStore) CreatePayment(p *billing.Payment) error {
	return s.db.Create(p).Error
}

func (s *gormStore) CreateInvoice(inv *billing.Invoice) error {
	return s.db.Create(inv).Error
}

func (s *gormStore) FinalizeTicket(id uint) (bool, error) {
	res := s.db.Model(&parking.Ticket{}).
		Where("id_ticket = ? AND estado = ?", id, parking.TicketActivo).
		Update("estado", parking.TicketFinalizado)
	return res.RowsAffected > 0, res.Error
}
