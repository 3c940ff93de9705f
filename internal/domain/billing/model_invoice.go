package billing

import "time"

// Invoice links a succeeded Payment to its generated PDF. Created only for
// charges with a nonzero amount.
type Invoice struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PaymentID      uint   `gorm:"not null" json:"paymentId"`
	TicketIDOrigen string `gorm:"column:ticket_id_origen;not null" json:"ticketIdOrigen"`
	PDFPath        string `gorm:"column:pdf_path;not null" json:"pdfPath"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Invoice) TableName() string { return "invoices" }
