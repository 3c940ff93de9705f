package cards

import "time"

// Card is a tokenized payment card. The raw provider token is never
// serialized in API responses.
type Card struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    *uint  `gorm:"index" json:"userId"`
	Token     string `gorm:"not null" json:"-"`
	Last4     string `gorm:"size:4" json:"last4"`
	Brand     string `json:"brand,omitempty"`
	ExpMonth  int    `json:"expMonth,omitempty"`
	ExpYear   int    `json:"expYear,omitempty"`
	IsDefault bool   `gorm:"default:false" json:"isDefault"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Card) TableName() string { return "cards" }
