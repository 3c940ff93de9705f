package users

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Surname      string `gorm:"not null" json:"surname"`
	Phone        string `gorm:"not null" json:"phone"`
	Email        string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
