package database

import (
	"fmt"
	"log"

	"parqueo-pagos/config"
	"parqueo-pagos/internal/domain/billing"
	"parqueo-pagos/internal/domain/cards"
	"parqueo-pagos/internal/domain/parking"
	"parqueo-pagos/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DB_HOST, config.DB_USER, config.DB_PASS, config.DB_NAME, config.DB_SSLMODE)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// auth / payments
		&users.User{},
		&cards.Card{},
		&billing.Payment{},
		&billing.Invoice{},

		// parking
		&parking.Cliente{},
		&parking.Espacio{},
		&parking.Tarifa{},
		&parking.Ticket{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
