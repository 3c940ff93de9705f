package main

import (
	"time"

	"parqueo-pagos/config"
	"parqueo-pagos/database"
	authapi "parqueo-pagos/internal/api/auth"
	paymentsapi "parqueo-pagos/internal/api/payments"
	routes "parqueo-pagos/internal/app/http"
	"parqueo-pagos/internal/infra/charge"
	"parqueo-pagos/internal/infra/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	notifier := notify.New(notify.Config{
		SMTPHost:      config.SMTP_HOST,
		SMTPPort:      config.SMTP_PORT,
		SMTPUser:      config.SMTP_USER,
		SMTPPass:      config.SMTP_PASS,
		SendGridKey:   config.SENDGRID_API_KEY,
		TwilioSID:     config.TWILIO_ACCOUNT_SID,
		TwilioToken:   config.TWILIO_AUTH_TOKEN,
		TwilioFrom:    config.TWILIO_FROM,
		PublicBaseURL: config.PUBLIC_BASE_URL,
		AttachInvoice: config.INVOICE_DELIVERY != "link",
	})

	authHandler := &authapi.Handler{Notifier: notifier}
	paymentsHandler := &paymentsapi.Handler{
		Store:      paymentsapi.NewStore(database.DB),
		Charger:    charge.NewCharger(config.STRIPE_SECRET),
		Notifier:   notifier,
		InvoiceDir: config.INVOICE_DIR,
	}

	routes.RegisterRoutes(r, authHandler, paymentsHandler)

	r.Run(":" + config.PORT)
}
