package routes

import (
	authapi "parqueo-pagos/internal/api/auth"
	cardsapi "parqueo-pagos/internal/api/cards"
	invoicesapi "parqueo-pagos/internal/api/invoices"
	paymentsapi "parqueo-pagos/internal/api/payments"
	"parqueo-pagos/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authHandler *authapi.Handler, paymentsHandler *paymentsapi.Handler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "service": "parqueo-pagos"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Emailed invoice links must work without a token.
	r.GET("/invoices/:name", invoicesapi.Download)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/auth/register", authHandler.Register)
	public.POST("/auth/login", authHandler.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/cards/add", cardsapi.AddCard)
	auth.GET("/cards", cardsapi.ListCards)
	auth.DELETE("/cards/:id", cardsapi.DeleteCard)
	auth.POST("/payments/close-ticket", paymentsHandler.CloseTicket)
}
