package auth

import (
	"fmt"
	"net/http"

	"parqueo-pagos/database"
	"parqueo-pagos/internal/domain/parking"
	"parqueo-pagos/internal/domain/users"
	"parqueo-pagos/internal/infra/notify"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Notifier *notify.Notifier
}

// Register creates the User plus its mirror Cliente record. The welcome
// email and the origin-system mirror call are fire-and-forget.
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Surname  string `json:"surname" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	var existing users.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := users.User{
		Name:         input.Name,
		Surname:      input.Surname,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		fmt.Println("❌ DB insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	cliente := parking.Cliente{
		Nombre:   input.Name,
		Email:    input.Email,
		Telefono: input.Phone,
	}
	if err := database.DB.Create(&cliente).Error; err != nil {
		fmt.Println("❌ DB insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register client"})
		return
	}

	go h.Notifier.RegistrationEmail(user.Email, user.Name)
	go mirrorClient(&cliente)

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "User and client registered successfully",
		"user":    gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		"client":  cliente,
	})
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password return the exact same response.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := SignToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "name": user.Name})
}
