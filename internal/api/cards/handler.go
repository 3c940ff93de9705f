package cards

import (
	"net/http"

	"parqueo-pagos/database"
	"parqueo-pagos/internal/domain/cards"
	"parqueo-pagos/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AddCard stores a tokenized card for the authenticated user. The first card
// a user adds becomes the default.
func AddCard(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Last4    string `json:"last4" binding:"required"`
		ExpMonth int    `json:"expMonth"`
		ExpYear  int    `json:"expYear"`
		Brand    string `json:"brand"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "token and last4 are required"})
		return
	}

	userID := c.GetUint("user_id")
	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var count int64
	if err := database.DB.Model(&cards.Card{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add card"})
		return
	}

	card := cards.Card{
		UserID:    &user.ID,
		Token:     input.Token,
		Last4:     input.Last4,
		ExpMonth:  input.ExpMonth,
		ExpYear:   input.ExpYear,
		Brand:     input.Brand,
		IsDefault: count == 0,
	}
	if err := database.DB.Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "card": card})
}

// ListCards returns the authenticated user's cards, tokens excluded.
func ListCards(c *gin.Context) {
	userID := c.GetUint("user_id")

	var list []cards.Card
	if err := database.DB.Where("user_id = ?", userID).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "cards": list})
}

// DeleteCard removes a card, but only when it belongs to the requester.
func DeleteCard(c *gin.Context) {
	userID := c.GetUint("user_id")
	cardID := c.Param("id")

	var card cards.Card
	if err := database.DB.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Card not found"})
		return
	}

	if err := database.DB.Delete(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Card deleted"})
}
