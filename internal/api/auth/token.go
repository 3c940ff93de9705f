package auth

import (
	"strconv"
	"time"

	"parqueo-pagos/config"
	"parqueo-pagos/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

const defaultExpiryHours = 168 // 7 days

// SignToken issues the HS256 bearer token carrying the user id and email.
func SignToken(user *users.User) (string, error) {
	hours, err := strconv.Atoi(config.JWT_EXPIRES_HOURS)
	if err != nil || hours <= 0 {
		hours = defaultExpiryHours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Duration(hours) * time.Hour).Unix(),
	})
	return token.SignedString([]byte(config.JWT_SECRET))
}
