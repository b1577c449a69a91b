package middleware

import (
	"net/http"
	"time"

	"kanael-cafe/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the signed admin session token.
const SessionCookie = "kanael_admin"

// SessionTTL bounds how long an admin login lasts.
const SessionTTL = 12 * time.Hour

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// GenerateAdminToken creates a signed session token for the admin panel.
func GenerateAdminToken() (string, error) {
	claims := Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AdminRequired sends the visitor to the login page unless the request
// carries a valid admin session cookie.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid || !claims.Admin {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
