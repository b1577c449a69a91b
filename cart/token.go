package cart

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL bounds how long an untouched cart survives on the client.
const TokenTTL = 7 * 24 * time.Hour

type claims struct {
	Items Cart `json:"items"`
	jwt.RegisteredClaims
}

// Token signs the cart into a compact JWT for the client cookie.
func Token(c Cart, secret []byte) (string, error) {
	cl := claims{
		Items: c,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	return token.SignedString(secret)
}

// FromToken parses a signed cart token. Expired, tampered or otherwise
// unreadable tokens yield an empty cart rather than an error: the cart is
// disposable state, never worth failing a page for.
func FromToken(tokenStr string, secret []byte) Cart {
	cl := &claims{}
	token, err := jwt.ParseWithClaims(tokenStr, cl, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid || cl.Items == nil {
		return Cart{}
	}
	return cl.Items
}
