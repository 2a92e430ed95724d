package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims issued by the session service. The owner
// identity is the subject; OwnerID is accepted for older tokens.
type Claims struct {
	OwnerID string `json:"owner_id,omitempty"`
	jwt.RegisteredClaims
}

// Owner returns the identity all records created under this token belong to.
func (c *Claims) Owner() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.OwnerID
}

// GenerateJWT signs a token for ownerID. The quote service only validates
// tokens; this exists for local tooling and tests.
func GenerateJWT(ownerID, secretKey string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return s, nil
}

// ValidateJWT verifies an HMAC-signed token and returns its claims.
func ValidateJWT(tokenString, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid JWT")
	}
	if claims.Owner() == "" {
		return nil, fmt.Errorf("token has no owner")
	}
	return claims, nil
}
