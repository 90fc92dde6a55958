package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// gatewayClaims is the JWT payload issued to service-to-service callers.
type gatewayClaims struct {
	RoleIDs []string `json:"role_ids"`
	jwt.RegisteredClaims
}

// IssueToken signs a bearer token for the given user. Used by operators to
// mint tokens for scripted access; the gateway itself uses the API key path.
func IssueToken(secret []byte, userID string, roleIDs []string, ttl time.Duration) (string, error) {
	claims := gatewayClaims{
		RoleIDs: roleIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a bearer token and returns the identity it carries.
func ParseToken(secret []byte, tokenString string) (*TokenClaims, error) {
	var claims gatewayClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &TokenClaims{
		UserIDValue:  claims.Subject,
		RoleIDValues: claims.RoleIDs,
	}, nil
}
