package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/duespay/internal/pkg/models"
)

// RoleAdmin is the only role allowed on association admin routes
const RoleAdmin = "admin"

// ErrMissingAssociation is returned for tokens that are not scoped to an association
var ErrMissingAssociation = errors.New("token is missing association_id")

// Claims identifies an association administrator
type Claims struct {
	AdminID       int64  `json:"admin_id"`
	AssociationID int64  `json:"association_id"`
	Role          string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates an admin token scoped to one association
func GenerateToken(adminID, associationID int64, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)

	claims := Claims{
		AdminID:       adminID,
		AssociationID: associationID,
		Role:          RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken validates a token and returns its admin claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AssociationID <= 0 {
		return nil, ErrMissingAssociation
	}

	return claims, nil
}
