package service

import (
	"fmt"
	"time"

	"marketplace-settlement/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Generate creates a signed JWT carrying the subscriber identity.
func (s *JWTTokenService) Generate(claims ports.TokenClaims, expiry time.Duration) (string, error) {
	now := time.Now()

	mapClaims := jwt.MapClaims{
		"sub":  claims.UserID,
		"role": claims.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(expiry).Unix(),
		"iss":  s.issuer,
	}
	if claims.SellerID != "" {
		mapClaims["seller_id"] = claims.SellerID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a JWT token, returning the claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	role, _ := claims["role"].(string)
	sellerID, _ := claims["seller_id"].(string)

	return &ports.TokenClaims{
		UserID:   sub,
		Role:     role,
		SellerID: sellerID,
	}, nil
}
