package service

import (
	"testing"
	"time"

	"marketplace-settlement/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "test-issuer")

	tokenStr, err := svc.Generate(ports.TokenClaims{
		UserID:   "user-42",
		Role:     "seller",
		SellerID: "seller-7",
	}, 24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, "seller-7", claims.SellerID)
}

func TestJWTTokenService_AdminHasNoSellerID(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "test-issuer")

	tokenStr, err := svc.Generate(ports.TokenClaims{UserID: "admin-1", Role: "admin"}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.SellerID)
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "test-issuer")

	tokenStr, err := svc.Generate(ports.TokenClaims{UserID: "user-1", Role: "admin"}, -time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTTokenService_InvalidSignature(t *testing.T) {
	svc1 := NewJWTTokenService("secret-1", "issuer")
	svc2 := NewJWTTokenService("secret-2", "issuer")

	tokenStr, err := svc1.Generate(ports.TokenClaims{UserID: "user-1", Role: "admin"}, time.Hour)
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err, "token signed with different secret should fail")
}

func TestJWTTokenService_InvalidTokenString(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "issuer")

	_, err := svc.Validate("not.a.valid.jwt")
	assert.Error(t, err)
}

func TestJWTTokenService_EmptyToken(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, "issuer")

	_, err := svc.Validate("")
	assert.Error(t, err)
}
