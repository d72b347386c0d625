package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"bookhub/internal/config"
	"bookhub/internal/models"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func testUser() *models.User {
	return &models.User{
		ID:       "68f3b8be-5bd8-4c6c-9919-a4614b2731b3",
		Username: "alice",
	}
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	signed, err := tokens.IssueAccess(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed, TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "68f3b8be-5bd8-4c6c-9919-a4614b2731b3", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestVerify_WrongTokenType(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	signed, err := tokens.IssueAccess(testUser())
	assert.NoError(t, err)

	_, err = tokens.Verify(signed, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestVerify_RefreshToken(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	signed, err := tokens.IssueRefresh(testUser())
	assert.NoError(t, err)

	claims, err := tokens.Verify(signed, TokenTypeRefresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	_, err = tokens.Verify(signed, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestVerify_Expired(t *testing.T) {
	cfg := testTokenConfig()
	cfg.AccessTokenTTL = -time.Minute // already in the past
	tokens := NewTokenService(cfg)

	signed, err := tokens.IssueAccess(testUser())
	assert.NoError(t, err)

	_, err = tokens.Verify(signed, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	otherCfg := testTokenConfig()
	otherCfg.JWTSecret = "ffffffffffffffffffffffffffffffff"
	otherTokens := NewTokenService(otherCfg)

	signed, err := otherTokens.IssueAccess(testUser())
	assert.NoError(t, err)

	_, err = tokens.Verify(signed, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	signed, err := tokens.IssueAccess(testUser())
	assert.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = tokens.Verify(tampered, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_UnsignedTokenRejected(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	claims := Claims{
		Username:  "alice",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "some-user",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = tokens.Verify(signed, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	_, err := tokens.Verify("not-a-jwt", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
