package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookhub/internal/config"
	"bookhub/internal/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims is the payload carried inside every signed token. Subject holds the
// user ID; TokenType separates access tokens from refresh tokens.
type Claims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed access and refresh tokens.
type TokenService interface {
	IssueAccess(user *models.User) (string, error)
	IssueRefresh(user *models.User) (string, error)
	// Verify checks signature, expiry and token_type. The three failure kinds
	// stay distinct internally even though they all read as 401 on the wire.
	Verify(tokenString, expectedType string) (*Claims, error)
}

type tokenService struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewTokenService builds a TokenService around the configured signing secret.
// The secret is injected here, never read from package state.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,  // 15 minutes
		refreshTokenTTL: cfg.RefreshTokenTTL, // 7 days
	}
}

func (s *tokenService) IssueAccess(user *models.User) (string, error) {
	return s.issue(user, TokenTypeAccess, s.accessTokenTTL)
}

func (s *tokenService) IssueRefresh(user *models.User) (string, error) {
	return s.issue(user, TokenTypeRefresh, s.refreshTokenTTL)
}

func (s *tokenService) issue(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString, expectedType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
