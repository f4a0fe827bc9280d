package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carry both the account role and the role the session was opened
// with so handlers can rebuild the acting identity on every request.
type Claims struct {
	UserID        uint               `json:"user_id"`
	StoredRole    authorization.Role `json:"stored_role"`
	RequestedRole authorization.Role `json:"requested_role"`
	TokenType     TokenType          `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) Generate(userID uint, storedRole, requestedRole authorization.Role) (*usecases.TokenPair, error) {
	now := biztime.NowUTC()

	accessTokenString, err := s.sign(userID, storedRole, requestedRole, TokenTypeAccess, now,
		now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshTokenString, err := s.sign(userID, storedRole, requestedRole, TokenTypeRefresh, now,
		now.Add(time.Duration(s.refreshExpDays)*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &usecases.TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token carrying
// the same identity and session role.
func (s *JWTService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", fmt.Errorf("token is not a refresh token")
	}

	now := biztime.NowUTC()
	accessTokenString, err := s.sign(claims.UserID, claims.StoredRole, claims.RequestedRole, TokenTypeAccess, now,
		now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessTokenString, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *JWTService) sign(userID uint, storedRole, requestedRole authorization.Role, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserID:        userID,
		StoredRole:    storedRole,
		RequestedRole: requestedRole,
		TokenType:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
