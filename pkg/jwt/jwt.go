package jwt

import (
	"errors"
	"time"

	"go-product-catalog/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTokenType = "session"

type Claims struct {
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies the cookie that carries a browser's
// catalog session id.
type SessionTokenService struct {
	config config.SessionConfig
}

func NewSessionTokenService(cfg config.SessionConfig) *SessionTokenService {
	return &SessionTokenService{config: cfg}
}

// GenerateSessionToken starts a new session and returns its signed token and id.
func (s *SessionTokenService) GenerateSessionToken() (string, string, error) {
	sessionID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, sessionID, nil
}

func (s *SessionTokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != sessionTokenType || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *SessionTokenService) GetTTL() time.Duration {
	return s.config.TTL
}
