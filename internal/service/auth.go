package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/quote-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when the client credentials are wrong.
	ErrInvalidCredentials = errors.New("invalid client credentials")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims are the JWT claims carried by issued tokens.
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// AuthService issues and validates bearer tokens for API clients.
type AuthService interface {
	// IssueToken exchanges client credentials for a bearer token.
	IssueToken(clientID, clientSecret string) (*dto.TokenResponse, error)
	// ValidateToken parses and validates a bearer token.
	ValidateToken(tokenString string) (*Claims, error)
}

// AuthServiceImpl implements AuthService against a static client registry.
// Client secrets are stored as bcrypt hashes, never in the clear.
type AuthServiceImpl struct {
	// clients maps client id to the bcrypt hash of its secret.
	clients   map[string]string
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates an auth service. A non-positive TTL defaults to
// 15 minutes.
func NewAuthService(clients map[string]string, secretKey string, tokenTTL time.Duration) *AuthServiceImpl {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &AuthServiceImpl{
		clients:   clients,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// IssueToken exchanges client credentials for a signed HS256 bearer token.
func (s *AuthServiceImpl) IssueToken(clientID, clientSecret string) (*dto.TokenResponse, error) {
	hash, ok := s.clients[clientID]
	if !ok {
		// Burn a comparison anyway so unknown and known client ids take
		// the same time.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(clientSecret))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clientSecret)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses a bearer token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
