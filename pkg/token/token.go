package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType marks every access token issued by this service.
const TokenType = "access_token"

// Claims is the payload embedded in issued access tokens.
type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed, time-limited access tokens using a
// symmetric secret.
type Manager struct {
	secret     []byte
	method     jwt.SigningMethod
	expiration time.Duration
}

// NewManager creates a token manager for the given secret, HMAC algorithm
// (HS256, HS384 or HS512) and token lifetime.
func NewManager(secret, algorithm string, expiration time.Duration) (*Manager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %s is not an HMAC method", algorithm)
	}
	return &Manager{
		secret:     []byte(secret),
		method:     method,
		expiration: expiration,
	}, nil
}

// Generate produces a signed token carrying the user's id and email, with
// expiry set to issued-at plus the configured lifetime.
func (m *Manager) Generate(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:        userID,
		Email:     email,
		TokenType: TokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}
	return jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
}

// Verify validates signature and expiry and returns the embedded claims.
// Malformed, expired or mis-signed tokens all fail.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Expiration returns the configured token lifetime.
func (m *Manager) Expiration() time.Duration {
	return m.expiration
}
