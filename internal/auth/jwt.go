package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// JWTManager issues and validates HS256 access tokens that carry a caller's
// substation scope.
type JWTManager struct {
	secret      []byte
	issuer      string
	accessTTL   time.Duration
	masterGardu string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security. A token whose
// substation equals masterGardu grants the master scope.
func NewJWTManager(secret, issuer string, accessTTL time.Duration, masterGardu string) *JWTManager {
	return &JWTManager{
		secret:      []byte(secret),
		issuer:      issuer,
		accessTTL:   accessTTL,
		masterGardu: domain.NormalizeGardu(masterGardu),
	}
}

// accessClaims extends standard JWT claims with the substation scope.
type accessClaims struct {
	jwt.RegisteredClaims
	Gardu  string `json:"gardu,omitempty"`
	Master bool   `json:"master,omitempty"`
}

// GenerateAccessToken creates a signed token with the user ID as subject.
func (m *JWTManager) GenerateAccessToken(scope domain.Scope) (string, error) {
	if scope.UserID == uuid.Nil {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   scope.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Gardu:  domain.NormalizeGardu(scope.Gardu),
		Master: scope.Master,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns the
// scope it grants. Non-master tokens must name a substation.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Scope, error) {
	if tokenString == "" {
		return domain.Scope{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Scope{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Scope{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Scope{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Scope{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	scope := domain.Scope{
		UserID: userID,
		Gardu:  domain.NormalizeGardu(claims.Gardu),
		Master: claims.Master,
	}
	if m.masterGardu != "" && strings.EqualFold(scope.Gardu, m.masterGardu) {
		// The master substation code is an account marker, not a real substation.
		scope.Master = true
		scope.Gardu = ""
	}
	if !scope.Master && scope.Gardu == "" {
		return domain.Scope{}, fmt.Errorf("token has no substation")
	}

	return scope, nil
}
