// Package auth implements the anonymous sign-in handshake. There are no
// credentials and no access control: the session id exists only to stamp
// records with an author identity. When the handshake fails the system
// degrades to a null identity instead of blocking anything.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AnonymousSession struct {
	SessionID string `json:"session_id,omitempty"`
	Token     string `json:"token,omitempty"`
}

// Null reports whether this is the degraded no-identity session.
func (s *AnonymousSession) Null() bool {
	return s == nil || s.SessionID == ""
}

type TokenGenerator interface {
	Generate(sessionID string) (string, error)
	Validate(token string) (sessionID string, err error)
}

type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (g *JWTTokenGenerator) Generate(sessionID string) (string, error) {
	if len(g.Secret) == 0 {
		return "", errors.New("session secret is not configured")
	}

	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.Secret)
}

func (g *JWTTokenGenerator) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.Secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}

	return claims.SessionID, nil
}

type Service struct {
	tokens TokenGenerator
	logger *slog.Logger
}

func NewService(tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		tokens: tokens,
		logger: logger,
	}
}

// SignInAnonymously mints a fresh opaque session id and the signed token
// that carries it. On failure it returns the null session; callers keep
// going and records are stamped with a null author.
func (s *Service) SignInAnonymously(ctx context.Context) *AnonymousSession {
	sessionID := uuid.NewString()

	token, err := s.tokens.Generate(sessionID)
	if err != nil {
		s.logger.Error("anonymous sign-in failed, continuing with null identity", "error", err)
		return &AnonymousSession{}
	}

	s.logger.Info("anonymous session established", "session_id", sessionID)
	return &AnonymousSession{SessionID: sessionID, Token: token}
}

// SessionIDFromToken resolves a bearer token back to its session id, or ""
// for anything invalid or expired. Invalid tokens are not an error here:
// the request simply proceeds unauthenticated.
func (s *Service) SessionIDFromToken(token string) string {
	if token == "" {
		return ""
	}

	sessionID, err := s.tokens.Validate(token)
	if err != nil {
		s.logger.Debug("session token rejected", "error", err)
		return ""
	}
	return sessionID
}
