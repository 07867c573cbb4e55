// Package authenticating emite e valida os tokens de operador que protegem
// as rotas administrativas (cache e cron). O painel em si é público.
package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	issuer          = "smartshop-insights"
)

type Authenticator interface {
	GenerateToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey []byte
	now       func() time.Time
}

func NewService(secretKey string) Authenticator {
	return &Service{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

func (s *Service) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrMissingSecretKey
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", ErrMissingSubject
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Name: subject,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", pkgerrors.Wrap(err, "falha ao assinar token")
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrMissingSecretKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, pkgerrors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
