package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/internal/usecases/authenticating"
	"github.com/vfg2006/smartshop-insights/pkg/apiErrors"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// RequireToken exige um Bearer token válido. Aplicado por rota, apenas nas
// rotas administrativas.
func RequireToken(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("auth: token rejeitado")
				if authenticating.IsExpired(err) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expired", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFrom(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*domain.Claims)
	return claims, ok
}
