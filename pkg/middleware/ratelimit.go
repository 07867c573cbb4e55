package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/vfg2006/smartshop-insights/pkg/apiErrors"
)

// RateLimit limita requisições por IP dentro de uma janela de um minuto.
// perMinute <= 0 desativa o limite.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Too many requests", nil)
		}),
	)
}
