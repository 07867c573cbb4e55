package handler

import (
	"net/http"

	"github.com/vfg2006/smartshop-insights/internal/api/handler/router"
	"github.com/vfg2006/smartshop-insights/internal/usecases/presenting"
	"github.com/vfg2006/smartshop-insights/pkg/middleware"
)

type Middleware = func(http.Handler) http.Handler

func Healthcheck(service presenting.Presenter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service.Strategy()),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Page(service presenting.Presenter, defaultCustomerID string, rateLimit Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     DashboardPage(service, defaultCustomerID),
			Middlewares: []Middleware{rateLimit},
		},
		{
			Path:        "/dashboard",
			Method:      http.MethodGet,
			Handler:     DashboardPage(service, defaultCustomerID),
			Middlewares: []Middleware{rateLimit},
		},
	}
}

func Dashboard(service presenting.Presenter, rateLimit Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []Middleware{rateLimit},
		},
		{
			Path:        "/v1/customers/:id/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(service),
			Middlewares: []Middleware{rateLimit},
		},
		{
			Path:        "/v1/customers/:id/recommendations",
			Method:      http.MethodGet,
			Handler:     GetRecommendations(service),
			Middlewares: []Middleware{rateLimit},
		},
		{
			Path:        "/v1/customers/:id/insight",
			Method:      http.MethodGet,
			Handler:     GetInsight(service),
			Middlewares: []Middleware{rateLimit},
		},
	}
}

func Cache(caches CacheAdmin, tokens middleware.TokenValidator) []router.Route {
	admin := []Middleware{middleware.RequireToken(tokens), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateCache(caches),
			Middlewares: admin,
		},
		{
			Path:        "/v1/cache/stats",
			Method:      http.MethodGet,
			Handler:     GetCacheStats(caches),
			Middlewares: admin,
		},
	}
}

func CronJobs(service CacheRefresher, tokens middleware.TokenValidator) []router.Route {
	admin := []Middleware{middleware.RequireToken(tokens), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/cron/cache-refresh/run",
			Method:      http.MethodPost,
			Handler:     RunCacheRefresh(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: admin,
		},
	}
}
