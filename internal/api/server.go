package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/smartshop-insights/internal/api/handler"
	"github.com/vfg2006/smartshop-insights/internal/api/handler/router"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/usecases/presenting"
	"github.com/vfg2006/smartshop-insights/pkg/log"
	"github.com/vfg2006/smartshop-insights/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func NewHandler(
	cfg *config.Config,
	presenter presenting.Presenter,
	caches handler.CacheAdmin,
	cacheRefresh handler.CacheRefresher,
	tokens middleware.TokenValidator,
) http.Handler {
	rateLimit := middleware.RateLimit(cfg.Server.RateLimitPerMinute)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(presenter)...),
		router.WithRoutes(handler.Page(presenter, cfg.App.DefaultCustomerID, rateLimit)...),
		router.WithRoutes(handler.Dashboard(presenter, rateLimit)...),
		router.WithRoutes(handler.Cache(caches, tokens)...),
		router.WithRoutes(handler.CronJobs(cacheRefresh, tokens)...),
	)

	for _, route := range rt.Routes() {
		log.L.Debugf("rota registrada: %s %s", route.Method, route.Path)
	}

	return alice.New(
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
	).Then(rt)
}

func New(cfg *config.Config, h http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run bloqueia até receber sinal de término ou ctx ser cancelado
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-errCh:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
