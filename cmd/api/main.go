package main

import (
	"context"

	"github.com/vfg2006/smartshop-insights/internal/api"
	"github.com/vfg2006/smartshop-insights/internal/app"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/scheduler"
	"github.com/vfg2006/smartshop-insights/internal/usecases/authenticating"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.WithFields(log.Fields{
		"dataset":  cfg.Dataset.Source,
		"strategy": cfg.Insight.Strategy,
	}).Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	authenticator := authenticating.NewService(cfg.Auth.Secret)

	cacheRefreshService := scheduler.NewCacheRefreshService(application.Caches, cfg.CacheRefresh)
	if err := cacheRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de atualização do cache")
	}

	handler := api.NewHandler(cfg, application.Presenter, application.Caches, cacheRefreshService, authenticator)

	if err := api.New(cfg, handler).Run(ctx); err != nil {
		log.L.Error(err)
	}
}
