package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "report",
		Short:         "Relatórios do painel SmartShopAI no terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newDashboardCmd(loadConfig))
	root.AddCommand(newTokenCmd(loadConfig))
	root.AddCommand(newImportCmd(loadConfig))

	return root
}

// loadConfig usa as mesmas variáveis de ambiente do servidor
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.Setup(cfg.App.LogLevel)
	return cfg, nil
}
