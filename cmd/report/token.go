package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/internal/usecases/authenticating"
)

// newTokenCmd emite um token de operador para as rotas /v1/cache e /v1/cron
func newTokenCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token de operador assinado com AUTH_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg.Auth.Secret).GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "nome do operador")
	cmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "papel gravado no token")
	cmd.Flags().DurationVar(&ttl, "ttl", authenticating.DefaultTokenTTL, "validade do token")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
