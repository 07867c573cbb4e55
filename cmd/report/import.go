package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/smartshop-insights/infrastructure/database/postgres"
	"github.com/vfg2006/smartshop-insights/infrastructure/dataset"
	"github.com/vfg2006/smartshop-insights/infrastructure/migration"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

// newImportCmd carrega os arquivos de previsão e recomendação no postgres
func newImportCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		forecastPath       string
		recommendationPath string
		replace            bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Importa FORECAST_PATH e RECOMMENDATION_PATH para as tabelas do postgres",
		Long: `Importa os arquivos de previsão e recomendação para o postgres em uma única transação.

Sem --replace a carga só acrescenta clientes novos. Ela falha sem gravar nada quando
um cliente do arquivo já está na tabela, quando a tabela global já tem linhas ou quando
o arquivo tem (ou não tem) customer_id ao contrário do que está gravado.
Com --replace as duas tabelas são esvaziadas antes da carga.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if forecastPath == "" {
				forecastPath = cfg.Dataset.ForecastPath
			}
			if recommendationPath == "" {
				recommendationPath = cfg.Dataset.RecommendationPath
			}

			opts := dataset.Options{Sheet: cfg.Dataset.XLSXSheet}

			var forecast *domain.ForecastTable
			if forecastPath != "-" {
				if forecast, err = dataset.LoadForecast(forecastPath, opts); err != nil {
					return err
				}
			}

			var recs *domain.RecommendationTable
			if recommendationPath != "-" {
				if recs, err = dataset.LoadRecommendations(recommendationPath, opts); err != nil {
					return err
				}
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			result, err := migration.Import(cmd.Context(), conn.DB, forecast, recs, replace)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "forecast: %d rows, recommendation: %d rows\n", result.Forecast, result.Recommendations)
			return err
		},
	}

	cmd.Flags().StringVar(&forecastPath, "forecast", "", "arquivo de previsão (padrão FORECAST_PATH, - para pular)")
	cmd.Flags().StringVar(&recommendationPath, "recommendations", "", "arquivo de recomendações (padrão RECOMMENDATION_PATH, - para pular)")
	cmd.Flags().BoolVar(&replace, "replace", false, "apaga as linhas existentes antes da carga (sem ela, só clientes novos são aceitos)")

	return cmd
}
