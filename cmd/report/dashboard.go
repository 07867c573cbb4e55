package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/smartshop-insights/internal/app"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/utils"
)

func newDashboardCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		customer string
		asJSON   bool
		top      int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Mostra previsão, recomendações e insight de um cliente",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if customer == "" {
				customer = cfg.App.DefaultCustomerID
			}

			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			view, err := application.Presenter.BuildDashboard(cmd.Context(), customer)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := utils.PrettyJSON(view)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}

			return renderDashboard(cmd.OutOrStdout(), view, top)
		},
	}

	cmd.Flags().StringVarP(&customer, "customer", "c", "", "id do cliente (padrão DEFAULT_CUSTOMER_ID)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime a visão em JSON")
	cmd.Flags().IntVar(&top, "top", 10, "quantidade de recomendações exibidas")

	return cmd
}

func renderDashboard(w io.Writer, view *domain.DashboardView, top int) error {
	var b strings.Builder

	fmt.Fprintf(&b, "SmartShopAI Insight Dashboard - customer %s\n", view.CustomerID)
	fmt.Fprintf(&b, "view %s · strategy %s · %s\n\n", view.ViewID, view.Strategy, view.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("Forecast\n")
	switch view.Forecast.Status {
	case domain.SectionOK:
		series := view.Forecast.Data
		for _, p := range series.Points {
			fmt.Fprintf(&b, "  Day %-4d %s\n", p.Day, utils.FormatNumber(p.PredictedValue))
		}
		fmt.Fprintf(&b, "  horizon %d · mean %s · min %s · max %s\n",
			series.Horizon, utils.FormatNumber(series.Mean), utils.FormatNumber(series.Min), utils.FormatNumber(series.Max))
	default:
		fmt.Fprintf(&b, "  [%s] %s\n", view.Forecast.Status, view.Forecast.Message)
	}

	b.WriteString("\nRecommendations\n")
	switch view.Recommendations.Status {
	case domain.SectionOK:
		for i, r := range view.Recommendations.Data {
			if top > 0 && i >= top {
				break
			}
			fmt.Fprintf(&b, "  %2d. item %s · category %s · score %s\n", i+1, r.ItemID, r.CategoryID, utils.FormatNumber(r.Score))
		}
	default:
		fmt.Fprintf(&b, "  [%s] %s\n", view.Recommendations.Status, view.Recommendations.Message)
	}

	b.WriteString("\nInsight\n")
	switch view.Insight.Status {
	case domain.SectionOK, domain.SectionEmpty:
		fmt.Fprintf(&b, "  %s\n", view.Insight.Data.Message)
	case domain.SectionSkipped:
		b.WriteString("  (no forecast available to derive an insight)\n")
	default:
		fmt.Fprintf(&b, "  [%s] %s\n", view.Insight.Status, view.Insight.Message)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
