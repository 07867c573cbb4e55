package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/internal/usecases/authenticating"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	forecast := filepath.Join(dir, "forecast.csv")
	recs := filepath.Join(dir, "recs.csv")

	require.NoError(t, os.WriteFile(forecast, []byte("customer_id,day,predicted_value\n1532072415,2,2.5\n1532072415,1,1.5\n1532072415,3,1.0\n"), 0o600))
	require.NoError(t, os.WriteFile(recs, []byte("customer_id,item_id,category_id,score\n42,9,5,0.40\n42,7,3,0.91\n42,2,1,0.91\n"), 0o600))

	return &config.Config{
		App: config.App{DefaultCustomerID: "1532072415"},
		Dataset: config.Dataset{
			Source:             config.SourceFile,
			ForecastPath:       forecast,
			RecommendationPath: recs,
		},
		Insight: config.Insight{
			Strategy:          string(domain.InsightByScore),
			HighThreshold:     2.0,
			ModerateThreshold: 1.0,
		},
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	root.ResetCommands()
	load := func() (*config.Config, error) { return cfg, nil }
	root.AddCommand(newDashboardCmd(load), newTokenCmd(load))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestDashboardCommand(t *testing.T) {
	cfg := testConfig(t)

	t.Run("Cliente com recomendações", func(t *testing.T) {
		out, err := run(t, cfg, "dashboard", "--customer", "42")
		require.NoError(t, err)

		assert.Contains(t, out, "No forecast available for this customer.")
		assert.Contains(t, out, "Suggest offering a 10% discount for Item 7 (Category 3) to drive conversions.")
		assert.Less(t, strings.Index(out, "item 7"), strings.Index(out, "item 2"))
		assert.Less(t, strings.Index(out, "item 2"), strings.Index(out, "item 9"))
	})

	t.Run("Cliente padrão com previsão ordenada", func(t *testing.T) {
		out, err := run(t, cfg, "dashboard")
		require.NoError(t, err)

		assert.Less(t, strings.Index(out, "Day 1"), strings.Index(out, "Day 2"))
		assert.Contains(t, out, "mean 1.67")
		assert.Contains(t, out, domain.WaitingForDataMessage)
	})

	t.Run("Entrada inválida falha", func(t *testing.T) {
		_, err := run(t, cfg, "dashboard", "--customer", "abc")
		assert.ErrorIs(t, err, domain.ErrInvalidCustomerID)
	})

	t.Run("Saída JSON", func(t *testing.T) {
		out, err := run(t, cfg, "dashboard", "--customer", "42", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"customer_id": 42`)
	})
}

func TestTokenCommand(t *testing.T) {
	cfg := testConfig(t)

	out, err := run(t, cfg, "token", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := authenticating.NewService(cfg.Auth.Secret).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Name)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = run(t, cfg, "token")
	assert.Error(t, err)
}

func TestRenderDashboard_Skipped(t *testing.T) {
	view := &domain.DashboardView{
		CustomerID:      43,
		Strategy:        domain.InsightByThreshold,
		Forecast:        domain.EmptySection[domain.ForecastSeries]("No forecast available for this customer."),
		Recommendations: domain.EmptySection[[]domain.RecommendationRow]("No recommendations found for this customer."),
		Insight:         domain.SkippedSection[domain.Insight](),
	}

	var out bytes.Buffer
	require.NoError(t, renderDashboard(&out, view, 10))
	assert.Contains(t, out.String(), "no forecast available to derive an insight")
}
