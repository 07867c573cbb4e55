package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"

	// DefaultAuthSecret só serve para desenvolvimento local
	DefaultAuthSecret = "your_secret_key"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Insight      Insight      `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	CacheRefresh CacheRefresh `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type App struct {
	LogLevel          string `mapstructure:"log_level"`
	Env               string `mapstructure:"app_env"`
	DefaultCustomerID string `mapstructure:"default_customer_id"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	RateLimitPerMinute int      `mapstructure:"rate_limit_per_minute"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source             string `mapstructure:"dataset_source"`
	ForecastPath       string `mapstructure:"forecast_path"`
	RecommendationPath string `mapstructure:"recommendation_path"`
	XLSXSheet          string `mapstructure:"xlsx_sheet"`
}

type Database struct {
	DSN                string `mapstructure:"-"`
	Driver             string `mapstructure:"database_driver"`
	Password           string `mapstructure:"database_password"`
	URL                string `mapstructure:"database_url"`
	User               string `mapstructure:"database_user"`
	ConnectMaxAttempts int    `mapstructure:"database_connect_max_attempts"`
}

type Insight struct {
	Strategy          string  `mapstructure:"insight_strategy"`
	HighThreshold     float64 `mapstructure:"insight_high_threshold"`
	ModerateThreshold float64 `mapstructure:"insight_moderate_threshold"`
}

type Cache struct {
	Enabled bool `mapstructure:"cache_enabled"`
}

type CacheRefresh struct {
	CronSchedule string `mapstructure:"cache_refresh_cron"`
	Enabled      bool   `mapstructure:"cache_refresh_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DEFAULT_CUSTOMER_ID", "1532072415")

	viper.SetDefault("DATASET_SOURCE", SourceFile)
	viper.SetDefault("FORECAST_PATH", "forecast.csv")
	viper.SetDefault("RECOMMENDATION_PATH", "recs.csv")
	viper.SetDefault("XLSX_SHEET", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/smartshop?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_CONNECT_MAX_ATTEMPTS", 5)

	viper.SetDefault("INSIGHT_STRATEGY", string(domain.InsightByScore))
	viper.SetDefault("INSIGHT_HIGH_THRESHOLD", domain.DefaultThresholds.High)
	viper.SetDefault("INSIGHT_MODERATE_THRESHOLD", domain.DefaultThresholds.Moderate)

	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CACHE_REFRESH_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", DefaultAuthSecret)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que deixariam o painel sem estratégia clara
func (c *Config) Validate() error {
	c.Insight.Strategy = strings.ToLower(strings.TrimSpace(c.Insight.Strategy))
	if !domain.InsightStrategy(c.Insight.Strategy).Valid() {
		return fmt.Errorf("INSIGHT_STRATEGY inválida: %q (use score ou threshold)", c.Insight.Strategy)
	}

	if c.Insight.ModerateThreshold > c.Insight.HighThreshold {
		return fmt.Errorf("INSIGHT_MODERATE_THRESHOLD (%.2f) maior que INSIGHT_HIGH_THRESHOLD (%.2f)",
			c.Insight.ModerateThreshold, c.Insight.HighThreshold)
	}

	if !c.IsDevelopment() && (c.Auth.Secret == "" || c.Auth.Secret == DefaultAuthSecret) {
		return fmt.Errorf("AUTH_SECRET precisa ser definido quando APP_ENV=%s", c.App.Env)
	}

	switch c.Dataset.Source {
	case SourceFile:
		if c.Dataset.ForecastPath == "" || c.Dataset.RecommendationPath == "" {
			return fmt.Errorf("FORECAST_PATH e RECOMMENDATION_PATH são obrigatórios para DATASET_SOURCE=file")
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	return nil
}

// IsDevelopment segue a mesma regra de log.IsDevelopment
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.App.Env)) {
	case "", "development", "dev":
		return true
	}
	return false
}

func (c *Config) InsightStrategy() domain.InsightStrategy {
	return domain.InsightStrategy(c.Insight.Strategy)
}

func (c *Config) Thresholds() domain.Thresholds {
	return domain.Thresholds{
		High:     c.Insight.HighThreshold,
		Moderate: c.Insight.ModerateThreshold,
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
