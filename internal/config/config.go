package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Upload           Upload           `mapstructure:",squash"`
	Session          Session          `mapstructure:",squash"`
	ExchangeRate     ExchangeRate     `mapstructure:",squash"`
	ExchangeRateSync ExchangeRateSync `mapstructure:",squash"`
	SessionCleanup   SessionCleanup   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	CorsAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	SlowRequest        time.Duration `mapstructure:"slow_request_threshold"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type Session struct {
	TTL time.Duration `mapstructure:"session_ttl"`
}

type ExchangeRate struct {
	URL      string        `mapstructure:"exchange_rate_url"`
	Pair     string        `mapstructure:"exchange_rate_pair"`
	Timeout  time.Duration `mapstructure:"exchange_rate_timeout"`
	CacheTTL time.Duration `mapstructure:"exchange_rate_cache_ttl"`
}

type ExchangeRateSync struct {
	CronSchedule string `mapstructure:"exchange_rate_sync_cron"`
	Enabled      bool   `mapstructure:"exchange_rate_sync_enabled"`
}

type SessionCleanup struct {
	CronSchedule string `mapstructure:"session_cleanup_cron"`
	Enabled      bool   `mapstructure:"session_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SLOW_REQUEST_THRESHOLD", "500ms")

	viper.SetDefault("UPLOAD_MAX_BYTES", 10<<20) // 10 MiB
	viper.SetDefault("SESSION_TTL", "2h")

	viper.SetDefault("EXCHANGE_RATE_URL", "https://economia.awesomeapi.com.br/json/last")
	viper.SetDefault("EXCHANGE_RATE_PAIR", "USD-BRL")
	viper.SetDefault("EXCHANGE_RATE_TIMEOUT", "5s")
	viper.SetDefault("EXCHANGE_RATE_CACHE_TTL", "15m")

	viper.SetDefault("EXCHANGE_RATE_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("EXCHANGE_RATE_SYNC_ENABLED", false)

	viper.SetDefault("SESSION_CLEANUP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica se os valores carregados são utilizáveis
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("config: PORT inválida %q: %w", c.Server.Port, err)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("config: UPLOAD_MAX_BYTES deve ser positivo")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL deve ser positivo")
	}

	if c.ExchangeRate.URL == "" || c.ExchangeRate.Pair == "" {
		return fmt.Errorf("config: EXCHANGE_RATE_URL e EXCHANGE_RATE_PAIR são obrigatórios")
	}

	if c.ExchangeRate.Timeout <= 0 {
		return fmt.Errorf("config: EXCHANGE_RATE_TIMEOUT deve ser positivo")
	}

	if c.ExchangeRateSync.Enabled && c.ExchangeRateSync.CronSchedule == "" {
		return fmt.Errorf("config: EXCHANGE_RATE_SYNC_CRON é obrigatório quando a sincronização está habilitada")
	}

	if c.SessionCleanup.Enabled && c.SessionCleanup.CronSchedule == "" {
		return fmt.Errorf("config: SESSION_CLEANUP_CRON é obrigatório quando a limpeza está habilitada")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
