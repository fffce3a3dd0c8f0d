package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/translation"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

type Config struct {
	DatabaseURL string

	BatchSize  int
	MaxRetries uint64
	Workers    int
	RunTimeout time.Duration

	TranslationEnabled bool
	TranslationURL     string
	TranslationAPIKey  string
	TranslationTimeout time.Duration
	TranslationRPS     float64

	APIAddr   string
	SecretKey string

	LogLevel    string
	LogEncoding string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperBatchSize, 1000)
	v.SetDefault(constants.ViperMaxRetries, 3)
	v.SetDefault(constants.ViperWorkers, 1)
	v.SetDefault(constants.ViperRunTimeout, time.Duration(0))

	v.SetDefault(constants.ViperTranslationEnabled, false)
	v.SetDefault(constants.ViperTranslationURL, "http://localhost:5000")
	v.SetDefault(constants.ViperTranslationTimeout, 10*time.Second)
	v.SetDefault(constants.ViperTranslationRPS, 5.0)

	v.SetDefault(constants.ViperAPIAddr, ":8080")

	v.SetDefault(constants.ViperLogLevel, "info")
	v.SetDefault(constants.ViperLogEncoding, "json")
}

// Load читает .env (если есть), затем config.yaml и переменные окружения в глобальный viper.
// DATABASE_URL перекрывает database.url и т.д.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.GetViper()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return FromViper(v)
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL: v.GetString(constants.ViperDatabaseURL),

		BatchSize:  v.GetInt(constants.ViperBatchSize),
		MaxRetries: v.GetUint64(constants.ViperMaxRetries),
		Workers:    v.GetInt(constants.ViperWorkers),
		RunTimeout: v.GetDuration(constants.ViperRunTimeout),

		TranslationEnabled: v.GetBool(constants.ViperTranslationEnabled),
		TranslationURL:     v.GetString(constants.ViperTranslationURL),
		TranslationAPIKey:  v.GetString(constants.ViperTranslationAPIKey),
		TranslationTimeout: v.GetDuration(constants.ViperTranslationTimeout),
		TranslationRPS:     v.GetFloat64(constants.ViperTranslationRPS),

		APIAddr:   v.GetString(constants.ViperAPIAddr),
		SecretKey: v.GetString(constants.ViperSecretKey),

		LogLevel:    v.GetString(constants.ViperLogLevel),
		LogEncoding: v.GetString(constants.ViperLogEncoding),
	}

	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d: %w", constants.ViperBatchSize, cfg.BatchSize, constants.ErrBadRequest)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg, nil
}

func (c *Config) NormalizerOptions() normalizer.Options {
	return normalizer.Options{
		BatchSize:  c.BatchSize,
		Workers:    c.Workers,
		MaxRetries: c.MaxRetries,
		Timeout:    c.RunTimeout,
		Translate:  c.TranslationEnabled,
	}
}

// TranslationFactory returns nil when translation is switched off; the normalizer then uses
// the no-op translator.
func (c *Config) TranslationFactory() translation.Factory {
	if !c.TranslationEnabled || c.TranslationURL == "" {
		return nil
	}

	limit := rate.Inf
	if c.TranslationRPS > 0 {
		limit = rate.Limit(c.TranslationRPS)
	}

	client := translation.NewClient(translation.Config{
		BaseURL:   c.TranslationURL,
		APIKey:    c.TranslationAPIKey,
		Timeout:   c.TranslationTimeout,
		RateLimit: limit,
	})
	return client.Factory()
}
