package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Smart Task Assistant specifics
	Extractor ExtractorConfig
	Scoring   ScoringConfig
	Telegram  TelegramConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ExtractorConfig configures the natural-language extractor.
type ExtractorConfig struct {
	Timezone string // IANA timezone anchoring relative dates
}

// ScoringConfig configures the priority scoring core.
type ScoringConfig struct {
	UrgencyWeight    float64
	ImportanceWeight float64
	EffortWeight     float64
	IncludeUnscored  bool // keep nil/unparsable records in ranking output at score 0.0
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Extractor
	cfg.Extractor.Timezone = viper.GetString("extractor.timezone")

	// Scoring
	cfg.Scoring.UrgencyWeight = viper.GetFloat64("scoring.urgency_weight")
	cfg.Scoring.ImportanceWeight = viper.GetFloat64("scoring.importance_weight")
	cfg.Scoring.EffortWeight = viper.GetFloat64("scoring.effort_weight")
	cfg.Scoring.IncludeUnscored = viper.GetBool("scoring.include_unscored")
	if err := validateScoring(cfg.Scoring); err != nil {
		return nil, err
	}

	// Telegram (optional delivery)
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("extractor.timezone", "UTC")

	viper.SetDefault("scoring.urgency_weight", 0.6)
	viper.SetDefault("scoring.importance_weight", 0.3)
	viper.SetDefault("scoring.effort_weight", 0.1)
	viper.SetDefault("scoring.include_unscored", true)

	viper.SetDefault("rate_limit.requests_per_min", 60)
}

// validateScoring rejects weight vectors the scorer cannot normalize
// meaningfully. Negative weights are a config mistake, not a domain
// state; an all-zero vector is allowed (the scorer divides by 1.0).
func validateScoring(sc ScoringConfig) error {
	if sc.UrgencyWeight < 0 || sc.ImportanceWeight < 0 || sc.EffortWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative: urgency=%v importance=%v effort=%v",
			sc.UrgencyWeight, sc.ImportanceWeight, sc.EffortWeight)
	}
	return nil
}
