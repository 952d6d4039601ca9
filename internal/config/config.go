package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is shared by both binaries. The content server reads the storage and
// rate limit settings, the chatbot reads the CONTENT_API_* settings.
type Config struct {
	AppPort          int           `mapstructure:"APP_PORT"`
	ChatPort         int           `mapstructure:"CHAT_PORT"`
	DatabasePath     string        `mapstructure:"DATABASE_PATH"`
	UploadDir        string        `mapstructure:"UPLOAD_DIR"`
	PublicBaseURL    string        `mapstructure:"PUBLIC_BASE_URL"`
	MaxUploadBytes   int64         `mapstructure:"MAX_UPLOAD_BYTES"`
	RateLimitPerHour int           `mapstructure:"RATE_LIMIT_PER_HOUR"`
	ContentAPIURL    string        `mapstructure:"CONTENT_API_URL"`
	ContentTimeout   time.Duration `mapstructure:"CONTENT_API_TIMEOUT"`
	ContentFanout    int           `mapstructure:"CONTENT_FANOUT"`
	CORSOrigins      []string      `mapstructure:"CORS_ORIGINS"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("CHAT_PORT", 5000)
	viper.SetDefault("DATABASE_PATH", "/data/imagevault.db")
	viper.SetDefault("UPLOAD_DIR", "/data/uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")
	viper.SetDefault("MAX_UPLOAD_BYTES", 10*1024*1024)
	viper.SetDefault("RATE_LIMIT_PER_HOUR", 100)
	viper.SetDefault("CONTENT_API_URL", "http://localhost:8000")
	viper.SetDefault("CONTENT_API_TIMEOUT", "10s")
	viper.SetDefault("CONTENT_FANOUT", 4)
	viper.SetDefault("CORS_ORIGINS", []string{"*"})
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// CORS_ORIGINS arrives as a single comma separated string from the environment.
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = splitList(cfg.CORSOrigins[0])
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
