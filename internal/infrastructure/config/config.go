package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	// JWTSecret signs bearer tokens; IDSecret keys the identifier codec and
	// must be 16, 24 or 32 bytes. Both are required: there is no safe
	// default for a signing key.
	JWTSecret string `env:"JWT_SECRET, required"`
	IDSecret  string `env:"ID_SECRET, required"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
	Mail      MailConfig
	Kakao     KakaoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=insight"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AnalyticsConfig struct {
	BaseURL string        `env:"ANALYTICS_URL,     default=http://localhost:8000"`
	Timeout time.Duration `env:"ANALYTICS_TIMEOUT, default=30s"`
}

type MailConfig struct {
	SMTPHost string `env:"SMTP_HOST, default=localhost"`
	SMTPPort int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM,    default=no-reply@storepulse.io"`
	Workers  int    `env:"MAIL_WORKERS, default=4"`
}

type KakaoConfig struct {
	ClientID     string `env:"KAKAO_CLIENT_ID"`
	ClientSecret string `env:"KAKAO_CLIENT_SECRET"`
	RedirectURL  string `env:"KAKAO_REDIRECT_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
