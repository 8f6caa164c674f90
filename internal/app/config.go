package app

import (
	"strings"
	"time"

	"github.com/yungbote/mh1-bff/internal/data/db"
	"github.com/yungbote/mh1-bff/internal/platform/envutil"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type Config struct {
	Port    string
	LogMode string

	ServiceName string
	Environment string
	Version     string

	CMSGraphQLURL string
	CMSAPIToken   string
	CMSTimeout    time.Duration
	MediaBaseURL  string
	Timezone      string

	DBDriver string
	DBDSN    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecretKey   string
	AllowedOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:    envutil.String("PORT", "8080"),
		LogMode: envutil.String("LOG_MODE", "development"),

		ServiceName: envutil.FirstString("mh1-bff", "OTEL_SERVICE_NAME", "SERVICE_NAME"),
		Environment: envutil.FirstString("development", "APP_ENV", "ENVIRONMENT"),
		Version:     envutil.String("APP_VERSION", ""),

		CMSGraphQLURL: envutil.FirstString("", "CMS_GRAPHQL_URL", "STRAPI_GRAPHQL_URL"),
		CMSAPIToken:   envutil.FirstString("", "CMS_API_TOKEN", "STRAPI_API_TOKEN"),
		CMSTimeout:    envutil.Seconds("CMS_TIMEOUT_SECONDS", 15),
		MediaBaseURL:  envutil.FirstString("", "MEDIA_BASE_URL", "STRAPI_BASE_URL"),
		Timezone:      envutil.String("APP_TIMEZONE", "UTC"),

		DBDriver: envutil.String("DB_DRIVER", db.DriverPostgres),
		DBDSN:    envutil.String("DB_DSN", ""),

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),

		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", ""),
		AllowedOrigins: splitList(envutil.String("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.DBDSN == "" && strings.EqualFold(cfg.DBDriver, db.DriverPostgres) {
		cfg.DBDSN = db.PostgresDSN(
			envutil.String("POSTGRES_HOST", "localhost"),
			envutil.String("POSTGRES_PORT", "5432"),
			envutil.String("POSTGRES_USER", "postgres"),
			envutil.String("POSTGRES_PASSWORD", ""),
			envutil.String("POSTGRES_NAME", "mh1"),
		)
	}

	if log != nil {
		if cfg.JWTSecretKey == "" {
			log.Warn("JWT_SECRET_KEY not set; form routes will reject every token")
		}
		if cfg.RedisAddr == "" {
			log.Warn("REDIS_ADDR not set; form flags are kept in memory")
		}
	}
	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
