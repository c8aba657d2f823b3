package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AnthoniusHendriyanto/blacklist-service/pkg/constant"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultDBMaxConns       = 10
	DefaultDBTimeoutSeconds = 5
	DefaultLogLevel         = "info"
)

type Config struct {
	Env              string `validate:"required,oneof=development production test"`
	Port             string `validate:"required,numeric"`
	DBURL            string `validate:"required"`
	AuthToken        string `validate:"required"`
	DBMaxConns       int    `validate:"gt=0,lte=1000"`
	DBTimeoutSeconds int    `validate:"gt=0"`
	AutoMigrate      bool
	ProxyHeader      string
	LogLevel         string `validate:"oneof=debug info warn error"`
}

// ExpectedAuthorization is the exact Authorization header value protected routes accept.
func (c *Config) ExpectedAuthorization() string {
	return constant.BearerPrefix + c.AuthToken
}

func Load() *Config {
	env := getEnv("ENV", "development")
	loadEnvFile(env)

	cfg := &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		DBURL:            mustGetEnv("DB_URL"),
		AuthToken:        mustGetEnv("AUTH_TOKEN"),
		DBMaxConns:       getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBTimeoutSeconds: getEnvAsInt("DB_TIMEOUT_SECONDS", DefaultDBTimeoutSeconds),
		AutoMigrate:      getEnvAsBool("AUTO_MIGRATE", true),
		ProxyHeader:      getEnv("PROXY_HEADER", ""),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	return cfg
}

// loadEnvFile reads config/.env.dev or config/.env.prod. Variables already
// present in the process environment are not overridden.
func loadEnvFile(env string) {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}

	path := filepath.Join("config", name)
	if err := godotenv.Load(path); err != nil {
		log.Debug("No env file loaded, using process environment", "path", path)
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warnf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Warnf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
