package config

import (
	"errors"
	"fmt"
	"gymhub/shared/constant"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"     default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"gymhub"`
		Timezone string `envconfig:"TIMEZONE" default:"Australia/Brisbane"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		AuthHeader    string `envconfig:"AUTH_HEADER"    default:"x-auth-key"`
		SessionCookie string `envconfig:"SESSION_COOKIE" default:"gym_session"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
			PoolSize           int `envconfig:"POOL_SIZE"            default:"10"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		SessionSecret    string `envconfig:"SESSION_SECRET"`
		SessionExpireMin int    `envconfig:"SESSION_EXPIRE_MIN" default:"720"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"        default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"  default:"2"`
			MaxOpenConns   int    `envconfig:"MAX_OPEN_CONNS"   default:"10"`
			MaxIdleConns   int    `envconfig:"MAX_IDLE_CONNS"   default:"10"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"  default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Export struct {
		BackupDirectory string `envconfig:"BACKUP_DIRECTORY" default:"exports"`
		S3Bucket        string `envconfig:"S3_BUCKET"`
		Copyright       string `envconfig:"COPYRIGHT"`
	} `envconfig:"EXPORT"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			Region          string `envconfig:"REGION" default:"auto"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf               *Config
	once               sync.Once
	errNoSessionSecret = errors.New("JWT_SESSION_SECRET is required in production")
)

// Load reads the optional dotenv files into the environment and decodes the
// environment into a Config. Missing dotenv files are not an error.
func Load(dotenv ...string) (*Config, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("loading %s: %w", file, err)
			}

			log.Debug().Str("file", file).Msg("dotenv file not found, using the process environment")
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the server cannot run safely with.
func (c *Config) Validate() error {
	if c.JWT.SessionSecret == "" && c.Server.Env == constant.ServerEnvProduction {
		return errNoSessionSecret
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %d", c.Cache.TTL)
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		return errors.New("rate limiter needs positive MAX_REQUESTS and WINDOW_SECONDS")
	}

	return nil
}

// Get returns the process-wide configuration, loading .env and the
// environment on first use. An unusable configuration stops the process.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load(".env")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		conf = cfg

		log.Info().Str("env", cfg.Server.Env).Msg("Service configuration initialized successfully")
	})

	return conf
}
