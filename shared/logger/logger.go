package logger

import (
	"gymhub/config"
	"gymhub/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human-readable lines in development and JSON everywhere else.
func InitLogger(cfg *config.Config) {
	Init(cfg, os.Stdout)
}

func Init(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).
		With().
		Timestamp().
		Str("service", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Logger()

	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. An unset or unknown level keeps
// everything in development and drops to info elsewhere.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.InfoLevel
		if cfg.Server.Env == constant.ServerEnvDevelopment {
			level = zerolog.TraceLevel
		}

		log.Debug().Str("loglevel", level.String()).Msg("No usable log level configured, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
