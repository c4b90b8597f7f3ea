package postgres

//nolint:revive
import (
	"fmt"
	"gymhub/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type poolOptions struct {
	maxRetry     int
	waitTime     int
	maxOpenConns int
	maxIdleConns int
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
		}
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}
	return baseName
}

func getPoolOptions(config config.Config) poolOptions {
	return poolOptions{
		maxRetry:     config.DB.Postgres.MaxRetry,
		waitTime:     config.DB.Postgres.RetryWaitTime,
		maxOpenConns: config.DB.Postgres.MaxOpenConns,
		maxIdleConns: config.DB.Postgres.MaxIdleConns,
	}
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		DSN(config.DB.Postgres.Write.Username, config.DB.Postgres.Write.Password,
			config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port,
			getDBName(config, config.DB.Postgres.Write.Name), config.DB.Postgres.Write.SSLMode),
		getPoolOptions(config),
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		DSN(config.DB.Postgres.Read.Username, config.DB.Postgres.Read.Password,
			config.DB.Postgres.Read.Host, config.DB.Postgres.Read.Port,
			getDBName(config, config.DB.Postgres.Read.Name), config.DB.Postgres.Read.SSLMode),
		getPoolOptions(config),
	)
}

// DSN builds a lib/pq connection URL.
func DSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection, retrying up to maxRetry times.
func CreatePostgresConnection(name, descriptor string, options poolOptions) *sqlx.DB {
	attempts := max(options.maxRetry, 1)

	for retry := range attempts {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Int("maxOpenConns", options.maxOpenConns).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(options.maxIdleConns)
			sqlDB.SetMaxOpenConns(options.maxOpenConns)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(options.waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msg("Could not connect to database")

	return nil
}
