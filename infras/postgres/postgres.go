package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"hostel/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side (read or write) of the database pair.
type Endpoint struct {
	Name     string
	Username string
	Password string
	Host     string
	Port     string
	Database string
	SSLMode  string
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  Connect(ReadEndpoint(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime),
		Write: Connect(WriteEndpoint(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime),
	}
}

func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func databaseName(cfg *config.Config, base string) string {
	return cfg.DB.Postgres.Prefix + base
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	write := cfg.DB.Postgres.Write

	return Endpoint{
		Name:     "write",
		Username: write.Username,
		Password: write.Password,
		Host:     write.Host,
		Port:     write.Port,
		Database: databaseName(cfg, write.Name),
		SSLMode:  write.SSLMode,
	}
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	read := cfg.DB.Postgres.Read

	return Endpoint{
		Name:     "read",
		Username: read.Username,
		Password: read.Password,
		Host:     read.Host,
		Port:     read.Port,
		Database: databaseName(cfg, read.Name),
		SSLMode:  read.SSLMode,
	}
}

// DSN renders the endpoint as a postgres URL with escaped credentials.
func (e Endpoint) DSN() string {
	sslMode := e.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Database,
		RawQuery: "sslmode=" + sslMode,
	}

	return dsn.String()
}

// Connect retries until the database answers or maxRetry attempts are spent. It returns nil on failure.
func Connect(endpoint Endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	if maxRetry < 1 {
		maxRetry = 1
	}

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", endpoint.DSN())
		if err == nil {
			log.
				Info().
				Str("name", endpoint.Name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Database).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", endpoint.Name).
			Str("host", endpoint.Host).
			Int("attempt", retry+1).
			Msg(fmt.Sprintf("Failed connecting to database, retrying in %ds", waitSeconds))

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}
