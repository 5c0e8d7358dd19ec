package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hostel/config"
	"hostel/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// MigrationDSN points golang-migrate at the write endpoint and its bookkeeping table.
func MigrationDSN(cfg *config.Config) string {
	dsn, err := url.Parse(postgres.WriteEndpoint(cfg).DSN())
	if err != nil {
		return postgres.WriteEndpoint(cfg).DSN()
	}

	if cfg.DB.Postgres.MigrationTable != "" {
		query := dsn.Query()
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String()
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, MigrationDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case "up":
		err = mig.Up()
	case "down":
		err = mig.Steps(-1)
	case "step-up":
		err = mig.Steps(1)
	case "drop":
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, "step-up")
}

func Down(cfg *config.Config) error {
	return Runner(cfg, "down")
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, "drop")
}
