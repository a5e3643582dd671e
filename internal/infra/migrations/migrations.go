package migrations

import (
	"embed"

	"github.com/jmoiron/sqlx"
	"github.com/matthiasBT/usercrud/internal/infra/logging"
	"github.com/pressly/goose/v3"
)

const dir = "sql"

//go:embed sql/*.sql
var embedMigrations embed.FS

// Migrate brings the schema up to the latest version. It must run before the server starts listening.
func Migrate(logger logging.ILogger, db *sqlx.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(logger)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	logger.Infoln("Applying database migrations")
	if err := goose.Up(db.DB, dir); err != nil {
		logger.Errorf("Failed to apply migrations: %v", err)
		return err
	}
	logger.Infoln("Migrations applied")
	return nil
}
