package storeinfra

import (
	"embed"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate aplica las migraciones pendientes
func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errx.Wrap(err, "failed to set migration dialect", errx.TypeInternal)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return errx.Wrap(err, "failed to run migrations", errx.TypeInternal)
	}

	version, err := goose.GetDBVersion(db.DB)
	if err != nil {
		return errx.Wrap(err, "failed to read migration version", errx.TypeInternal)
	}
	logx.Infof("🗄️  Database schema at version %d", version)
	return nil
}
