package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/infra/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations применяет все миграции из каталога migrations к базе данных.
func RunMigrations(cfg *config.Config) error {
	const op = "app.RunMigrations"

	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s",
		cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return fmt.Errorf("%s: failed to initialize migrations: %w", op, err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("Migrations: no changes")
			return nil
		}
		return fmt.Errorf("%s: migration execution failed: %w", op, err)
	}

	log.Println("Migrations applied successfully!")
	return nil
}
