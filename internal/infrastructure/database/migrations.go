package database

import (
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica as migrações pendentes do diretório migrations
func RunMigrations() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// Construir a URL do banco a partir das variáveis individuais
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			getEnvOrDefault("DB_USER", "postgres"),
			getEnvOrDefault("DB_PASSWORD", "postgres"),
			getEnvOrDefault("DB_HOST", "localhost"),
			getEnvOrDefault("DB_PORT", "5432"),
			getEnvOrDefault("DB_NAME", "smart_canteen"),
			getEnvOrDefault("DB_SSLMODE", "disable"),
		)
	}

	migrationsPath := getEnvOrDefault("MIGRATIONS_PATH", "migrations")
	sourceURL := fmt.Sprintf("file://%s", migrationsPath)

	// Criar instância do migrate
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	// Aplicar migrações
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	log.Println("Migrações aplicadas com sucesso")
	return nil
}
