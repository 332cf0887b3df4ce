package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresDB cria uma nova conexão com o banco de dados PostgreSQL
func NewPostgresDB() (*pgxpool.Pool, error) {
	connString := ConnectionString()

	// Configurar pool de conexões
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	// Ajustar configurações do pool
	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	// Registrar o codec de decimais para as colunas NUMERIC
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	// Criar pool de conexões
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	// Testar conexão
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	return pool, nil
}

// ConnectionString monta a string de conexão a partir do ambiente
func ConnectionString() string {
	if connString := os.Getenv("DATABASE_URL"); connString != "" {
		return connString
	}

	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "postgres")
	dbname := getEnvOrDefault("DB_NAME", "smart_canteen")
	sslmode := getEnvOrDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}

// Transaction executa uma função dentro de uma transação
func Transaction(ctx context.Context, pool *pgxpool.Pool, txFunc func(tx pgx.Tx) error) error {
	// Iniciar transação
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	// Executar função dentro da transação
	if err := txFunc(tx); err != nil {
		// Rollback em caso de erro
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Printf("erro ao fazer rollback: %v", rbErr)
		}
		return err
	}

	// Commit se tudo ocorreu bem
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// getEnvOrDefault retorna o valor de uma variável de ambiente ou um valor padrão
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
