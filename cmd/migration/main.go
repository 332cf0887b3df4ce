package main

import (
	"log"

	"github.com/hugohenrick/smart-canteen/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Executar as migrações
	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
