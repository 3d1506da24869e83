package main

import (
	"log"
	"os"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/seed"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN no está configurada")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.CursoModel{},
		&models.OportunidadModel{},
		&models.ContratoModel{},
		&models.InformeModel{},
		&models.NovedadModel{},
	); err != nil {
		log.Fatalf("failed to migrate models: %v", err)
	}

	seed.Seed(db)
}
