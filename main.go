package main

import (
	"context"
	"log"

	"github.com/PracticasFISI/Practicas-Backend/src/config"
	"github.com/PracticasFISI/Practicas-Backend/src/db"
	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/routes"
	"github.com/PracticasFISI/Practicas-Backend/src/seed"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/PracticasFISI/Practicas-Backend/src/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	middleware.SetSecretKey(cfg.JWTSecret)

	// Database connection
	database, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := database.AutoMigrate(
		&models.UserModel{},
		&models.CursoModel{},
		&models.OportunidadModel{},
		&models.ContratoModel{},
		&models.InformeModel{},
		&models.NovedadModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	if cfg.RunSeed {
		seed.Seed(database)
	}

	// Blob storage (opcional en desarrollo: sin credenciales los endpoints de
	// subida responden con error de configuración)
	var blob storage.BlobStorage
	if cfg.HasBlobStorage() {
		b2Storage, err := storage.NewB2Storage(context.Background(), cfg.B2AccountId, cfg.B2AppKey, cfg.B2BucketName)
		if err != nil {
			log.Fatalf("Error initializing blob storage: %v\n", err)
		}
		blob = b2Storage
	} else {
		log.Println("Blob storage no configurado: los envíos de archivos quedarán deshabilitados")
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	userService := services.NewUserService(database)
	cursoService := services.NewCursoService(database)
	oportunidadService := services.NewOportunidadService(database)
	contratoService := services.NewContratoService(database, blob, cursoService)
	informeService := services.NewInformeService(database, blob, cursoService)
	novedadService := services.NewNovedadService(database, cursoService)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupCursoRoutes(router, cursoService)
	routes.SetupOportunidadRoutes(router, oportunidadService)
	routes.SetupContratoRoutes(router, contratoService)
	routes.SetupInformeRoutes(router, informeService)
	routes.SetupNovedadRoutes(router, novedadService, cursoService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Practicas API")
	})

	// Server run
	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.ServerHost, err)
	}
}
