package config

import (
	"os"
)

type Config struct {
	DatabaseDSN string
	JWTSecret   string
	ServerHost  string

	// Credenciales de Backblaze B2. Pueden faltar en desarrollo: los endpoints
	// de subida responden con error de configuración hasta que se definan.
	B2AccountId  string
	B2AppKey     string
	B2BucketName string

	RunSeed bool
}

func Load() *Config {
	databaseDSN := getEnv("DB_DSN", "")
	jwtSecret := getEnv("JWT_SECRET", "")

	if databaseDSN == "" {
		panic("DB_DSN no está configurada")
	}
	if jwtSecret == "" {
		panic("JWT_SECRET no está configurada")
	}

	return &Config{
		DatabaseDSN:  databaseDSN,
		JWTSecret:    jwtSecret,
		ServerHost:   getEnv("SERVER_HOST", ":8080"),
		B2AccountId:  getEnv("B2_ACCOUNT_ID", ""),
		B2AppKey:     getEnv("B2_APPLICATION_KEY", ""),
		B2BucketName: getEnv("B2_BUCKET_NAME", ""),
		RunSeed:      getEnv("SEED", "") == "true",
	}
}

// HasBlobStorage indica si hay credenciales completas para el almacenamiento
// de archivos.
func (c *Config) HasBlobStorage() bool {
	return c.B2AccountId != "" && c.B2AppKey != "" && c.B2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
