package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError hace que las violaciones de unicidad lleguen como
	// gorm.ErrDuplicatedKey, de lo que dependen los servicios de contratos e informes.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Println("Error al conectar a la base de datos:", err)
		return nil, err
	}

	log.Println("Practicas DB connected successfully!")

	return db, nil
}
