package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("error abriendo sqlite en memoria: %v", err)
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.CursoModel{},
		&models.OportunidadModel{},
		&models.ContratoModel{},
		&models.InformeModel{},
		&models.NovedadModel{},
	); err != nil {
		t.Fatalf("error en migración: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.UserModel {
	t.Helper()
	u := &models.UserModel{Name: name, Email: email, Password: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("error creando usuario %s: %v", email, err)
	}
	return u
}

func createTestCurso(t *testing.T, db *gorm.DB, nombre string, profesorId int) *models.CursoModel {
	t.Helper()
	c := &models.CursoModel{Nombre: nombre, ProfesorId: profesorId}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("error creando curso %s: %v", nombre, err)
	}
	return c
}

// fakeBlob registra las subidas y eliminaciones para verificar el flujo de
// envío sin tocar B2.
type fakeBlob struct {
	uploads    []string
	deletes    []string
	failUpload bool
	failDelete bool
}

func (f *fakeBlob) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	if f.failUpload {
		return "", errors.New("upload failed")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	url := "https://blob.test/file/practicas/" + key
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeBlob) Delete(ctx context.Context, fileURL string) error {
	f.deletes = append(f.deletes, fileURL)
	if f.failDelete {
		return errors.New("delete failed")
	}
	return nil
}

func pdfFile(name string, size int64) *SubmissionFile {
	return &SubmissionFile{
		Name:        name,
		ContentType: "application/pdf",
		Size:        size,
		Reader:      strings.NewReader("%PDF-1.4 contenido"),
	}
}
