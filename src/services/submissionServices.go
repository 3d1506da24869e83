package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/PracticasFISI/Practicas-Backend/src/storage"
	"gorm.io/gorm"
)

// Errores del flujo de envío de archivos, compartido por contratos e informes.
var (
	ErrStorageNotConfigured = errors.New("el almacenamiento de archivos no está configurado")
	ErrInvalidFileType      = errors.New("solo se permiten archivos PDF")
	ErrFileTooLarge         = errors.New("el archivo no debe superar los 10MB")
	ErrDuplicateSubmission  = errors.New("ya existe un envío de este alumno para este curso")
)

const maxSubmissionSize = 10 * 1024 * 1024

type SubmissionFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func validateSubmissionFile(f *SubmissionFile) error {
	if f == nil || f.Name == "" {
		return errors.New("archivo no proporcionado")
	}
	if f.ContentType != "application/pdf" {
		return ErrInvalidFileType
	}
	if f.Size > maxSubmissionSize {
		return ErrFileTooLarge
	}
	return nil
}

// submitFile ejecuta la parte común del envío: valida el archivo, lo sube al
// blob y corre insert con la URL resultante. Si el insert falla después de una
// subida exitosa, intenta una única eliminación del blob; si esa limpieza
// también falla solo queda registrado (blob huérfano aceptado).
func submitFile(ctx context.Context, blob storage.BlobStorage, keyPrefix string, alumnoId int, f *SubmissionFile, insert func(url string) error) (string, error) {
	if blob == nil {
		return "", ErrStorageNotConfigured
	}
	if err := validateSubmissionFile(f); err != nil {
		return "", err
	}

	key := storage.BuildKey(keyPrefix, alumnoId, f.Name)
	url, err := blob.Upload(ctx, key, f.Reader)
	if err != nil {
		return "", fmt.Errorf("error al subir el archivo: %w", err)
	}
	log.Printf("[SUBMISSION] Archivo subido: %s", url)

	if err := insert(url); err != nil {
		if delErr := blob.Delete(ctx, url); delErr != nil {
			log.Printf("[SUBMISSION] No se pudo limpiar el blob %s: %v", url, delErr)
		} else {
			log.Printf("[SUBMISSION] Blob eliminado tras error en BD: %s", url)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrDuplicateSubmission
		}
		return "", err
	}

	return url, nil
}

// deleteBlob elimina el objeto de forma best-effort: un fallo nunca bloquea el
// borrado de la fila que lo referencia.
func deleteBlob(ctx context.Context, blob storage.BlobStorage, fileURL string) {
	if blob == nil {
		log.Printf("[SUBMISSION] Almacenamiento no configurado, se omite eliminar %s", fileURL)
		return
	}
	if err := blob.Delete(ctx, fileURL); err != nil {
		log.Printf("[SUBMISSION] Error al eliminar blob %s: %v", fileURL, err)
	}
}
