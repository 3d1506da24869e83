package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/kurin/blazer/b2"
)

// BlobStorage abstrae el almacenamiento de archivos subidos. Los servicios
// reciben la interfaz para poder probarse sin tocar B2.
type BlobStorage interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type B2Storage struct {
	client *b2.Client
	bucket *b2.Bucket
}

func NewB2Storage(ctx context.Context, accountId, appKey, bucketName string) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, accountId, appKey)
	if err != nil {
		return nil, fmt.Errorf("error creando cliente b2: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo bucket %s: %w", bucketName, err)
	}

	log.Printf("[B2] Almacenamiento inicializado (bucket %s)", bucketName)

	return &B2Storage{client: client, bucket: bucket}, nil
}

// Upload escribe el objeto y devuelve su URL pública.
func (s *B2Storage) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("error escribiendo objeto %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error cerrando escritura de %s: %w", key, err)
	}

	return fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), key), nil
}

// Delete elimina el objeto referido por una URL devuelta por Upload.
func (s *B2Storage) Delete(ctx context.Context, fileURL string) error {
	key, err := keyFromURL(fileURL, s.bucket.Name())
	if err != nil {
		return err
	}
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("error eliminando objeto %s: %w", key, err)
	}
	return nil
}

func keyFromURL(fileURL, bucketName string) (string, error) {
	marker := "/file/" + bucketName + "/"
	idx := strings.Index(fileURL, marker)
	if idx < 0 {
		return "", fmt.Errorf("la URL no pertenece al bucket %s: %s", bucketName, fileURL)
	}
	key := fileURL[idx+len(marker):]
	if key == "" {
		return "", fmt.Errorf("la URL no contiene clave de objeto: %s", fileURL)
	}
	return key, nil
}

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SafeFileName reemplaza todo carácter fuera de [a-zA-Z0-9.-] por '_'.
func SafeFileName(name string) string {
	return unsafeFileNameChars.ReplaceAllString(name, "_")
}

// BuildKey arma la clave del objeto: prefijo/timestamp_alumnoId_nombreSeguro.
// El timestamp evita colisiones entre subidas del mismo alumno.
func BuildKey(prefix string, alumnoId int, fileName string) string {
	return fmt.Sprintf("%s/%d_%d_%s", prefix, time.Now().UnixMilli(), alumnoId, SafeFileName(fileName))
}
