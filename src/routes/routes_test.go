package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	middleware.SetSecretKey("test-secret")
	os.Exit(m.Run())
}

type fakeBlob struct {
	uploads    []string
	deletes    []string
	failDelete bool
}

func (f *fakeBlob) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
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

type testEnv struct {
	db     *gorm.DB
	blob   *fakeBlob
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
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

	blob := &fakeBlob{}
	router := gin.New()

	userService := services.NewUserService(db)
	cursoService := services.NewCursoService(db)
	oportunidadService := services.NewOportunidadService(db)
	contratoService := services.NewContratoService(db, blob, cursoService)
	informeService := services.NewInformeService(db, blob, cursoService)
	novedadService := services.NewNovedadService(db, cursoService)

	SetupUserRoutes(router, userService)
	SetupCursoRoutes(router, cursoService)
	SetupOportunidadRoutes(router, oportunidadService)
	SetupContratoRoutes(router, contratoService)
	SetupInformeRoutes(router, informeService)
	SetupNovedadRoutes(router, novedadService, cursoService)

	return &testEnv{db: db, blob: blob, router: router}
}

func (e *testEnv) createUser(t *testing.T, name, email string, role models.UserRole) *models.UserModel {
	t.Helper()
	u := &models.UserModel{Name: name, Email: email, Password: "x", Role: role}
	if err := e.db.Create(u).Error; err != nil {
		t.Fatalf("error creando usuario %s: %v", email, err)
	}
	return u
}

func (e *testEnv) createCurso(t *testing.T, nombre string, profesorId int) *models.CursoModel {
	t.Helper()
	c := &models.CursoModel{Nombre: nombre, ProfesorId: profesorId}
	if err := e.db.Create(c).Error; err != nil {
		t.Fatalf("error creando curso %s: %v", nombre, err)
	}
	return c
}

func tokenFor(t *testing.T, u *models.UserModel) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    u.Id,
		"email": u.Email,
		"role":  string(u.Role),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		t.Fatalf("error firmando token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("error serializando cuerpo: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doUpload envía un multipart con el campo archivo.
func (e *testEnv) doUpload(t *testing.T, path, token, fileName, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="archivo"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("error creando parte multipart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("error escribiendo archivo: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("respuesta no es JSON: %v (%s)", err, w.Body.String())
	}
	return envelope
}
