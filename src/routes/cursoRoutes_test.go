package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
)

func TestGetCursoDetalle(t *testing.T) {
	env := setupTestEnv(t)
	profesor := env.createUser(t, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := env.createUser(t, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := env.createCurso(t, "PPP G1", profesor.Id)

	contrato := &models.ContratoModel{Archivo: "https://blob.test/c.pdf", Estado: models.EstadoPendiente, AlumnoId: alumno.Id, CursoId: curso.Id}
	if err := env.db.Create(contrato).Error; err != nil {
		t.Fatalf("creando contrato: %v", err)
	}

	w := env.do(t, http.MethodGet, fmt.Sprintf("/cursos/%d", curso.Id), tokenFor(t, alumno), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, se esperaba 200 (%s)", w.Code, w.Body.String())
	}

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	if data["profesor"] == nil {
		t.Error("el detalle no incluye al profesor")
	}
	if contratos := data["contratos"].([]interface{}); len(contratos) != 1 {
		t.Errorf("contratos en el detalle = %d, se esperaba 1", len(contratos))
	}

	// Curso inexistente
	w = env.do(t, http.MethodGet, "/cursos/9999", tokenFor(t, alumno), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("curso inexistente: status = %d, se esperaba 404", w.Code)
	}

	// Sin sesión
	w = env.do(t, http.MethodGet, fmt.Sprintf("/cursos/%d", curso.Id), "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("sin token: status = %d, se esperaba 401", w.Code)
	}
}

func TestNovedades(t *testing.T) {
	env := setupTestEnv(t)
	profesor := env.createUser(t, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	otroProfesor := env.createUser(t, "Otro", "otro@fisi.edu.pe", models.RoleProfessor)
	alumno := env.createUser(t, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := env.createCurso(t, "PPP G1", profesor.Id)

	path := fmt.Sprintf("/novedades/%d", curso.Id)

	// Solo el profesor del curso publica
	w := env.do(t, http.MethodPost, path, tokenFor(t, alumno), map[string]string{"contenido": "Hola"})
	if w.Code != http.StatusForbidden {
		t.Errorf("alumno publica: status = %d, se esperaba 403", w.Code)
	}
	w = env.do(t, http.MethodPost, path, tokenFor(t, otroProfesor), map[string]string{"contenido": "Hola"})
	if w.Code != http.StatusForbidden {
		t.Errorf("profesor ajeno publica: status = %d, se esperaba 403", w.Code)
	}

	w = env.do(t, http.MethodPost, path, tokenFor(t, profesor), map[string]string{"contenido": "Primera novedad"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, se esperaba 201 (%s)", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodPost, path, tokenFor(t, profesor), map[string]string{"contenido": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("contenido vacío: status = %d, se esperaba 400", w.Code)
	}

	// Los alumnos las leen
	w = env.do(t, http.MethodGet, path, tokenFor(t, alumno), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listado: status = %d, se esperaba 200", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if items := envelope["data"].([]interface{}); len(items) != 1 {
		t.Errorf("novedades = %d, se esperaba 1", len(items))
	}
}

func TestExportCursoAutorizacion(t *testing.T) {
	env := setupTestEnv(t)
	profesor := env.createUser(t, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	otroProfesor := env.createUser(t, "Otro", "otro@fisi.edu.pe", models.RoleProfessor)
	admin := env.createUser(t, "Admin", "admin@fisi.edu.pe", models.RoleAdministrative)
	curso := env.createCurso(t, "PPP G1", profesor.Id)

	path := fmt.Sprintf("/cursos/%d/export", curso.Id)

	w := env.do(t, http.MethodGet, path, tokenFor(t, otroProfesor), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("profesor ajeno exporta: status = %d, se esperaba 403", w.Code)
	}

	w = env.do(t, http.MethodGet, path, tokenFor(t, profesor), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profesor dueño exporta: status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}

	w = env.do(t, http.MethodGet, path, tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Errorf("administrativo exporta: status = %d, se esperaba 200", w.Code)
	}
}
