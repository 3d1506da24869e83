package services

import (
	"context"
	"errors"
	"testing"

	"github.com/PracticasFISI/Practicas-Backend/src/dtos"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"gorm.io/gorm"
)

func TestSubmitContrato(t *testing.T) {
	db := setupTestDB(t)
	blob := &fakeBlob{}
	svc := NewContratoService(db, blob, nil)

	profesor := createTestUser(t, db, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := createTestUser(t, db, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := createTestCurso(t, db, "PPP G1", profesor.Id)

	contrato, err := svc.SubmitContrato(context.Background(), curso.Id, alumno.Id, pdfFile("contrato final.pdf", 1024))
	if err != nil {
		t.Fatalf("SubmitContrato: %v", err)
	}

	if len(blob.uploads) != 1 {
		t.Fatalf("se esperaba 1 subida, hubo %d", len(blob.uploads))
	}
	if contrato.Archivo != blob.uploads[0] {
		t.Errorf("Archivo = %q, se esperaba la URL devuelta por el blob %q", contrato.Archivo, blob.uploads[0])
	}
	if contrato.Estado != models.EstadoPendiente {
		t.Errorf("Estado = %q, se esperaba PENDIENTE", contrato.Estado)
	}
	if contrato.Alumno == nil || contrato.Alumno.Email != alumno.Email {
		t.Errorf("el contrato no trae el alumno precargado")
	}
}

func TestSubmitContratoDuplicado(t *testing.T) {
	db := setupTestDB(t)
	blob := &fakeBlob{}
	svc := NewContratoService(db, blob, nil)

	profesor := createTestUser(t, db, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := createTestUser(t, db, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := createTestCurso(t, db, "PPP G1", profesor.Id)

	if _, err := svc.SubmitContrato(context.Background(), curso.Id, alumno.Id, pdfFile("v1.pdf", 100)); err != nil {
		t.Fatalf("primer envío: %v", err)
	}

	_, err := svc.SubmitContrato(context.Background(), curso.Id, alumno.Id, pdfFile("v2.pdf", 100))
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("segundo envío: err = %v, se esperaba ErrDuplicateSubmission", err)
	}

	// El duplicado se rechaza antes de subir: ni segunda fila ni segundo blob.
	if len(blob.uploads) != 1 {
		t.Errorf("subidas = %d, se esperaba 1", len(blob.uploads))
	}
	var count int64
	db.Model(&models.ContratoModel{}).Count(&count)
	if count != 1 {
		t.Errorf("filas = %d, se esperaba 1", count)
	}
}

func TestSubmitContratoValidaciones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContratoService(db, &fakeBlob{}, nil)

	profesor := createTestUser(t, db, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := createTestUser(t, db, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := createTestCurso(t, db, "PPP G1", profesor.Id)

	f := pdfFile("notas.txt", 100)
	f.ContentType = "text/plain"
	if _, err := svc.SubmitContrato(context.Background(), curso.Id, alumno.Id, f); !errors.Is(err, ErrInvalidFileType) {
		t.Errorf("tipo no PDF: err = %v, se esperaba ErrInvalidFileType", err)
	}

	if _, err := svc.SubmitContrato(context.Background(), curso.Id, alumno.Id, pdfFile("grande.pdf", 11*1024*1024)); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("archivo de 11MB: err = %v, se esperaba ErrFileTooLarge", err)
	}

	if _, err := svc.SubmitContrato(context.Background(), 9999, alumno.Id, pdfFile("ok.pdf", 100)); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("curso inexistente: err = %v, se esperaba ErrRecordNotFound", err)
	}

	sinStorage := NewContratoService(db, nil, nil)
	if _, err := sinStorage.SubmitContrato(context.Background(), curso.Id, alumno.Id, pdfFile("ok.pdf", 100)); !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("sin storage: err = %v, se esperaba ErrStorageNotConfigured", err)
	}
}

func TestSubmitContratoCompensaBlobSiFallaBD(t *testing.T) {
	db := setupTestDB(t)
	blob := &fakeBlob{}
	svc := NewContratoService(db, blob, nil)

	profesor := createTestUser(t, db, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := createTestUser(t, db, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := createTestCurso(t, db, "PPP G1", profesor.Id)

	// Forzar el fallo del insert después de la subida.
	err := db.Callback().Create().Before("gorm:create").Register("test_force_fail", func(tx *gorm.DB) {
		if tx.Statement != nil && tx.Statement.Table == "contratos" {
			tx.AddError(errors.New("insert forzado a fallar"))
		}
	})
	if err != nil {
		t.Fatalf("registrando callback: %v", err)
	}

	if _, err := svc.SubmitContrato(context.Background(), curso.Id, alumno.Id, pdfFile("contrato.pdf", 100)); err == nil {
		t.Fatal("se esperaba error del insert")
	}

	if len(blob.uploads) != 1 {
		t.Fatalf("subidas = %d, se esperaba 1", len(blob.uploads))
	}
	if len(blob.deletes) != 1 {
		t.Fatalf("eliminaciones = %d, se esperaba exactamente 1", len(blob.deletes))
	}
	if blob.deletes[0] != blob.uploads[0] {
		t.Errorf("se eliminó %q, se esperaba la URL subida %q", blob.deletes[0], blob.uploads[0])
	}
}

func TestUpdateContratoParcial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContratoService(db, &fakeBlob{}, nil)

	profesor := createTestUser(t, db, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := createTestUser(t, db, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := createTestCurso(t, db, "PPP G1", profesor.Id)

	contrato := &models.ContratoModel{Archivo: "https://blob.test/c.pdf", Estado: models.EstadoPendiente, AlumnoId: alumno.Id, CursoId: curso.Id}
	if err := db.Create(contrato).Error; err != nil {
		t.Fatalf("creando contrato: %v", err)
	}

	estado := string(models.EstadoAprobado)
	actualizado, err := svc.UpdateContrato(contrato.Id, &dtos.UpdateContratoRequest{Estado: &estado})
	if err != nil {
		t.Fatalf("UpdateContrato: %v", err)
	}
	if actualizado.Estado != models.EstadoAprobado {
		t.Errorf("Estado = %q, se esperaba APROBADO", actualizado.Estado)
	}

	// Volver a PENDIENTE con comentario: el grafo de estados no tiene terminales.
	estado = string(models.EstadoPendiente)
	comentario := "Reenviar antes del viernes"
	actualizado, err = svc.UpdateContrato(contrato.Id, &dtos.UpdateContratoRequest{Estado: &estado, Comentario: &comentario})
	if err != nil {
		t.Fatalf("UpdateContrato (reset): %v", err)
	}
	if actualizado.Estado != models.EstadoPendiente || actualizado.Comentario != comentario {
		t.Errorf("reset = (%q, %q), se esperaba (PENDIENTE, %q)", actualizado.Estado, actualizado.Comentario, comentario)
	}
}

func TestDeleteContratoBestEffortBlob(t *testing.T) {
	db := setupTestDB(t)
	blob := &fakeBlob{failDelete: true}
	svc := NewContratoService(db, blob, nil)

	profesor := createTestUser(t, db, "Profesor", "prof@fisi.edu.pe", models.RoleProfessor)
	alumno := createTestUser(t, db, "Alumno", "alumno@fisi.edu.pe", models.RoleStudent)
	curso := createTestCurso(t, db, "PPP G1", profesor.Id)

	contrato := &models.ContratoModel{Archivo: "https://blob.test/file/practicas/contratos/1_1_c.pdf", Estado: models.EstadoPendiente, AlumnoId: alumno.Id, CursoId: curso.Id}
	if err := db.Create(contrato).Error; err != nil {
		t.Fatalf("creando contrato: %v", err)
	}

	// El fallo al eliminar el blob no debe impedir borrar la fila.
	if err := svc.DeleteContrato(context.Background(), contrato.Id); err != nil {
		t.Fatalf("DeleteContrato: %v", err)
	}

	if len(blob.deletes) != 1 {
		t.Errorf("eliminaciones de blob = %d, se esperaba 1", len(blob.deletes))
	}
	var count int64
	db.Model(&models.ContratoModel{}).Count(&count)
	if count != 0 {
		t.Errorf("filas restantes = %d, se esperaba 0", count)
	}
}
