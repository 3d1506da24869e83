package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PracticasFISI/Practicas-Backend/src/dtos"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContratoController struct {
	service *services.ContratoService
}

func NewContratoController(service *services.ContratoService) *ContratoController {
	return &ContratoController{service: service}
}

// GetContratosByCurso handles GET requests to list the contracts of a course
func (c *ContratoController) GetContratosByCurso(ctx *gin.Context) {
	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}

	contratos, err := c.service.GetContratosByCurso(cursoId)
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Contratos obtenidos correctamente", contratos)
}

// SubmitContrato handles POST requests with the multipart field "archivo"
// (students only; one contract per student per course)
func (c *ContratoController) SubmitContrato(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "Debes iniciar sesión para subir contratos", CodeUnauthorized)
		return
	}
	if role != models.RoleStudent {
		respondError(ctx, http.StatusForbidden, "Solo los alumnos pueden subir contratos", CodeForbidden)
		return
	}

	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}

	fileHeader, err := ctx.FormFile("archivo")
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Debes seleccionar un archivo PDF válido", CodeValidationError)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Error al procesar el formulario", CodeValidationError)
		return
	}
	defer file.Close()

	contrato, err := c.service.SubmitContrato(ctx.Request.Context(), cursoId, userId, &services.SubmissionFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		respondSubmissionError(ctx, err, "contrato")
		return
	}

	respondSuccess(ctx, http.StatusCreated, "Contrato registrado correctamente", contrato)
}

// UpdateContrato handles PUT requests to review a contract
// (professor owning the course only)
func (c *ContratoController) UpdateContrato(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}
	if role != models.RoleProfessor {
		respondError(ctx, http.StatusForbidden, "Solo los profesores pueden revisar contratos", CodeForbidden)
		return
	}

	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}
	contratoId, err := strconv.Atoi(ctx.Param("contratoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "contratoId no válido", CodeValidationError)
		return
	}

	contrato, err := c.service.GetContratoByID(contratoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Contrato no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}
	if contrato.CursoId != cursoId {
		respondError(ctx, http.StatusNotFound, "Contrato no encontrado en este curso", CodeNotFound)
		return
	}
	if contrato.Curso == nil || contrato.Curso.ProfesorId != userId {
		respondError(ctx, http.StatusForbidden, "Solo el profesor del curso puede revisar este contrato", CodeForbidden)
		return
	}

	var req dtos.UpdateContratoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "El formato de los datos no es válido", CodeInvalidJSON)
		return
	}
	if req.Estado != nil && !models.Estado(*req.Estado).Valid() {
		respondError(ctx, http.StatusBadRequest, "Estado no válido", CodeValidationError)
		return
	}

	actualizado, err := c.service.UpdateContrato(contratoId, &req)
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Contrato actualizado correctamente", actualizado)
}

// DeleteContrato handles DELETE requests: the owning student, the course's
// professor or administrative staff may delete
func (c *ContratoController) DeleteContrato(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}

	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}
	contratoId, err := strconv.Atoi(ctx.Param("contratoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "contratoId no válido", CodeValidationError)
		return
	}

	contrato, err := c.service.GetContratoByID(contratoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Contrato no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}
	if contrato.CursoId != cursoId {
		respondError(ctx, http.StatusNotFound, "Contrato no encontrado en este curso", CodeNotFound)
		return
	}
	if !canDeleteSubmission(role, userId, contrato.AlumnoId, contrato.Curso) {
		respondError(ctx, http.StatusForbidden, "No autorizado para eliminar este contrato", CodeForbidden)
		return
	}

	if err := c.service.DeleteContrato(ctx.Request.Context(), contratoId); err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Contrato eliminado correctamente", gin.H{"id": contratoId})
}

// canDeleteSubmission centraliza la regla de borrado de contratos e informes.
func canDeleteSubmission(role models.UserRole, userId, alumnoId int, curso *models.CursoModel) bool {
	switch role {
	case models.RoleStudent:
		return alumnoId == userId
	case models.RoleProfessor:
		return curso != nil && curso.ProfesorId == userId
	case models.RoleAdministrative:
		return true
	}
	return false
}

// respondSubmissionError traduce los errores del flujo de envío compartido.
func respondSubmissionError(ctx *gin.Context, err error, recurso string) {
	switch {
	case errors.Is(err, services.ErrStorageNotConfigured):
		respondError(ctx, http.StatusInternalServerError, "Error de configuración del servidor: almacenamiento de archivos no configurado", CodeConfigError)
	case errors.Is(err, services.ErrInvalidFileType):
		respondError(ctx, http.StatusBadRequest, "Solo se permiten archivos PDF", CodeValidationError)
	case errors.Is(err, services.ErrFileTooLarge):
		respondError(ctx, http.StatusBadRequest, "El archivo no debe superar los 10MB", CodeValidationError)
	case errors.Is(err, services.ErrDuplicateSubmission):
		respondError(ctx, http.StatusBadRequest, "Ya existe un "+recurso+" para este alumno en este curso. Elimina el anterior antes de subir uno nuevo", CodeValidationError)
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(ctx, http.StatusNotFound, "Curso no encontrado", CodeNotFound)
	default:
		respondDBError(ctx, err)
	}
}
