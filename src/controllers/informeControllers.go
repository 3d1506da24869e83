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

type InformeController struct {
	service *services.InformeService
}

func NewInformeController(service *services.InformeService) *InformeController {
	return &InformeController{service: service}
}

// GetInformesByCurso handles GET requests to list the reports of a course
func (c *InformeController) GetInformesByCurso(ctx *gin.Context) {
	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}

	informes, err := c.service.GetInformesByCurso(cursoId)
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Informes obtenidos correctamente", informes)
}

// SubmitInforme handles POST requests with the multipart field "archivo"
// (students only; one report per student per course)
func (c *InformeController) SubmitInforme(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "Debes iniciar sesión para subir informes", CodeUnauthorized)
		return
	}
	if role != models.RoleStudent {
		respondError(ctx, http.StatusForbidden, "Solo los alumnos pueden subir informes", CodeForbidden)
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

	informe, err := c.service.SubmitInforme(ctx.Request.Context(), cursoId, userId, &services.SubmissionFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		respondSubmissionError(ctx, err, "informe")
		return
	}

	respondSuccess(ctx, http.StatusCreated, "Informe registrado correctamente", informe)
}

// UpdateInforme handles PUT requests to review a report
// (professor owning the course only)
func (c *InformeController) UpdateInforme(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}
	if role != models.RoleProfessor {
		respondError(ctx, http.StatusForbidden, "Solo los profesores pueden revisar informes", CodeForbidden)
		return
	}

	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}
	informeId, err := strconv.Atoi(ctx.Param("informeId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "informeId no válido", CodeValidationError)
		return
	}

	informe, err := c.service.GetInformeByID(informeId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Informe no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}
	if informe.CursoId != cursoId {
		respondError(ctx, http.StatusNotFound, "Informe no encontrado en este curso", CodeNotFound)
		return
	}
	if informe.Curso == nil || informe.Curso.ProfesorId != userId {
		respondError(ctx, http.StatusForbidden, "Solo el profesor del curso puede revisar este informe", CodeForbidden)
		return
	}

	var req dtos.UpdateInformeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "El formato de los datos no es válido", CodeInvalidJSON)
		return
	}
	if req.Estado != nil && !models.Estado(*req.Estado).Valid() {
		respondError(ctx, http.StatusBadRequest, "Estado no válido", CodeValidationError)
		return
	}

	actualizado, err := c.service.UpdateInforme(informeId, &req)
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Informe actualizado correctamente", actualizado)
}

// DeleteInforme handles DELETE requests: the owning student, the course's
// professor or administrative staff may delete
func (c *InformeController) DeleteInforme(ctx *gin.Context) {
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
	informeId, err := strconv.Atoi(ctx.Param("informeId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "informeId no válido", CodeValidationError)
		return
	}

	informe, err := c.service.GetInformeByID(informeId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Informe no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}
	if informe.CursoId != cursoId {
		respondError(ctx, http.StatusNotFound, "Informe no encontrado en este curso", CodeNotFound)
		return
	}
	if !canDeleteSubmission(role, userId, informe.AlumnoId, informe.Curso) {
		respondError(ctx, http.StatusForbidden, "No autorizado para eliminar este informe", CodeForbidden)
		return
	}

	if err := c.service.DeleteInforme(ctx.Request.Context(), informeId); err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Informe eliminado correctamente", gin.H{"id": informeId})
}
