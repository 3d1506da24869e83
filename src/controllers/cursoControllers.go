package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CursoController struct {
	service *services.CursoService
}

func NewCursoController(service *services.CursoService) *CursoController {
	return &CursoController{service: service}
}

// GetAllCursos handles GET requests to list all courses
func (c *CursoController) GetAllCursos(ctx *gin.Context) {
	cursos, err := c.service.GetAllCursos()
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Cursos obtenidos correctamente", cursos)
}

// GetCursoByID handles GET requests for the course detail (professor,
// contracts and reports in a single response)
func (c *CursoController) GetCursoByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "ID no válido", CodeValidationError)
		return
	}

	curso, err := c.service.GetCursoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Curso no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Curso obtenido correctamente", curso)
}

// ExportCurso handles GET requests that download the course's contracts and
// reports as an XLSX workbook (owning professor or administrative staff)
func (c *CursoController) ExportCurso(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "ID no válido", CodeValidationError)
		return
	}

	curso, err := c.service.GetCursoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Curso no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}

	esProfesorDelCurso := role == models.RoleProfessor && curso.ProfesorId == userId
	if !esProfesorDelCurso && role != models.RoleAdministrative {
		respondError(ctx, http.StatusForbidden, "No autorizado para exportar este curso", CodeForbidden)
		return
	}

	f, err := c.service.ExportCursoXLSX(id)
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Error al generar el archivo de exportación", CodeInternalError)
		return
	}

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="curso_%d.xlsx"`, id))
	if err := f.Write(ctx.Writer); err != nil {
		// Headers ya enviados; solo queda cortar la respuesta.
		ctx.Abort()
	}
}
