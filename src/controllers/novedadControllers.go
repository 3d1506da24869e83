package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/PracticasFISI/Practicas-Backend/src/dtos"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NovedadController struct {
	service      *services.NovedadService
	cursoService *services.CursoService
}

func NewNovedadController(service *services.NovedadService, cursoService *services.CursoService) *NovedadController {
	return &NovedadController{service: service, cursoService: cursoService}
}

// GetNovedadesByCurso handles GET requests to list the news of a course
func (c *NovedadController) GetNovedadesByCurso(ctx *gin.Context) {
	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}

	novedades, err := c.service.GetNovedadesByCurso(cursoId)
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Novedades obtenidas correctamente", novedades)
}

// CreateNovedad handles POST requests to publish a news item
// (professor owning the course only)
func (c *NovedadController) CreateNovedad(ctx *gin.Context) {
	userId, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}
	if role != models.RoleProfessor {
		respondError(ctx, http.StatusForbidden, "Solo los profesores pueden publicar novedades", CodeForbidden)
		return
	}

	cursoId, err := strconv.Atoi(ctx.Param("cursoId"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "cursoId no válido", CodeValidationError)
		return
	}

	curso, err := c.cursoService.GetCursoByID(cursoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Curso no encontrado", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}
	if curso.ProfesorId != userId {
		respondError(ctx, http.StatusForbidden, "Solo el profesor del curso puede publicar novedades", CodeForbidden)
		return
	}

	var req dtos.CreateNovedadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "El formato de los datos no es válido", CodeInvalidJSON)
		return
	}
	if strings.TrimSpace(req.Contenido) == "" {
		respondError(ctx, http.StatusBadRequest, "El contenido es obligatorio", CodeValidationError)
		return
	}

	novedad, err := c.service.CreateNovedad(cursoId, strings.TrimSpace(req.Contenido))
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusCreated, "Novedad publicada correctamente", novedad)
}
