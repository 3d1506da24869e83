package controllers

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PracticasFISI/Practicas-Backend/src/dtos"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultOportunidadImage = "/images/default-oportunidad.jpg"
	maxTituloLength         = 200
	maxDescripcionLength    = 5000
)

type OportunidadController struct {
	service *services.OportunidadService
}

func NewOportunidadController(service *services.OportunidadService) *OportunidadController {
	return &OportunidadController{service: service}
}

// isValidImagePath acepta rutas absolutas o URLs http(s).
func isValidImagePath(path string) bool {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, "/") {
		return true
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func validateOportunidad(req *dtos.CreateOportunidadRequest) []string {
	var errs []string

	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		errs = append(errs, "El título es obligatorio")
	} else if utf8.RuneCountInString(titulo) > maxTituloLength {
		errs = append(errs, "El título debe tener máximo 200 caracteres")
	}

	descripcion := strings.TrimSpace(req.Descripcion)
	if descripcion == "" {
		errs = append(errs, "La descripción es obligatoria")
	} else if utf8.RuneCountInString(descripcion) > maxDescripcionLength {
		errs = append(errs, "La descripción debe tener máximo 5000 caracteres")
	}

	if req.Imagen != "" && !isValidImagePath(req.Imagen) {
		errs = append(errs, "La URL de la imagen no es válida")
	}

	return errs
}

// GetOportunidades handles GET requests to list opportunities paginated
func (c *OportunidadController) GetOportunidades(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	oportunidades, total, err := c.service.GetOportunidades(page, limit)
	if err != nil {
		respondDBError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, "Oportunidades obtenidas correctamente", dtos.OportunidadListDTO{
		Oportunidades: oportunidades,
		Pagination: dtos.PaginationDTO{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// CreateOportunidad handles POST requests to register an opportunity
// (administrative only)
func (c *OportunidadController) CreateOportunidad(ctx *gin.Context) {
	_, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}
	if role != models.RoleAdministrative {
		respondError(ctx, http.StatusForbidden, "Solo el personal administrativo puede registrar oportunidades", CodeForbidden)
		return
	}

	var req dtos.CreateOportunidadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "El formato de los datos no es válido", CodeInvalidJSON)
		return
	}

	if errs := validateOportunidad(&req); len(errs) > 0 {
		respondError(ctx, http.StatusBadRequest, strings.Join(errs, ". "), CodeValidationError)
		return
	}

	imagen := strings.TrimSpace(req.Imagen)
	if imagen == "" {
		imagen = defaultOportunidadImage
	}

	oportunidad := &models.OportunidadModel{
		Titulo:      strings.TrimSpace(req.Titulo),
		Descripcion: strings.TrimSpace(req.Descripcion),
		Imagen:      imagen,
	}

	if err := c.service.CreateOportunidad(oportunidad); err != nil {
		respondDBError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusCreated, "Oportunidad registrada correctamente", oportunidad)
}

// DeleteOportunidad handles DELETE requests (?id=) to remove an opportunity
// (administrative only)
func (c *OportunidadController) DeleteOportunidad(ctx *gin.Context) {
	_, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}
	if role != models.RoleAdministrative {
		respondError(ctx, http.StatusForbidden, "Solo el personal administrativo puede eliminar oportunidades", CodeForbidden)
		return
	}

	idParam := ctx.Query("id")
	if idParam == "" {
		respondError(ctx, http.StatusBadRequest, "ID de oportunidad no proporcionado", CodeValidationError)
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "ID de oportunidad no válido", CodeValidationError)
		return
	}

	if err := c.service.DeleteOportunidad(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Oportunidad no encontrada", CodeNotFound)
			return
		}
		respondDBError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, "Oportunidad eliminada correctamente", gin.H{"id": id})
}
