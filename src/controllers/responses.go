package controllers

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Códigos de error expuestos en el sobre JSON uniforme
// {"success": true, "message", "data"} | {"success": false, "error", "code"}.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeInvalidJSON       = "INVALID_JSON"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConfigError       = "CONFIG_ERROR"
	CodeDBConnectionError = "DB_CONNECTION_ERROR"
	CodeDBConstraintError = "DB_CONSTRAINT_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

func respondSuccess(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

// respondDBError clasifica un error de persistencia: fallo de conexión → 503,
// violación de restricción → 400, resto → 500.
func respondDBError(ctx *gin.Context, err error) {
	log.Printf("[DB ERROR] %v", err)

	var netErr net.Error
	if errors.As(err, &netErr) || strings.Contains(err.Error(), "connection refused") || strings.Contains(err.Error(), "connection reset") {
		respondError(ctx, http.StatusServiceUnavailable, "No se pudo conectar a la base de datos", CodeDBConnectionError)
		return
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		respondError(ctx, http.StatusBadRequest, "No se pudo guardar el registro. Verifica los datos", CodeDBConstraintError)
		return
	}

	respondError(ctx, http.StatusInternalServerError, "Error al procesar la solicitud en la base de datos", CodeInternalError)
}

// currentUser lee la identidad dejada en el contexto por AuthMiddleware.
func currentUser(ctx *gin.Context) (int, string, models.UserRole, bool) {
	id, okId := ctx.Get("userId")
	email, okEmail := ctx.Get("userEmail")
	role, okRole := ctx.Get("userRole")
	if !okId || !okEmail || !okRole {
		return 0, "", "", false
	}
	return id.(int), email.(string), models.UserRole(role.(string)), true
}
