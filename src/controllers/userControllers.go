package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GetAllUsers handles GET requests to list users (administrative only)
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	_, _, role, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "No autenticado", CodeUnauthorized)
		return
	}
	if role != models.RoleAdministrative {
		respondError(ctx, http.StatusForbidden, "Solo el personal administrativo puede listar usuarios", CodeForbidden)
		return
	}

	users, err := c.service.GetAllUsers()
	if err != nil {
		respondDBError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, "Usuarios obtenidos correctamente", users)
}

// CreateUser handles POST /register
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "El formato de los datos no es válido", CodeInvalidJSON)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(ctx, http.StatusBadRequest, "El nombre es obligatorio", CodeValidationError)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondError(ctx, http.StatusBadRequest, "El correo es obligatorio", CodeValidationError)
		return
	}
	if req.Password == "" {
		respondError(ctx, http.StatusBadRequest, "La contraseña es obligatoria", CodeValidationError)
		return
	}
	if req.Role != "" && !req.Role.Valid() {
		respondError(ctx, http.StatusBadRequest, "Rol no válido", CodeValidationError)
		return
	}

	user := &models.UserModel{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     req.Role,
	}

	created, err := c.service.CreateUser(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(ctx, http.StatusBadRequest, "Ya existe un usuario con ese correo", CodeDBConstraintError)
			return
		}
		respondDBError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusCreated, "Usuario registrado correctamente", models.RegisterResponse{
		ID:    created.Id,
		Name:  created.Name,
		Email: created.Email,
		Role:  created.Role,
	})
}

// AuthenticateUser handles POST /login
func (c *UserController) AuthenticateUser(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "El formato de los datos no es válido", CodeInvalidJSON)
		return
	}

	token, err := c.service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		respondError(ctx, http.StatusUnauthorized, err.Error(), CodeUnauthorized)
		return
	}

	respondSuccess(ctx, http.StatusOK, "Sesión iniciada", gin.H{"token": token})
}
