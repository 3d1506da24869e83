package routes

import (
	"github.com/PracticasFISI/Practicas-Backend/src/controllers"
	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCursoRoutes(router *gin.Engine, service *services.CursoService) {

	cursoController := controllers.NewCursoController(service)

	// Protected routes
	curso := router.Group("/cursos")
	curso.Use(middleware.AuthMiddleware())
	{
		curso.GET("/", cursoController.GetAllCursos)
		curso.GET("/:id", cursoController.GetCursoByID)
		curso.GET("/:id/export", cursoController.ExportCurso)
	}
}
