package routes

import (
	"github.com/PracticasFISI/Practicas-Backend/src/controllers"
	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupNovedadRoutes(router *gin.Engine, service *services.NovedadService, cursoService *services.CursoService) {

	novedadController := controllers.NewNovedadController(service, cursoService)

	// Protected routes
	novedad := router.Group("/novedades")
	novedad.Use(middleware.AuthMiddleware())
	{
		novedad.GET("/:cursoId", novedadController.GetNovedadesByCurso)
		novedad.POST("/:cursoId", novedadController.CreateNovedad)
	}
}
