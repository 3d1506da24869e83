package routes

import (
	"github.com/PracticasFISI/Practicas-Backend/src/controllers"
	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupOportunidadRoutes(router *gin.Engine, service *services.OportunidadService) {

	oportunidadController := controllers.NewOportunidadController(service)

	// Public route: el listado alimenta la página de inicio
	router.GET("/oportunidades", oportunidadController.GetOportunidades)

	// Protected routes
	oportunidad := router.Group("/oportunidades")
	oportunidad.Use(middleware.AuthMiddleware())
	{
		oportunidad.POST("/", oportunidadController.CreateOportunidad)
		oportunidad.DELETE("/", oportunidadController.DeleteOportunidad)
	}
}
