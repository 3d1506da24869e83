package routes

import (
	"github.com/PracticasFISI/Practicas-Backend/src/controllers"
	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupContratoRoutes(router *gin.Engine, service *services.ContratoService) {

	contratoController := controllers.NewContratoController(service)

	// Protected routes
	contrato := router.Group("/contratos")
	contrato.Use(middleware.AuthMiddleware())
	{
		contrato.GET("/:cursoId", contratoController.GetContratosByCurso)
		contrato.POST("/:cursoId", contratoController.SubmitContrato)
		contrato.PUT("/:cursoId/:contratoId", contratoController.UpdateContrato)
		contrato.DELETE("/:cursoId/:contratoId", contratoController.DeleteContrato)
	}
}
