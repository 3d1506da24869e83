package routes

import (
	"github.com/PracticasFISI/Practicas-Backend/src/controllers"
	"github.com/PracticasFISI/Practicas-Backend/src/middleware"
	"github.com/PracticasFISI/Practicas-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupInformeRoutes(router *gin.Engine, service *services.InformeService) {

	informeController := controllers.NewInformeController(service)

	// Protected routes
	informe := router.Group("/informes")
	informe.Use(middleware.AuthMiddleware())
	{
		informe.GET("/:cursoId", informeController.GetInformesByCurso)
		informe.POST("/:cursoId", informeController.SubmitInforme)
		informe.PUT("/:cursoId/:informeId", informeController.UpdateInforme)
		informe.DELETE("/:cursoId/:informeId", informeController.DeleteInforme)
	}
}
