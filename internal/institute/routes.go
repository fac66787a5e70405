package institute

import (
	"rideinfo-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, instituteService InstituteServiceAPI, logService LogServicePort) {
	instituteController := &InstituteController{InstituteService: instituteService, LS: logService}

	instituteGroup := r.Group("/api/institutes")
	instituteGroup.Use(middlewares.AuthMiddleware())
	{
		instituteGroup.GET("", instituteController.List)
		instituteGroup.POST("", instituteController.Create)
		instituteGroup.GET("/:id", instituteController.Get)
		instituteGroup.PUT("/:id", instituteController.Update)
		instituteGroup.DELETE("/:id", instituteController.Delete)
	}
}
