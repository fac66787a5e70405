package driver

import (
	"rideinfo-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, driverService DriverServiceAPI, logService LogServicePort) {
	driverController := &DriverController{DriverService: driverService, LS: logService}

	driverGroup := r.Group("/api/drivers")
	driverGroup.Use(middlewares.AuthMiddleware())
	{
		driverGroup.GET("", driverController.List)
		driverGroup.POST("", driverController.Create)
		driverGroup.POST("/bulk", driverController.CreateBulk)
		driverGroup.GET("/:id", driverController.Get)
		driverGroup.PUT("/:id", driverController.Update)
		driverGroup.DELETE("/:id", driverController.Delete)
	}
}
