package analytics

import (
	"rideinfo-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, analyticsService AnalyticsServiceAPI) {
	analyticsController := &AnalyticsController{AnalyticsService: analyticsService}

	analyticsGroup := r.Group("/api/analytics")
	analyticsGroup.Use(middlewares.AuthMiddleware())
	{
		analyticsGroup.GET("/summary", analyticsController.Summary)
	}
}
