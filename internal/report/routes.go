package report

import (
	"rideinfo-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, reportService ReportServiceAPI) {
	reportController := &ReportController{ReportService: reportService}

	reportGroup := r.Group("/api/reports")
	reportGroup.Use(middlewares.AuthMiddleware())
	{
		reportGroup.GET("/drivers", reportController.DownloadRoster)
	}
}
