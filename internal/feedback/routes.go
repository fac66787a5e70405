package feedback

import (
	"rideinfo-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, feedbackService FeedbackServiceAPI, logService LogServicePort) {
	feedbackController := &FeedbackController{FeedbackService: feedbackService, LS: logService}

	feedbackGroup := r.Group("/api/feedback")
	feedbackGroup.Use(middlewares.AuthMiddleware())
	{
		feedbackGroup.POST("", feedbackController.Create)
	}
}
