package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logService LogServicePort) {
	authController := &AuthController{AuthService: authService, LS: logService}

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/signup", authController.SignUp)
		userGroup.POST("/login", authController.Login)
		userGroup.POST("/logout", authController.Logout)
		userGroup.GET("/me", authController.Me)
		userGroup.POST("/refresh", authController.Refresh)
	}
}
