package auth

import (
	"fmt"
	"net/http"
	"time"

	"rideinfo-api/config"
	"rideinfo-api/internal/logs"
	"rideinfo-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	logrus "github.com/sirupsen/logrus"
)

type AuthController struct {
	AuthService AuthServicePort
	LS          LogServicePort
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	password, err := util.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := User{
		Username: req.Username,
		Email:    req.Email,
		Password: password,
	}

	newUser, err := ac.AuthService.CreateUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := uint(newUser.ID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "SIGNUP",
		Message: fmt.Sprintf("Account created with email %s", newUser.Email),
		UserID:  &uid,
	}
	if err := ac.LS.Log(entry, gin.H{"email": newUser.Email}); err != nil {
		logrus.WithError(err).Warn("failed to insert signup log")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": LoginResponse{
			ID:       newUser.ID,
			Username: newUser.Username,
			Email:    newUser.Email,
			Role:     newUser.Role,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.GetUser(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials or server error. Please try again."})
		return
	}

	if err := util.VerifyPassword(req.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials or server error. Please try again."})
		return
	}

	cfg := config.LoadConfig()

	// Short-lived access token
	accessExp := time.Now().Add(15 * time.Minute)
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     accessExp.Unix(),
	})
	accessTokenString, _ := accessToken.SignedString([]byte(cfg.JWTSecret))

	// Refresh token, longer if RememberMe is set
	refreshDuration := 24 * time.Hour
	if req.RememberMe {
		refreshDuration = 30 * 24 * time.Hour
	}
	refreshExp := time.Now().Add(refreshDuration)
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     refreshExp.Unix(),
	})
	refreshTokenString, _ := refreshToken.SignedString([]byte(cfg.JWTSecret))

	setSessionCookie(c, "access_token", accessTokenString, 0)
	setSessionCookie(c, "refresh_token", refreshTokenString, 0)

	uid := uint(user.ID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "LOGIN",
		Message: fmt.Sprintf("User logged in with email: %s", user.Email),
		UserID:  &uid,
	}
	if err := ac.LS.Log(entry, gin.H{"email": user.Email, "rememberMe": req.RememberMe}); err != nil {
		logrus.WithError(err).Warn("failed to insert login log")
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": LoginResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

// Logout clears both session cookies so no tokens linger client-side.
func (ac *AuthController) Logout(c *gin.Context) {
	setSessionCookie(c, "access_token", "", -1)
	setSessionCookie(c, "refresh_token", "", -1)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	cfg := config.LoadConfig()

	accessToken, err := c.Cookie("access_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}
	idVal, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := ac.AuthService.GetUserByID(int(idVal))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": LoginResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

// Refresh issues a new access token from a valid refresh token.
func (ac *AuthController) Refresh(c *gin.Context) {
	cfg := config.LoadConfig()

	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}
	idVal, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID"})
		return
	}

	accessExp := time.Now().Add(15 * time.Minute)
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int(idVal),
		"exp":     accessExp.Unix(),
	})
	accessTokenString, _ := accessToken.SignedString([]byte(cfg.JWTSecret))

	setSessionCookie(c, "access_token", accessTokenString, 0)

	c.JSON(http.StatusOK, gin.H{"message": "Access token refreshed"})
}

// setSessionCookie writes an HttpOnly cross-site cookie. maxAge < 0 expires it.
func setSessionCookie(c *gin.Context, name, value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true, // required for SameSite=None
		SameSite: http.SameSiteNoneMode,
		MaxAge:   maxAge,
	}
	http.SetCookie(c.Writer, cookie)
}
