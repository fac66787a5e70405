package main

import (
	"rideinfo-api/config"
	"rideinfo-api/internal/analytics"
	"rideinfo-api/internal/auth"
	"rideinfo-api/internal/driver"
	"rideinfo-api/internal/feedback"
	"rideinfo-api/internal/institute"
	"rideinfo-api/internal/logger"
	"rideinfo-api/internal/logs"
	"rideinfo-api/internal/report"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogFile)

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=" + cfg.DBSSLMode

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&institute.Institute{},
		&driver.Driver{},
		&feedback.Feedback{},
		&logs.SystemLog{},
	); err != nil {
		logrus.WithError(err).Fatal("automigrate failed")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	userService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, userService, logService)

	instituteService := &institute.InstituteService{DB: db}
	institute.RegisterRoutes(r, instituteService, logService)

	driverService := &driver.DriverService{DB: db}
	driver.RegisterRoutes(r, driverService, logService)

	analyticsService := &analytics.AnalyticsService{DB: db}
	analytics.RegisterRoutes(r, analyticsService)

	feedbackService := &feedback.FeedbackService{DB: db}
	feedback.RegisterRoutes(r, feedbackService, logService)

	reportService := &report.ReportService{DB: db}
	report.RegisterRoutes(r, reportService)

	logs.RegisterRoutes(r, logService)

	logrus.Infof("starting server on 0.0.0.0:%s", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
