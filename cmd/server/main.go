package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"openlab-reservation-backend/internal/api/routes"
	"openlab-reservation-backend/internal/config"
	"openlab-reservation-backend/internal/database"
	"openlab-reservation-backend/internal/database/seed"
)

// @title OpenLab Reservation API
// @version 1.0
// @description Equipment reservation backend: catalog, reservations, notification fan-out and per-equipment authorizations.
// @BasePath /api
func main() {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	db, err := database.Initialize(cfg, nil)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.IsDevelopment() && !cfg.DisableSeed {
		if err := seed.Run(db); err != nil {
			logrus.Fatalf("Failed to seed database: %v", err)
		}
	}

	router := routes.SetupRoutes(db, cfg)

	logrus.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"db_driver":   cfg.DatabaseDriver,
	}).Info("Starting OpenLab reservation server")

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
