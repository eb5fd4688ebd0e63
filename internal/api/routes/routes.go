package routes

import (
	"openlab-reservation-backend/internal/api/handlers"
	"openlab-reservation-backend/internal/api/middleware"
	"openlab-reservation-backend/internal/config"
	"openlab-reservation-backend/internal/repository"
	"openlab-reservation-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "openlab-reservation-backend/docs"
)

// SetupRoutes wires repositories, services and handlers and returns the
// configured engine. Two route surfaces share the same services: the plain
// /api resource routes and the /api/main admin-view routes.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	authRepo := repository.NewEquipmentAuthRepository(db)
	searchHistoryRepo := repository.NewSearchHistoryRepository(db)
	dataAgent := repository.NewDataAgent(db)

	// Services
	mailer := service.NewLogMailer(nil)
	reservationService := service.NewReservationService(reservationRepo, equipmentRepo, authRepo, employeeRepo, notificationRepo, mailer)
	authService := service.NewAuthService(authRepo, employeeRepo, equipmentRepo)
	notificationService := service.NewNotificationService(notificationRepo, employeeRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	lookupService := service.NewLookupService(equipmentRepo, reservationRepo, employeeRepo)
	dataInfoService := service.NewDataInfoService(dataAgent)
	auditService := service.NewAuditService(searchHistoryRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	authHandler := handlers.NewAuthHandler(authService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dataInfoHandler := handlers.NewDataInfoHandler(dataInfoService)
	auditHandler := handlers.NewAuditHandler(auditService)
	openLabHandler := handlers.NewOpenLabHandler(lookupService, reservationService, equipmentService, authService, notificationService)

	router.GET("/health", healthHandler.Check)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationHandler.ListReservations)
			reservations.GET("/:id", reservationHandler.GetReservation)
			reservations.POST("", reservationHandler.CreateReservation)
			reservations.PUT("/:id", reservationHandler.UpdateReservation)
			reservations.DELETE("/:id", reservationHandler.DeleteReservation)
		}

		equipments := api.Group("/equipments")
		{
			equipments.GET("", equipmentHandler.ListEquipments)
			equipments.GET("/lines", equipmentHandler.GetLines)
			equipments.GET("/classes", equipmentHandler.GetClasses)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/admins", employeeHandler.ListAdminCandidates)
		}

		api.POST("/auth/check-reception", authHandler.CheckReception)

		notifications := api.Group("/notifications")
		{
			notifications.GET("/receivers", notificationHandler.ListReceivers)
			notifications.POST("/request", notificationHandler.ApplyNoticeTemplate)
		}

		api.POST("/datainfo/execute", dataInfoHandler.Execute)
		api.POST("/ui-audit/search-history", auditHandler.SaveSearchHistory)

		main := api.Group("/main")
		{
			main.GET("/lookups", openLabHandler.GetLookups)
			main.GET("/openlab-resv", openLabHandler.ListReservations)
			main.GET("/openlab-resv/:id", openLabHandler.GetReservation)
			main.POST("/openlab-resv", openLabHandler.CreateReservation)
			main.PUT("/openlab-resv/:id", openLabHandler.UpdateReservation)
			main.DELETE("/openlab-resv/:id", openLabHandler.DeleteReservation)
			main.GET("/openlab-eqp", openLabHandler.ListEquipments)
			main.GET("/openlab-auth", openLabHandler.ListAuthorizations)
			main.POST("/openlab-auth", openLabHandler.CreateAuthorization)
			main.DELETE("/openlab-auth/:id", openLabHandler.DeleteAuthorization)
			main.GET("/openlab-receivers", openLabHandler.ListReceivers)
		}
	}

	return router
}
