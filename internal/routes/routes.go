package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/clients/mockapi"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
)

func InitRouter(e *echo.Echo, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) error {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. КЛИЕНТЫ КОЛЛЕКЦИЙ ---
	// Каждая коллекция сервиса хранения живет на своем базовом URL.
	equipmentCollection := mockapi.NewCollection[entities.Equipment](cfg.Storage.EquipmentURL, cfg.Storage.Timeout, logger)
	staffCollection := mockapi.NewCollection[entities.Staff](cfg.Storage.StaffURL, cfg.Storage.Timeout, logger)
	assignmentCollection := mockapi.NewCollection[entities.Assignment](cfg.Storage.AssignmentsURL, cfg.Storage.Timeout, logger)

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(equipmentCollection, logger)
	staffRepo := repositories.NewStaffRepository(staffCollection, logger)
	assignmentRepo := repositories.NewAssignmentRepository(assignmentCollection, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	verifier, err := services.NewConfigCredentialVerifier(&cfg.Auth)
	if err != nil {
		return err
	}
	authService := services.NewAuthService(verifier, cacheRepo, jwtSvc, &cfg.Auth, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	staffService := services.NewStaffService(staffRepo, logger)
	assignmentService := services.NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, cfg.Assignment, logger)
	dashboardService := services.NewDashboardService(equipmentRepo, staffRepo, assignmentRepo, logger)
	reportService := services.NewReportService(assignmentService)

	// --- 3. РОУТЕРЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authService, logger)
	runEquipmentRouter(secureGroup, equipmentService, assignmentService, logger)
	runStaffRouter(secureGroup, staffService, assignmentService, logger)
	runAssignmentRouter(secureGroup, assignmentService, logger)
	runDashboardRouter(secureGroup, dashboardService, logger)
	runReportRouter(secureGroup, reportService, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
	return nil
}
