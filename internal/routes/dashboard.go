package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardService *services.DashboardService, logger *zap.Logger) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secureGroup.GET("/dashboard/stats", dashboardCtrl.GetStats)
}
