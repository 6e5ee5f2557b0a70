package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runReportRouter(secureGroup *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/report/assignments", reportCtrl.GetAssignmentReport)
}
