package controllers

import (
	"net/http"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	res, err := c.dashboardService.GetDashboardStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Статистика успешно получена", http.StatusOK)
}
