package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	api.POST("/auth/login", authCtrl.Login)
	secureGroup.POST("/auth/logout", authCtrl.Logout)
	secureGroup.GET("/auth/session", authCtrl.Session)
}
