package controllers

import (
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/services"
	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("Login: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Вход выполнен успешно", http.StatusOK)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	sessionID, ok := ctx.Request().Context().Value(contextkeys.SessionIDKey).(string)
	if !ok || sessionID == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrSessionNotFound, c.logger)
	}

	if err := c.authService.Logout(ctx.Request().Context(), sessionID); err != nil {
		c.logger.Error("Logout: ошибка при завершении сессии", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Выход выполнен успешно", http.StatusOK)
}

// Session отдает данные текущей сессии; middleware уже положил их в
// контекст при проверке токена.
func (c *AuthController) Session(ctx echo.Context) error {
	user, ok := ctx.Request().Context().Value(contextkeys.SessionUserKey).(*entities.SessionUser)
	if !ok || user == nil {
		return utils.ErrorResponse(ctx, apperrors.ErrSessionNotFound, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.SessionDTO{
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		LoginTime: user.LoginTime,
	}, "Сессия активна", http.StatusOK)
}
