package controllers

import (
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StaffController struct {
	staffService services.StaffServiceInterface
	logger       *zap.Logger
}

func NewStaffController(
	service services.StaffServiceInterface,
	logger *zap.Logger,
) *StaffController {
	return &StaffController{
		staffService: service,
		logger:       logger,
	}
}

func (c *StaffController) GetStaffList(ctx echo.Context) error {
	search := ctx.QueryParam("search")

	res, err := c.staffService.GetStaffList(ctx.Request().Context(), search)
	if err != nil {
		c.logger.Error("GetStaffList: ошибка при получении списка сотрудников", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список сотрудников успешно получен", http.StatusOK)
}

func (c *StaffController) FindStaff(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Не указан ID сотрудника", nil, nil),
			c.logger,
		)
	}

	res, err := c.staffService.FindStaff(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindStaff: ошибка при поиске сотрудника", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно найден", http.StatusOK)
}

func (c *StaffController) CreateStaff(ctx echo.Context) error {
	var payload dto.CreateStaffDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateStaff: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateStaff: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.staffService.CreateStaff(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateStaff: ошибка при создании сотрудника", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно создан", http.StatusCreated)
}

func (c *StaffController) UpdateStaff(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.UpdateStaffDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateStaff: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateStaff: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.staffService.UpdateStaff(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateStaff: ошибка при обновлении сотрудника", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Данные сотрудника успешно обновлены", http.StatusOK)
}

func (c *StaffController) DeleteStaff(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.staffService.DeleteStaff(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteStaff: ошибка при удалении сотрудника", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Сотрудник успешно удален", http.StatusOK)
}
