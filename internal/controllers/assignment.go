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

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
	logger            *zap.Logger
}

func NewAssignmentController(
	service services.AssignmentServiceInterface,
	logger *zap.Logger,
) *AssignmentController {
	return &AssignmentController{
		assignmentService: service,
		logger:            logger,
	}
}

// ListAssignments отдает витрину журнала: строки обогащены живыми данными
// оборудования и сотрудников, новые сверху.
func (c *AssignmentController) ListAssignments(ctx echo.Context) error {
	res, err := c.assignmentService.ListEnriched(ctx.Request().Context())
	if err != nil {
		c.logger.Error("ListAssignments: ошибка при получении журнала закреплений", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Журнал закреплений успешно получен", http.StatusOK)
}

func (c *AssignmentController) AssignEquipment(ctx echo.Context) error {
	equipmentID := ctx.Param("id")

	var payload dto.AssignEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("AssignEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("AssignEquipment: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.AssignEquipment(ctx.Request().Context(), equipmentID, payload)
	if err != nil {
		c.logger.Error("AssignEquipment: ошибка при закреплении оборудования",
			zap.String("equipmentId", equipmentID),
			zap.String("staffId", payload.StaffID),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно закреплено", http.StatusOK)
}

func (c *AssignmentController) UnassignEquipment(ctx echo.Context) error {
	equipmentID := ctx.Param("id")

	res, err := c.assignmentService.UnassignEquipment(ctx.Request().Context(), equipmentID)
	if err != nil {
		c.logger.Error("UnassignEquipment: ошибка при откреплении оборудования",
			zap.String("equipmentId", equipmentID),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно откреплено", http.StatusOK)
}

// GetEquipmentHistory отдает журнал по конкретному оборудованию. Сбой
// выборки не считается ошибкой запроса: карточка должна открываться и с
// пустой историей.
func (c *AssignmentController) GetEquipmentHistory(ctx echo.Context) error {
	equipmentID := ctx.Param("id")

	res := c.assignmentService.HistoryFor(ctx.Request().Context(), equipmentID)
	return utils.SuccessResponse(ctx, res, "История закреплений успешно получена", http.StatusOK)
}

func (c *AssignmentController) GetStaffAssignments(ctx echo.Context) error {
	staffID := ctx.Param("id")

	res, err := c.assignmentService.StaffAssignments(ctx.Request().Context(), staffID)
	if err != nil {
		c.logger.Error("GetStaffAssignments: ошибка при получении закреплений сотрудника",
			zap.String("staffId", staffID),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Закрепления сотрудника успешно получены", http.StatusOK)
}

func (c *AssignmentController) UpdateAssignment(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.UpdateAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateAssignment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateAssignment: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.UpdateAssignment(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateAssignment: ошибка при обновлении записи журнала", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Запись журнала успешно обновлена", http.StatusOK)
}

func (c *AssignmentController) DeleteAssignment(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.assignmentService.DeleteAssignment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteAssignment: ошибка при удалении записи журнала", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Запись журнала успешно удалена", http.StatusOK)
}
