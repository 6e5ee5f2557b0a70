package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runEquipmentRouter(
	secureGroup *echo.Group,
	equipmentService services.EquipmentServiceInterface,
	assignmentService services.AssignmentServiceInterface,
	logger *zap.Logger,
) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)

	secureGroup.GET("/equipment", equipmentCtrl.GetEquipments)
	secureGroup.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	secureGroup.POST("/equipment", equipmentCtrl.CreateEquipment)
	secureGroup.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	secureGroup.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)

	secureGroup.POST("/equipment/:id/assign", assignmentCtrl.AssignEquipment)
	secureGroup.POST("/equipment/:id/unassign", assignmentCtrl.UnassignEquipment)
	secureGroup.GET("/equipment/:id/history", assignmentCtrl.GetEquipmentHistory)
}
