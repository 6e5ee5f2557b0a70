package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runStaffRouter(
	secureGroup *echo.Group,
	staffService services.StaffServiceInterface,
	assignmentService services.AssignmentServiceInterface,
	logger *zap.Logger,
) {
	staffCtrl := controllers.NewStaffController(staffService, logger)
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)

	secureGroup.GET("/staff", staffCtrl.GetStaffList)
	secureGroup.GET("/staff/:id", staffCtrl.FindStaff)
	secureGroup.POST("/staff", staffCtrl.CreateStaff)
	secureGroup.PUT("/staff/:id", staffCtrl.UpdateStaff)
	secureGroup.DELETE("/staff/:id", staffCtrl.DeleteStaff)

	secureGroup.GET("/staff/:id/assignments", assignmentCtrl.GetStaffAssignments)
}
