package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runAssignmentRouter(secureGroup *echo.Group, assignmentService services.AssignmentServiceInterface, logger *zap.Logger) {
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)

	secureGroup.GET("/assignments", assignmentCtrl.ListAssignments)
	secureGroup.PUT("/assignments/:id", assignmentCtrl.UpdateAssignment)
	secureGroup.DELETE("/assignments/:id", assignmentCtrl.DeleteAssignment)
}
