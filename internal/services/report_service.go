package services

import (
	"context"

	"inventory-system/internal/dto"
)

type ReportServiceInterface interface {
	GetAssignmentReport(ctx context.Context) ([]dto.EnrichedAssignmentDTO, error)
}

// ReportService отдает данные для отчета по закреплениям. Источник тот же,
// что и у витрины журнала: обогащенные строки, новые сверху.
type ReportService struct {
	assignmentService AssignmentServiceInterface
}

func NewReportService(assignmentService AssignmentServiceInterface) ReportServiceInterface {
	return &ReportService{assignmentService: assignmentService}
}

func (s *ReportService) GetAssignmentReport(ctx context.Context) ([]dto.EnrichedAssignmentDTO, error) {
	return s.assignmentService.ListEnriched(ctx)
}
