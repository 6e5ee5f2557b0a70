package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	equipmentRepository  repositories.EquipmentRepositoryInterface
	staffRepository      repositories.StaffRepositoryInterface
	assignmentRepository repositories.AssignmentRepositoryInterface
	logger               *zap.Logger
}

func NewDashboardService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	staffRepository repositories.StaffRepositoryInterface,
	assignmentRepository repositories.AssignmentRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		equipmentRepository:  equipmentRepository,
		staffRepository:      staffRepository,
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

// GetDashboardStats считает размеры трех коллекций. Выборки идут
// параллельно; сбой любой из них валит весь запрос - частичная
// статистика не отдается.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		equipment, err := s.equipmentRepository.GetEquipments(gctx)
		if err != nil {
			return err
		}
		stats.TotalEquipment = len(equipment)
		return nil
	})
	g.Go(func() error {
		staff, err := s.staffRepository.GetStaffList(gctx)
		if err != nil {
			return err
		}
		stats.TotalStaff = len(staff)
		return nil
	})
	g.Go(func() error {
		assignments, err := s.assignmentRepository.GetAssignments(gctx)
		if err != nil {
			return err
		}
		stats.TotalAssignments = len(assignments)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Не удалось собрать статистику для дашборда", zap.Error(err))
		return nil, err
	}

	return stats, nil
}
