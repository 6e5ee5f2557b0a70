package services

import (
	"context"
	"strings"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type StaffServiceInterface interface {
	GetStaffList(ctx context.Context, search string) ([]dto.StaffDTO, error)
	FindStaff(ctx context.Context, id string) (*dto.StaffDTO, error)
	CreateStaff(ctx context.Context, payload dto.CreateStaffDTO) (*dto.StaffDTO, error)
	UpdateStaff(ctx context.Context, id string, payload dto.UpdateStaffDTO) (*dto.StaffDTO, error)
	DeleteStaff(ctx context.Context, id string) error
}

type StaffService struct {
	staffRepository repositories.StaffRepositoryInterface
	logger          *zap.Logger
}

func NewStaffService(staffRepository repositories.StaffRepositoryInterface, logger *zap.Logger) StaffServiceInterface {
	return &StaffService{
		staffRepository: staffRepository,
		logger:          logger,
	}
}

// GetStaffList возвращает сотрудников; search фильтрует без учета
// регистра по имени, роли, отделу и почте. Фильтрация выполняется в
// памяти после полной выборки коллекции.
func (s *StaffService) GetStaffList(ctx context.Context, search string) ([]dto.StaffDTO, error) {
	staff, err := s.staffRepository.GetStaffList(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.StaffDTO, 0, len(staff))
	for _, member := range staff {
		if search != "" && !staffMatchesSearch(member, search) {
			continue
		}
		result = append(result, mapStaffToDTO(member))
	}
	return result, nil
}

func staffMatchesSearch(member entities.Staff, search string) bool {
	term := strings.ToLower(search)
	for _, field := range []string{member.Name, member.Role, member.Department, member.Email} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (s *StaffService) FindStaff(ctx context.Context, id string) (*dto.StaffDTO, error) {
	member, err := s.staffRepository.FindStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapStaffToDTO(*member)
	return &mapped, nil
}

func (s *StaffService) CreateStaff(ctx context.Context, payload dto.CreateStaffDTO) (*dto.StaffDTO, error) {
	member := entities.Staff{
		Name:       strings.TrimSpace(payload.Name),
		Role:       strings.TrimSpace(payload.Role),
		Department: strings.TrimSpace(payload.Department),
		Email:      strings.TrimSpace(payload.Email),
		Phone:      strings.TrimSpace(payload.Phone),
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	created, err := s.staffRepository.CreateStaff(ctx, member)
	if err != nil {
		return nil, err
	}
	mapped := mapStaffToDTO(*created)
	return &mapped, nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, id string, payload dto.UpdateStaffDTO) (*dto.StaffDTO, error) {
	current, err := s.staffRepository.FindStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Name != nil {
		merged.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Role != nil {
		merged.Role = strings.TrimSpace(*payload.Role)
	}
	if payload.Department != nil {
		merged.Department = strings.TrimSpace(*payload.Department)
	}
	if payload.Email != nil {
		merged.Email = strings.TrimSpace(*payload.Email)
	}
	if payload.Phone != nil {
		merged.Phone = strings.TrimSpace(*payload.Phone)
	}

	updated, err := s.staffRepository.UpdateStaff(ctx, id, merged)
	if err != nil {
		s.logger.Error("Ошибка при обновлении сотрудника", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	mapped := mapStaffToDTO(*updated)
	return &mapped, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	_, err := s.staffRepository.DeleteStaff(ctx, id)
	return err
}

func mapStaffToDTO(member entities.Staff) dto.StaffDTO {
	return dto.StaffDTO{
		ID:         member.ID,
		Name:       member.Name,
		Role:       member.Role,
		Department: member.Department,
		Email:      member.Email,
		Phone:      member.Phone,
		CreatedAt:  member.CreatedAt,
	}
}
