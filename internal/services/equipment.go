package services

import (
	"context"
	"strings"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, search string) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

// GetEquipments возвращает инвентарь; search фильтрует без учета регистра
// по имени, категории, серийному номеру, статусу и держателю. Фильтрация
// выполняется в памяти после полной выборки коллекции.
func (s *EquipmentService) GetEquipments(ctx context.Context, search string) ([]dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.GetEquipments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EquipmentDTO, 0, len(equipment))
	for _, item := range equipment {
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		result = append(result, mapEquipmentToDTO(item))
	}
	return result, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapEquipmentToDTO(*item)
	return &mapped, nil
}

// CreateEquipment создает карточку с пустой историей и статусом Available.
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment := entities.Equipment{
		Name:         strings.TrimSpace(payload.Name),
		Category:     strings.TrimSpace(payload.Category),
		SerialNumber: strings.TrimSpace(payload.SerialNumber),
		Status:       constants.EquipmentStatusAvailable,
		AssignedTo:   "",
		History:      []entities.HistoryEntry{},
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, equipment)
	if err != nil {
		return nil, err
	}
	mapped := mapEquipmentToDTO(*created)
	return &mapped, nil
}

// UpdateEquipment сливает изменения с текущей карточкой перед записью:
// сервис хранения понимает только полную замену (PUT).
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	current, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Name != nil {
		merged.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Category != nil {
		merged.Category = strings.TrimSpace(*payload.Category)
	}
	if payload.SerialNumber != nil {
		merged.SerialNumber = strings.TrimSpace(*payload.SerialNumber)
	}
	if payload.Status != nil {
		merged.Status = *payload.Status
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, merged)
	if err != nil {
		s.logger.Error("Ошибка при обновлении оборудования", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	mapped := mapEquipmentToDTO(*updated)
	return &mapped, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	_, err := s.equipmentRepository.DeleteEquipment(ctx, id)
	return err
}

func matchesSearch(item entities.Equipment, search string) bool {
	term := strings.ToLower(search)
	for _, field := range []string{item.Name, item.Category, item.SerialNumber, item.Status, item.AssignedTo} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func mapEquipmentToDTO(item entities.Equipment) dto.EquipmentDTO {
	history := make([]dto.HistoryEntryDTO, 0, len(item.History))
	for _, entry := range item.History {
		history = append(history, dto.HistoryEntryDTO{
			Action:    entry.Action,
			StaffName: entry.StaffName,
			Date:      entry.Date,
			Notes:     entry.Notes,
		})
	}

	return dto.EquipmentDTO{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		SerialNumber: item.SerialNumber,
		Status:       item.Status,
		AssignedTo:   item.AssignedTo,
		History:      history,
		CreatedAt:    item.CreatedAt,
	}
}
