package services

import (
	"context"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/reconcile"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/config"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AssignmentServiceInterface interface {
	AssignEquipment(ctx context.Context, equipmentID string, payload dto.AssignEquipmentDTO) (*dto.EquipmentDTO, error)
	UnassignEquipment(ctx context.Context, equipmentID string) (*dto.EquipmentDTO, error)
	ListEnriched(ctx context.Context) ([]dto.EnrichedAssignmentDTO, error)
	HistoryFor(ctx context.Context, equipmentID string) []dto.AssignmentDTO
	StaffAssignments(ctx context.Context, staffID string) ([]dto.AssignmentDTO, error)
	UpdateAssignment(ctx context.Context, id string, payload dto.UpdateAssignmentDTO) (*dto.AssignmentDTO, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// AssignmentService оркеструет двухшаговую запись закрепления: сначала
// запись в журнал, затем полная замена карточки оборудования. Транзакции
// между двумя коллекциями у сервиса хранения нет, поэтому частичный сбой
// возможен и всегда отдается наружу как ConsistencyError с id осиротевшей
// записи журнала.
type AssignmentService struct {
	equipmentRepository  repositories.EquipmentRepositoryInterface
	staffRepository      repositories.StaffRepositoryInterface
	assignmentRepository repositories.AssignmentRepositoryInterface
	policy               config.AssignmentConfig
	logger               *zap.Logger
}

func NewAssignmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	staffRepository repositories.StaffRepositoryInterface,
	assignmentRepository repositories.AssignmentRepositoryInterface,
	policy config.AssignmentConfig,
	logger *zap.Logger,
) AssignmentServiceInterface {
	return &AssignmentService{
		equipmentRepository:  equipmentRepository,
		staffRepository:      staffRepository,
		assignmentRepository: assignmentRepository,
		policy:               policy,
		logger:               logger,
	}
}

// AssignEquipment закрепляет оборудование за сотрудником.
// Предусловие проверяется до любой записи в сеть: занятая карточка
// отклоняется сразу, без лишнего обращения к сервису хранения.
func (s *AssignmentService) AssignEquipment(ctx context.Context, equipmentID string, payload dto.AssignEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	staff, err := s.staffRepository.FindStaff(ctx, payload.StaffID)
	if err != nil {
		return nil, err
	}

	next, err := reconcile.Assign(*equipment, *staff, time.Now())
	if err != nil {
		return nil, err
	}

	notes := payload.Notes
	if notes == "" {
		notes = constants.DefaultAssignmentNotes
	}

	// Шаг 1: запись журнала.
	record, err := s.assignmentRepository.LogAssignment(ctx, entities.Assignment{
		EquipmentID:   equipment.ID,
		EquipmentName: equipment.Name,
		StaffID:       staff.ID,
		StaffName:     staff.Name,
		Notes:         notes,
	})
	if err != nil {
		return nil, err
	}

	// Шаг 2: замена карточки. Если она не прошла, журнал уже пополнен -
	// коллекции разъехались, и починить это может только повтор операции.
	updated, err := s.equipmentRepository.UpdateEquipment(ctx, equipment.ID, next)
	if err != nil {
		s.logger.Error("Закрепление записано в журнал, но карточка не обновлена",
			zap.String("equipmentId", equipment.ID),
			zap.String("ledgerId", record.ID),
			zap.Error(err),
		)
		return nil, &apperrors.ConsistencyError{Op: "assign", LedgerID: record.ID, Err: err}
	}

	s.logger.Info("Оборудование закреплено",
		zap.String("equipmentId", updated.ID),
		zap.String("staffId", staff.ID),
	)
	mapped := mapEquipmentToDTO(*updated)
	return &mapped, nil
}

// UnassignEquipment открепляет оборудование. Закрытие записи журнала
// управляется политикой: по умолчанию журнал не трогается (поведение
// исходной системы), при включенном флаге свежая Active-запись
// переписывается в Returned.
func (s *AssignmentService) UnassignEquipment(ctx context.Context, equipmentID string) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	next, err := reconcile.Unassign(*equipment, time.Now())
	if err != nil {
		return nil, err
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, equipment.ID, next)
	if err != nil {
		return nil, err
	}

	if s.policy.CloseLedgerOnUnassign {
		if err := s.closeActiveLedgerRecord(ctx, equipmentID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Оборудование откреплено", zap.String("equipmentId", updated.ID))
	mapped := mapEquipmentToDTO(*updated)
	return &mapped, nil
}

// closeActiveLedgerRecord находит самую свежую Active-запись журнала по
// оборудованию и переводит её в Returned с датой возврата.
func (s *AssignmentService) closeActiveLedgerRecord(ctx context.Context, equipmentID string) error {
	records, err := s.assignmentRepository.GetHistoryFor(ctx, equipmentID)
	if err != nil {
		return &apperrors.ConsistencyError{Op: "unassign", Err: err}
	}

	var newest *entities.Assignment
	for i := range records {
		if records[i].Status != constants.AssignmentStatusActive {
			continue
		}
		if newest == nil || records[i].AssignedDate > newest.AssignedDate {
			newest = &records[i]
		}
	}
	if newest == nil {
		// Журнал и карточка уже разошлись раньше; закрывать нечего.
		s.logger.Warn("Активная запись журнала не найдена при откреплении",
			zap.String("equipmentId", equipmentID),
		)
		return nil
	}

	closed := *newest
	closed.Status = constants.AssignmentStatusReturned
	closed.ReturnDate = null.StringFrom(time.Now().Format(time.RFC3339))

	if _, err := s.assignmentRepository.UpdateAssignment(ctx, newest.ID, closed); err != nil {
		s.logger.Error("Карточка обновлена, но запись журнала не закрыта",
			zap.String("equipmentId", equipmentID),
			zap.String("ledgerId", newest.ID),
			zap.Error(err),
		)
		return &apperrors.ConsistencyError{Op: "unassign", LedgerID: newest.ID, Err: err}
	}
	return nil
}

// ListEnriched собирает витрину журнала: три коллекции выбираются
// параллельно, и если хотя бы одна недоступна - отдается ошибка целиком,
// частичное обогащение не показывается.
func (s *AssignmentService) ListEnriched(ctx context.Context) ([]dto.EnrichedAssignmentDTO, error) {
	var (
		assignments []entities.Assignment
		equipment   []entities.Equipment
		staff       []entities.Staff
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = s.assignmentRepository.GetAssignments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		equipment, err = s.equipmentRepository.GetEquipments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		staff, err = s.staffRepository.GetStaffList(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	enriched := reconcile.Enrich(assignments, equipment, staff)
	result := make([]dto.EnrichedAssignmentDTO, 0, len(enriched))
	for _, row := range enriched {
		result = append(result, dto.EnrichedAssignmentDTO{
			AssignmentDTO:     mapAssignmentToDTO(row.Assignment),
			EquipmentCategory: row.EquipmentCategory,
		})
	}
	return result, nil
}

// HistoryFor возвращает журнал по оборудованию; при сбое выборки история
// считается пустой - карточка оборудования должна открываться даже без
// журнала.
func (s *AssignmentService) HistoryFor(ctx context.Context, equipmentID string) []dto.AssignmentDTO {
	records, err := s.assignmentRepository.GetHistoryFor(ctx, equipmentID)
	if err != nil {
		s.logger.Warn("История закреплений недоступна, отдаем пустой список",
			zap.String("equipmentId", equipmentID),
			zap.Error(err),
		)
		return []dto.AssignmentDTO{}
	}
	return mapAssignmentsToDTO(records)
}

func (s *AssignmentService) StaffAssignments(ctx context.Context, staffID string) ([]dto.AssignmentDTO, error) {
	records, err := s.assignmentRepository.GetStaffAssignments(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapAssignmentsToDTO(records), nil
}

func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, payload dto.UpdateAssignmentDTO) (*dto.AssignmentDTO, error) {
	current, err := s.assignmentRepository.FindAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Status != nil {
		merged.Status = *payload.Status
	}
	if payload.ReturnDate != nil {
		merged.ReturnDate = null.StringFrom(*payload.ReturnDate)
	}
	if payload.Notes != nil {
		merged.Notes = *payload.Notes
	}

	updated, err := s.assignmentRepository.UpdateAssignment(ctx, id, merged)
	if err != nil {
		return nil, err
	}
	mapped := mapAssignmentToDTO(*updated)
	return &mapped, nil
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, id string) error {
	_, err := s.assignmentRepository.DeleteAssignment(ctx, id)
	return err
}

func mapAssignmentToDTO(record entities.Assignment) dto.AssignmentDTO {
	return dto.AssignmentDTO{
		ID:            record.ID,
		EquipmentID:   record.EquipmentID,
		StaffID:       record.StaffID,
		EquipmentName: record.EquipmentName,
		StaffName:     record.StaffName,
		AssignedDate:  record.AssignedDate,
		ReturnDate:    record.ReturnDate,
		Status:        record.Status,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
	}
}

func mapAssignmentsToDTO(records []entities.Assignment) []dto.AssignmentDTO {
	result := make([]dto.AssignmentDTO, 0, len(records))
	for _, record := range records {
		result = append(result, mapAssignmentToDTO(record))
	}
	return result
}
