package repositories

import (
	"context"
	"net/url"
	"time"

	"inventory-system/internal/clients/mockapi"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"

	"go.uber.org/zap"
)

type AssignmentRepositoryInterface interface {
	GetAssignments(ctx context.Context) ([]entities.Assignment, error)
	GetHistoryFor(ctx context.Context, equipmentID string) ([]entities.Assignment, error)
	GetStaffAssignments(ctx context.Context, staffID string) ([]entities.Assignment, error)
	FindAssignment(ctx context.Context, id string) (*entities.Assignment, error)
	LogAssignment(ctx context.Context, record entities.Assignment) (*entities.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, record entities.Assignment) (*entities.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) (*entities.Assignment, error)
}

// AssignmentRepository ведет независимый журнал закреплений.
type AssignmentRepository struct {
	collection *mockapi.Collection[entities.Assignment]
	logger     *zap.Logger
}

func NewAssignmentRepository(collection *mockapi.Collection[entities.Assignment], logger *zap.Logger) AssignmentRepositoryInterface {
	return &AssignmentRepository{
		collection: collection,
		logger:     logger,
	}
}

func (r *AssignmentRepository) GetAssignments(ctx context.Context) ([]entities.Assignment, error) {
	return r.collection.List(ctx, nil)
}

// GetHistoryFor запрашивает фильтр equipmentId у сервиса, но корректность
// серверной фильтрации не гарантируется, поэтому выборка перепроверяется
// сравнением на равенство уже на нашей стороне.
func (r *AssignmentRepository) GetHistoryFor(ctx context.Context, equipmentID string) ([]entities.Assignment, error) {
	params := url.Values{}
	params.Set("equipmentId", equipmentID)

	records, err := r.collection.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return filterByField(records, func(a entities.Assignment) bool { return a.EquipmentID == equipmentID }), nil
}

func (r *AssignmentRepository) GetStaffAssignments(ctx context.Context, staffID string) ([]entities.Assignment, error) {
	params := url.Values{}
	params.Set("staffId", staffID)

	records, err := r.collection.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return filterByField(records, func(a entities.Assignment) bool { return a.StaffID == staffID }), nil
}

func (r *AssignmentRepository) FindAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return r.collection.Get(ctx, id)
}

// LogAssignment дописывает запись в журнал. Пустые служебные поля получают
// значения по умолчанию: assignedDate/createdAt - текущий момент,
// status - Active.
func (r *AssignmentRepository) LogAssignment(ctx context.Context, record entities.Assignment) (*entities.Assignment, error) {
	now := time.Now().Format(time.RFC3339)
	if record.AssignedDate == "" {
		record.AssignedDate = now
	}
	if record.Status == "" {
		record.Status = constants.AssignmentStatusActive
	}
	if record.CreatedAt == "" {
		record.CreatedAt = now
	}

	created, err := r.collection.Create(ctx, record)
	if err != nil {
		r.logger.Error("Ошибка при записи в журнал закреплений",
			zap.String("equipmentId", record.EquipmentID),
			zap.String("staffId", record.StaffID),
			zap.Error(err),
		)
		return nil, err
	}
	r.logger.Info("Запись журнала закреплений создана",
		zap.String("id", created.ID),
		zap.String("equipmentId", created.EquipmentID),
	)
	return created, nil
}

func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, id string, record entities.Assignment) (*entities.Assignment, error) {
	return r.collection.Update(ctx, id, record)
}

func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return r.collection.Delete(ctx, id)
}

func filterByField(records []entities.Assignment, keep func(entities.Assignment) bool) []entities.Assignment {
	filtered := make([]entities.Assignment, 0, len(records))
	for _, record := range records {
		if keep(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
