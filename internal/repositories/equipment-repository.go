package repositories

import (
	"context"

	"inventory-system/internal/clients/mockapi"
	"inventory-system/internal/entities"

	"go.uber.org/zap"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) (*entities.Equipment, error)
}

// EquipmentRepository ходит в коллекцию equipment внешнего сервиса хранения.
// Прямой базы данных у системы нет по определению: вся долговечность - на
// стороне сервиса коллекций.
type EquipmentRepository struct {
	collection *mockapi.Collection[entities.Equipment]
	logger     *zap.Logger
}

func NewEquipmentRepository(collection *mockapi.Collection[entities.Equipment], logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		collection: collection,
		logger:     logger,
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return r.collection.List(ctx, nil)
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return r.collection.Get(ctx, id)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	created, err := r.collection.Create(ctx, equipment)
	if err != nil {
		r.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}
	r.logger.Info("Оборудование успешно создано", zap.String("id", created.ID))
	return created, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
	return r.collection.Update(ctx, id, equipment)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return r.collection.Delete(ctx, id)
}
