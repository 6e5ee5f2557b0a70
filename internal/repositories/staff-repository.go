package repositories

import (
	"context"

	"inventory-system/internal/clients/mockapi"
	"inventory-system/internal/entities"

	"go.uber.org/zap"
)

type StaffRepositoryInterface interface {
	GetStaffList(ctx context.Context) ([]entities.Staff, error)
	FindStaff(ctx context.Context, id string) (*entities.Staff, error)
	CreateStaff(ctx context.Context, staff entities.Staff) (*entities.Staff, error)
	UpdateStaff(ctx context.Context, id string, staff entities.Staff) (*entities.Staff, error)
	DeleteStaff(ctx context.Context, id string) (*entities.Staff, error)
}

type StaffRepository struct {
	collection *mockapi.Collection[entities.Staff]
	logger     *zap.Logger
}

func NewStaffRepository(collection *mockapi.Collection[entities.Staff], logger *zap.Logger) StaffRepositoryInterface {
	return &StaffRepository{
		collection: collection,
		logger:     logger,
	}
}

func (r *StaffRepository) GetStaffList(ctx context.Context) ([]entities.Staff, error) {
	return r.collection.List(ctx, nil)
}

func (r *StaffRepository) FindStaff(ctx context.Context, id string) (*entities.Staff, error) {
	return r.collection.Get(ctx, id)
}

func (r *StaffRepository) CreateStaff(ctx context.Context, staff entities.Staff) (*entities.Staff, error) {
	created, err := r.collection.Create(ctx, staff)
	if err != nil {
		r.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	r.logger.Info("Сотрудник успешно создан", zap.String("id", created.ID))
	return created, nil
}

func (r *StaffRepository) UpdateStaff(ctx context.Context, id string, staff entities.Staff) (*entities.Staff, error) {
	return r.collection.Update(ctx, id, staff)
}

func (r *StaffRepository) DeleteStaff(ctx context.Context, id string) (*entities.Staff, error) {
	return r.collection.Delete(ctx, id)
}
