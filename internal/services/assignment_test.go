package services

import (
	"context"
	"errors"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/config"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEquipmentRepo struct {
	findFn   func(ctx context.Context, id string) (*entities.Equipment, error)
	updateFn func(ctx context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error)
	listFn   func(ctx context.Context) ([]entities.Equipment, error)
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return f.listFn(ctx)
}
func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return f.findFn(ctx, id)
}
func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	return &equipment, nil
}
func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
	return f.updateFn(ctx, id, equipment)
}
func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return nil, nil
}

type fakeStaffRepo struct {
	findFn func(ctx context.Context, id string) (*entities.Staff, error)
	listFn func(ctx context.Context) ([]entities.Staff, error)
}

func (f *fakeStaffRepo) GetStaffList(ctx context.Context) ([]entities.Staff, error) {
	return f.listFn(ctx)
}
func (f *fakeStaffRepo) FindStaff(ctx context.Context, id string) (*entities.Staff, error) {
	return f.findFn(ctx, id)
}
func (f *fakeStaffRepo) CreateStaff(ctx context.Context, member entities.Staff) (*entities.Staff, error) {
	return &member, nil
}
func (f *fakeStaffRepo) UpdateStaff(ctx context.Context, id string, member entities.Staff) (*entities.Staff, error) {
	return &member, nil
}
func (f *fakeStaffRepo) DeleteStaff(ctx context.Context, id string) (*entities.Staff, error) {
	return nil, nil
}

type fakeAssignmentRepo struct {
	logFn     func(ctx context.Context, record entities.Assignment) (*entities.Assignment, error)
	listFn    func(ctx context.Context) ([]entities.Assignment, error)
	historyFn func(ctx context.Context, equipmentID string) ([]entities.Assignment, error)
	staffFn   func(ctx context.Context, staffID string) ([]entities.Assignment, error)
	findFn    func(ctx context.Context, id string) (*entities.Assignment, error)
	updateFn  func(ctx context.Context, id string, record entities.Assignment) (*entities.Assignment, error)
}

func (f *fakeAssignmentRepo) GetAssignments(ctx context.Context) ([]entities.Assignment, error) {
	return f.listFn(ctx)
}
func (f *fakeAssignmentRepo) GetHistoryFor(ctx context.Context, equipmentID string) ([]entities.Assignment, error) {
	return f.historyFn(ctx, equipmentID)
}
func (f *fakeAssignmentRepo) GetStaffAssignments(ctx context.Context, staffID string) ([]entities.Assignment, error) {
	return f.staffFn(ctx, staffID)
}
func (f *fakeAssignmentRepo) FindAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return f.findFn(ctx, id)
}
func (f *fakeAssignmentRepo) LogAssignment(ctx context.Context, record entities.Assignment) (*entities.Assignment, error) {
	return f.logFn(ctx, record)
}
func (f *fakeAssignmentRepo) UpdateAssignment(ctx context.Context, id string, record entities.Assignment) (*entities.Assignment, error) {
	return f.updateFn(ctx, id, record)
}
func (f *fakeAssignmentRepo) DeleteAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return nil, nil
}

func availableEquipment() *entities.Equipment {
	return &entities.Equipment{
		ID:      "e1",
		Name:    "Ventilator",
		Status:  constants.EquipmentStatusAvailable,
		History: []entities.HistoryEntry{},
	}
}

func TestAssignEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("сначала журнал, затем карточка", func(t *testing.T) {
		var order []string

		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) {
				return availableEquipment(), nil
			},
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				order = append(order, "equipment")
				return &equipment, nil
			},
		}
		staffRepo := &fakeStaffRepo{
			findFn: func(_ context.Context, id string) (*entities.Staff, error) {
				return &entities.Staff{ID: "s1", Name: "Dr. Sarah Johnson"}, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			logFn: func(_ context.Context, record entities.Assignment) (*entities.Assignment, error) {
				order = append(order, "ledger")
				assert.Equal(t, "e1", record.EquipmentID)
				assert.Equal(t, "Ventilator", record.EquipmentName)
				assert.Equal(t, "s1", record.StaffID)
				assert.Equal(t, "Dr. Sarah Johnson", record.StaffName)
				assert.Equal(t, constants.DefaultAssignmentNotes, record.Notes)
				saved := record
				saved.ID = "a1"
				return &saved, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		res, err := svc.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{StaffID: "s1"})
		require.NoError(t, err)

		assert.Equal(t, []string{"ledger", "equipment"}, order)
		assert.Equal(t, constants.EquipmentStatusAssigned, res.Status)
		assert.Equal(t, "Dr. Sarah Johnson", res.AssignedTo)
		require.Len(t, res.History, 1)
	})

	t.Run("занятая карточка отклоняется без единой записи", func(t *testing.T) {
		busy := availableEquipment()
		busy.Status = constants.EquipmentStatusAssigned
		busy.AssignedTo = "Dr. Michael Brown"

		writes := 0
		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) { return busy, nil },
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				writes++
				return &equipment, nil
			},
		}
		staffRepo := &fakeStaffRepo{
			findFn: func(_ context.Context, id string) (*entities.Staff, error) {
				return &entities.Staff{ID: "s1", Name: "Dr. Sarah Johnson"}, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			logFn: func(_ context.Context, record entities.Assignment) (*entities.Assignment, error) {
				writes++
				return &record, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		_, err := svc.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{StaffID: "s1"})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)
		assert.Zero(t, writes)
	})

	t.Run("сбой обновления карточки отдает ConsistencyError с id записи журнала", func(t *testing.T) {
		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) {
				return availableEquipment(), nil
			},
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				return nil, &apperrors.ServerError{URL: "http://storage/equipment/e1", StatusCode: 500, Status: "500 Internal Server Error"}
			},
		}
		staffRepo := &fakeStaffRepo{
			findFn: func(_ context.Context, id string) (*entities.Staff, error) {
				return &entities.Staff{ID: "s1", Name: "Dr. Sarah Johnson"}, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			logFn: func(_ context.Context, record entities.Assignment) (*entities.Assignment, error) {
				saved := record
				saved.ID = "a77"
				return &saved, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		_, err := svc.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{StaffID: "s1"})

		var consistencyErr *apperrors.ConsistencyError
		require.ErrorAs(t, err, &consistencyErr)
		assert.Equal(t, "assign", consistencyErr.Op)
		assert.Equal(t, "a77", consistencyErr.LedgerID)
	})

	t.Run("заметки из запроса попадают в журнал", func(t *testing.T) {
		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) {
				return availableEquipment(), nil
			},
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				return &equipment, nil
			},
		}
		staffRepo := &fakeStaffRepo{
			findFn: func(_ context.Context, id string) (*entities.Staff, error) {
				return &entities.Staff{ID: "s1", Name: "Dr. Sarah Johnson"}, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			logFn: func(_ context.Context, record entities.Assignment) (*entities.Assignment, error) {
				assert.Equal(t, "For ICU ward", record.Notes)
				saved := record
				saved.ID = "a1"
				return &saved, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		_, err := svc.AssignEquipment(ctx, "e1", dto.AssignEquipmentDTO{StaffID: "s1", Notes: "For ICU ward"})
		require.NoError(t, err)
	})
}

func TestUnassignEquipment(t *testing.T) {
	ctx := context.Background()

	assignedEquipment := func() *entities.Equipment {
		return &entities.Equipment{
			ID:         "e1",
			Name:       "Ventilator",
			Status:     constants.EquipmentStatusAssigned,
			AssignedTo: "Dr. Sarah Johnson",
			History:    []entities.HistoryEntry{{Action: constants.HistoryActionAssigned, StaffName: "Dr. Sarah Johnson"}},
		}
	}

	t.Run("по умолчанию журнал не трогается", func(t *testing.T) {
		ledgerTouched := false
		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) { return assignedEquipment(), nil },
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				return &equipment, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			historyFn: func(_ context.Context, equipmentID string) ([]entities.Assignment, error) {
				ledgerTouched = true
				return nil, nil
			},
			updateFn: func(_ context.Context, id string, record entities.Assignment) (*entities.Assignment, error) {
				ledgerTouched = true
				return &record, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{CloseLedgerOnUnassign: false}, zap.NewNop())
		res, err := svc.UnassignEquipment(ctx, "e1")
		require.NoError(t, err)

		assert.False(t, ledgerTouched)
		assert.Equal(t, constants.EquipmentStatusAvailable, res.Status)
		assert.Empty(t, res.AssignedTo)
	})

	t.Run("при включенной политике закрывается свежая Active-запись", func(t *testing.T) {
		var closedID string
		var closedRecord entities.Assignment

		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) { return assignedEquipment(), nil },
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				return &equipment, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			historyFn: func(_ context.Context, equipmentID string) ([]entities.Assignment, error) {
				return []entities.Assignment{
					{ID: "a1", EquipmentID: "e1", Status: constants.AssignmentStatusActive, AssignedDate: "2024-01-01T10:00:00Z"},
					{ID: "a2", EquipmentID: "e1", Status: constants.AssignmentStatusReturned, AssignedDate: "2024-02-01T10:00:00Z"},
					{ID: "a3", EquipmentID: "e1", Status: constants.AssignmentStatusActive, AssignedDate: "2024-03-01T10:00:00Z"},
				}, nil
			},
			updateFn: func(_ context.Context, id string, record entities.Assignment) (*entities.Assignment, error) {
				closedID = id
				closedRecord = record
				return &record, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{CloseLedgerOnUnassign: true}, zap.NewNop())
		_, err := svc.UnassignEquipment(ctx, "e1")
		require.NoError(t, err)

		assert.Equal(t, "a3", closedID)
		assert.Equal(t, constants.AssignmentStatusReturned, closedRecord.Status)
		assert.True(t, closedRecord.ReturnDate.Valid)
	})

	t.Run("сбой закрытия журнала отдает ConsistencyError", func(t *testing.T) {
		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) { return assignedEquipment(), nil },
			updateFn: func(_ context.Context, id string, equipment entities.Equipment) (*entities.Equipment, error) {
				return &equipment, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			historyFn: func(_ context.Context, equipmentID string) ([]entities.Assignment, error) {
				return []entities.Assignment{
					{ID: "a1", EquipmentID: "e1", Status: constants.AssignmentStatusActive, AssignedDate: "2024-01-01T10:00:00Z"},
				}, nil
			},
			updateFn: func(_ context.Context, id string, record entities.Assignment) (*entities.Assignment, error) {
				return nil, errors.New("storage down")
			},
		}

		svc := NewAssignmentService(equipmentRepo, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{CloseLedgerOnUnassign: true}, zap.NewNop())
		_, err := svc.UnassignEquipment(ctx, "e1")

		var consistencyErr *apperrors.ConsistencyError
		require.ErrorAs(t, err, &consistencyErr)
		assert.Equal(t, "unassign", consistencyErr.Op)
		assert.Equal(t, "a1", consistencyErr.LedgerID)
	})

	t.Run("свободная карточка отклоняется", func(t *testing.T) {
		equipmentRepo := &fakeEquipmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Equipment, error) { return availableEquipment(), nil },
		}

		svc := NewAssignmentService(equipmentRepo, &fakeStaffRepo{}, &fakeAssignmentRepo{}, config.AssignmentConfig{}, zap.NewNop())
		_, err := svc.UnassignEquipment(ctx, "e1")
		assert.ErrorIs(t, err, apperrors.ErrNotAssigned)
	})
}

func TestListEnriched(t *testing.T) {
	ctx := context.Background()

	t.Run("собирает и сортирует витрину", func(t *testing.T) {
		equipmentRepo := &fakeEquipmentRepo{
			listFn: func(_ context.Context) ([]entities.Equipment, error) {
				return []entities.Equipment{{ID: "e1", Name: "Ventilator", Category: "Respiratory"}}, nil
			},
		}
		staffRepo := &fakeStaffRepo{
			listFn: func(_ context.Context) ([]entities.Staff, error) {
				return []entities.Staff{{ID: "s1", Name: "Dr. Sarah Johnson"}}, nil
			},
		}
		assignmentRepo := &fakeAssignmentRepo{
			listFn: func(_ context.Context) ([]entities.Assignment, error) {
				return []entities.Assignment{
					{ID: "a1", EquipmentID: "e1", StaffID: "s1", AssignedDate: "2024-01-01T10:00:00Z"},
					{ID: "a2", EquipmentID: "missing", StaffID: "missing", AssignedDate: "2024-02-01T10:00:00Z"},
				}, nil
			},
		}

		svc := NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		rows, err := svc.ListEnriched(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "a2", rows[0].ID)
		assert.Equal(t, "Unknown Equipment", rows[0].EquipmentName)
		assert.Equal(t, "Unknown Staff", rows[0].StaffName)
		assert.Equal(t, "N/A", rows[0].EquipmentCategory)

		assert.Equal(t, "a1", rows[1].ID)
		assert.Equal(t, "Ventilator", rows[1].EquipmentName)
		assert.Equal(t, "Respiratory", rows[1].EquipmentCategory)
	})

	t.Run("сбой любой выборки валит весь запрос", func(t *testing.T) {
		equipmentRepo := &fakeEquipmentRepo{
			listFn: func(_ context.Context) ([]entities.Equipment, error) {
				return nil, &apperrors.ServerError{URL: "http://storage/equipment", StatusCode: 500, Status: "500 Internal Server Error"}
			},
		}
		staffRepo := &fakeStaffRepo{
			listFn: func(_ context.Context) ([]entities.Staff, error) { return []entities.Staff{}, nil },
		}
		assignmentRepo := &fakeAssignmentRepo{
			listFn: func(_ context.Context) ([]entities.Assignment, error) { return []entities.Assignment{}, nil },
		}

		svc := NewAssignmentService(equipmentRepo, staffRepo, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		_, err := svc.ListEnriched(ctx)

		var serverErr *apperrors.ServerError
		assert.ErrorAs(t, err, &serverErr)
	})
}

func TestHistoryFor(t *testing.T) {
	ctx := context.Background()

	t.Run("сбой выборки дает пустой список, а не ошибку", func(t *testing.T) {
		assignmentRepo := &fakeAssignmentRepo{
			historyFn: func(_ context.Context, equipmentID string) ([]entities.Assignment, error) {
				return nil, errors.New("storage down")
			},
		}

		svc := NewAssignmentService(&fakeEquipmentRepo{}, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		rows := svc.HistoryFor(ctx, "e1")
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("возвращает записи журнала по оборудованию", func(t *testing.T) {
		assignmentRepo := &fakeAssignmentRepo{
			historyFn: func(_ context.Context, equipmentID string) ([]entities.Assignment, error) {
				assert.Equal(t, "e1", equipmentID)
				return []entities.Assignment{
					{ID: "a1", EquipmentID: "e1", ReturnDate: null.StringFrom("2024-02-01T10:00:00Z")},
				}, nil
			},
		}

		svc := NewAssignmentService(&fakeEquipmentRepo{}, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		rows := svc.HistoryFor(ctx, "e1")
		require.Len(t, rows, 1)
		assert.Equal(t, "a1", rows[0].ID)
		assert.True(t, rows[0].ReturnDate.Valid)
	})
}

func TestUpdateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("сливает изменения с текущей записью", func(t *testing.T) {
		assignmentRepo := &fakeAssignmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Assignment, error) {
				return &entities.Assignment{ID: "a1", Status: constants.AssignmentStatusActive, Notes: "old"}, nil
			},
			updateFn: func(_ context.Context, id string, record entities.Assignment) (*entities.Assignment, error) {
				assert.Equal(t, constants.AssignmentStatusReturned, record.Status)
				assert.Equal(t, "old", record.Notes)
				assert.Equal(t, "2024-02-01T10:00:00Z", record.ReturnDate.String)
				return &record, nil
			},
		}

		status := constants.AssignmentStatusReturned
		returnDate := "2024-02-01T10:00:00Z"

		svc := NewAssignmentService(&fakeEquipmentRepo{}, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		res, err := svc.UpdateAssignment(ctx, "a1", dto.UpdateAssignmentDTO{Status: &status, ReturnDate: &returnDate})
		require.NoError(t, err)
		assert.Equal(t, constants.AssignmentStatusReturned, res.Status)
	})

	t.Run("несуществующая запись отдает ErrNotFound", func(t *testing.T) {
		assignmentRepo := &fakeAssignmentRepo{
			findFn: func(_ context.Context, id string) (*entities.Assignment, error) {
				return nil, apperrors.ErrNotFound
			},
		}

		svc := NewAssignmentService(&fakeEquipmentRepo{}, &fakeStaffRepo{}, assignmentRepo, config.AssignmentConfig{}, zap.NewNop())
		_, err := svc.UpdateAssignment(ctx, "missing", dto.UpdateAssignmentDTO{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
