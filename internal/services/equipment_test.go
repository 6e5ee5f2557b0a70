package services

import (
	"context"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetEquipmentsSearch(t *testing.T) {
	ctx := context.Background()

	inventory := []entities.Equipment{
		{ID: "1", Name: "MRI Scanner", Category: "Imaging", SerialNumber: "MRI-001", Status: constants.EquipmentStatusAvailable},
		{ID: "2", Name: "Ventilator", Category: "Respiratory", SerialNumber: "VNT-009", Status: constants.EquipmentStatusAssigned, AssignedTo: "Dr. Sarah Johnson"},
		{ID: "3", Name: "Defibrillator", Category: "Cardiology", SerialNumber: "DFB-777", Status: constants.EquipmentStatusMaintenance},
	}
	repo := &fakeEquipmentRepo{
		listFn: func(_ context.Context) ([]entities.Equipment, error) { return inventory, nil },
	}
	svc := NewEquipmentService(repo, zap.NewNop())

	t.Run("пустой запрос отдает все", func(t *testing.T) {
		res, err := svc.GetEquipments(ctx, "")
		require.NoError(t, err)
		assert.Len(t, res, 3)
	})

	t.Run("поиск по имени без учета регистра", func(t *testing.T) {
		res, err := svc.GetEquipments(ctx, "venti")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Ventilator", res[0].Name)
	})

	t.Run("поиск по серийному номеру", func(t *testing.T) {
		res, err := svc.GetEquipments(ctx, "dfb-777")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Defibrillator", res[0].Name)
	})

	t.Run("поиск по держателю", func(t *testing.T) {
		res, err := svc.GetEquipments(ctx, "sarah")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Ventilator", res[0].Name)
	})

	t.Run("без совпадений отдается пустой список", func(t *testing.T) {
		res, err := svc.GetEquipments(ctx, "x-ray")
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestCreateEquipmentDefaults(t *testing.T) {
	var saved entities.Equipment
	svc := NewEquipmentService(&fakeEquipmentRepoCreate{onCreate: func(equipment entities.Equipment) {
		saved = equipment
	}}, zap.NewNop())

	res, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "  Infusion Pump ",
		Category:     "ICU",
		SerialNumber: "INF-100",
	})
	require.NoError(t, err)

	assert.Equal(t, "Infusion Pump", saved.Name)
	assert.Equal(t, constants.EquipmentStatusAvailable, saved.Status)
	assert.Empty(t, saved.AssignedTo)
	assert.NotNil(t, saved.History)
	assert.Empty(t, saved.History)
	assert.NotEmpty(t, saved.CreatedAt)
	assert.Equal(t, constants.EquipmentStatusAvailable, res.Status)
}

// fakeEquipmentRepoCreate перехватывает только создание карточки.
type fakeEquipmentRepoCreate struct {
	fakeEquipmentRepo
	onCreate func(entities.Equipment)
}

func (f *fakeEquipmentRepoCreate) CreateEquipment(_ context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	f.onCreate(equipment)
	created := equipment
	created.ID = "1"
	return &created, nil
}
