package constants

// Статусы оборудования. Машинно управляются только Available/Assigned,
// Maintenance и Retired выставляются вручную через обновление карточки.
const (
	EquipmentStatusAvailable   = "Available"
	EquipmentStatusAssigned    = "Assigned"
	EquipmentStatusMaintenance = "Maintenance"
	EquipmentStatusRetired     = "Retired"
)

// Статусы записей журнала закреплений.
const (
	AssignmentStatusActive    = "Active"
	AssignmentStatusReturned  = "Returned"
	AssignmentStatusCompleted = "Completed"
)

// Действия во встроенной истории оборудования.
const (
	HistoryActionAssigned   = "Assigned"
	HistoryActionUnassigned = "Unassigned"
)

const DefaultAssignmentNotes = "Equipment assigned"
