package dto

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Category     string `json:"category" validate:"required"`
	SerialNumber string `json:"serial_number" validate:"required,serial_number"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name,omitempty"          validate:"omitempty,min=2,max=200"`
	Category     *string `json:"category,omitempty"      validate:"omitempty"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,serial_number"`
	Status       *string `json:"status,omitempty"        validate:"omitempty,oneof=Available Assigned Maintenance Retired"`
}

type HistoryEntryDTO struct {
	Action    string `json:"action"`
	StaffName string `json:"staff_name"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

type EquipmentDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	SerialNumber string            `json:"serial_number"`
	Status       string            `json:"status"`
	AssignedTo   string            `json:"assigned_to"`
	History      []HistoryEntryDTO `json:"history"`
	CreatedAt    string            `json:"created_at"`
}
