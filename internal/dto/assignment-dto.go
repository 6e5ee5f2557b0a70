package dto

import "github.com/aarondl/null/v8"

type AssignEquipmentDTO struct {
	StaffID string `json:"staff_id" validate:"required"`
	Notes   string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAssignmentDTO struct {
	Status     *string `json:"status,omitempty"      validate:"omitempty,oneof=Active Returned Completed"`
	ReturnDate *string `json:"return_date,omitempty" validate:"omitempty,iso8601"`
	Notes      *string `json:"notes,omitempty"       validate:"omitempty,max=1000"`
}

type AssignmentDTO struct {
	ID            string      `json:"id"`
	EquipmentID   string      `json:"equipment_id"`
	StaffID       string      `json:"staff_id"`
	EquipmentName string      `json:"equipment_name"`
	StaffName     string      `json:"staff_name"`
	AssignedDate  string      `json:"assigned_date"`
	ReturnDate    null.String `json:"return_date,omitempty"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes"`
	CreatedAt     string      `json:"created_at"`
}

// EnrichedAssignmentDTO - строка журнала, обогащенная актуальными данными
// из коллекций оборудования и персонала.
type EnrichedAssignmentDTO struct {
	AssignmentDTO
	EquipmentCategory string `json:"equipment_category"`
}
