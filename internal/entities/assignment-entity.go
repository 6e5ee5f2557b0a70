package entities

import "github.com/aarondl/null/v8"

// Assignment - запись независимого журнала закреплений. equipmentName и
// staffName - денормализованные копии, снятые в момент записи; сервис
// хранения ссылочную целостность не проверяет.
type Assignment struct {
	ID            string      `json:"id"`
	EquipmentID   string      `json:"equipmentId"`
	StaffID       string      `json:"staffId"`
	EquipmentName string      `json:"equipmentName"`
	StaffName     string      `json:"staffName"`
	AssignedDate  string      `json:"assignedDate"`
	ReturnDate    null.String `json:"returnDate,omitempty"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes"`
	CreatedAt     string      `json:"createdAt"`
}
