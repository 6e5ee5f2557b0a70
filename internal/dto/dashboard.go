package dto

type DashboardStatsDTO struct {
	TotalEquipment   int `json:"total_equipment"`
	TotalStaff       int `json:"total_staff"`
	TotalAssignments int `json:"total_assignments"`
}
