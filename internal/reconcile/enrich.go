package reconcile

import (
	"sort"
	"time"

	"inventory-system/internal/entities"
)

const (
	UnknownEquipmentName = "Unknown Equipment"
	UnknownStaffName     = "Unknown Staff"
	UnknownCategory      = "N/A"
)

// EnrichedAssignment - запись журнала, дополненная актуальными именами и
// категорией для отображения.
type EnrichedAssignment struct {
	entities.Assignment
	EquipmentCategory string
}

// Enrich сопоставляет записи журнала с текущими снимками коллекций
// оборудования и персонала. Имя берется по цепочке: живая запись -
// денормализованная копия в журнале - заглушка. Результат отсортирован по
// дате закрепления, новые сверху; при равных датах сохраняется исходный
// порядок выборки. Чистая функция своих входов.
//
// Поиск - линейный перебор по обеим коллекциям; на масштабе одной больницы
// это заведомо дешевле индекса.
func Enrich(assignments []entities.Assignment, equipment []entities.Equipment, staff []entities.Staff) []EnrichedAssignment {
	enriched := make([]EnrichedAssignment, 0, len(assignments))

	for _, a := range assignments {
		row := EnrichedAssignment{Assignment: a, EquipmentCategory: UnknownCategory}

		eq := findEquipment(equipment, a.EquipmentID)
		if eq != nil && eq.Name != "" {
			row.EquipmentName = eq.Name
		} else if row.EquipmentName == "" {
			row.EquipmentName = UnknownEquipmentName
		}
		if eq != nil && eq.Category != "" {
			row.EquipmentCategory = eq.Category
		}

		st := findStaff(staff, a.StaffID)
		if st != nil && st.Name != "" {
			row.StaffName = st.Name
		} else if row.StaffName == "" {
			row.StaffName = UnknownStaffName
		}

		enriched = append(enriched, row)
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return parseAssignedDate(enriched[i].AssignedDate).After(parseAssignedDate(enriched[j].AssignedDate))
	})

	return enriched
}

func findEquipment(equipment []entities.Equipment, id string) *entities.Equipment {
	for i := range equipment {
		if equipment[i].ID == id {
			return &equipment[i]
		}
	}
	return nil
}

func findStaff(staff []entities.Staff, id string) *entities.Staff {
	for i := range staff {
		if staff[i].ID == id {
			return &staff[i]
		}
	}
	return nil
}

// parseAssignedDate понимает полную метку времени и короткую дату.
// Нечитаемая дата трактуется как нулевое время и уходит в конец списка.
func parseAssignedDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
