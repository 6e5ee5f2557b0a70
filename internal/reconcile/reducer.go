// Пакет reconcile держит согласованными три представления закрепления
// оборудования: поля status/assignedTo карточки, её встроенную историю и
// независимый журнал закреплений. Здесь живут чистые функции; сетевые
// записи выполняет вызывающий сервис.
package reconcile

import (
	"fmt"
	"time"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

// Assign вычисляет следующее состояние карточки при закреплении за
// сотрудником. Чистая функция: входная карточка не изменяется, история
// копируется и получает ровно одну новую запись.
func Assign(current entities.Equipment, staff entities.Staff, now time.Time) (entities.Equipment, error) {
	if current.AssignedTo != "" {
		return entities.Equipment{}, apperrors.ErrAlreadyAssigned
	}

	next := current
	next.Status = constants.EquipmentStatusAssigned
	next.AssignedTo = staff.Name
	next.History = appendHistory(current.History, entities.HistoryEntry{
		Action:    constants.HistoryActionAssigned,
		StaffName: staff.Name,
		Date:      now.Format(time.RFC3339),
		Notes:     fmt.Sprintf("Assigned to %s", staff.Name),
	})
	return next, nil
}

// Unassign вычисляет следующее состояние карточки при откреплении.
// Имя предыдущего держателя попадает в запись истории.
func Unassign(current entities.Equipment, now time.Time) (entities.Equipment, error) {
	if current.AssignedTo == "" {
		return entities.Equipment{}, apperrors.ErrNotAssigned
	}

	next := current
	next.Status = constants.EquipmentStatusAvailable
	next.AssignedTo = ""
	next.History = appendHistory(current.History, entities.HistoryEntry{
		Action:    constants.HistoryActionUnassigned,
		StaffName: current.AssignedTo,
		Date:      now.Format(time.RFC3339),
		Notes:     fmt.Sprintf("Unassigned from %s", current.AssignedTo),
	})
	return next, nil
}

// appendHistory копирует список перед добавлением, чтобы предыдущее
// состояние карточки оставалось нетронутым префиксом нового.
func appendHistory(history []entities.HistoryEntry, entry entities.HistoryEntry) []entities.HistoryEntry {
	next := make([]entities.HistoryEntry, len(history), len(history)+1)
	copy(next, history)
	return append(next, entry)
}
