package entities

// Equipment - карточка оборудования в том виде, в котором её хранит внешняя
// коллекция (camelCase - формат сервиса хранения). id назначает сервис.
type Equipment struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	SerialNumber string         `json:"serialNumber"`
	Status       string         `json:"status"`
	AssignedTo   string         `json:"assignedTo"`
	History      []HistoryEntry `json:"history"`
	CreatedAt    string         `json:"createdAt"`
}

// HistoryEntry - встроенная запись истории карточки. Список append-only,
// порядок вставки совпадает с хронологическим.
type HistoryEntry struct {
	Action    string `json:"action"`
	StaffName string `json:"staffName"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}
