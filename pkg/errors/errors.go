package errors

import "fmt"

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrSessionNotFound    = fmt.Errorf("сессия не найдена или истекла")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Предусловия закрепления оборудования
	ErrAlreadyAssigned = fmt.Errorf("оборудование уже закреплено за сотрудником")
	ErrNotAssigned     = fmt.Errorf("оборудование ни за кем не закреплено")
)

// NetworkError - транспортная ошибка при обращении к сервису хранения
// (обрыв соединения, таймаут). Ответа от сервиса не было.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("сетевая ошибка при обращении к %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError - сервис хранения ответил, но статусом вне диапазона 2xx.
type ServerError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("сервис хранения вернул статус %s для %s", e.Status, e.URL)
}

// ConsistencyError - частичный сбой двухшаговой записи: одна из двух
// коллекций (журнал закреплений / карточка оборудования) обновлена, вторая нет.
// LedgerID указывает на запись журнала, оставшуюся без пары.
type ConsistencyError struct {
	Op       string
	LedgerID string
	Err      error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("нарушена согласованность данных при операции %q (запись журнала %s): %v", e.Op, e.LedgerID, e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }

// HttpError - ошибка, готовая к отдаче клиенту: код, сообщение и детали.
type HttpError struct {
	Code    int                    `json:"-"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
