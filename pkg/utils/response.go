package utils

import (
	"errors"
	"net/http"

	apperrors "inventory-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status  bool                   `json:"status"`
	Body    interface{}            `json:"body,omitempty"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse переводит внутренние ошибки в HTTP-ответ единого формата.
// Транспортные и серверные ошибки сервиса хранения отдаются как 502,
// нарушения предусловий - как 409, потеря согласованности - как 500 с
// указанием осиротевшей записи журнала.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "Внутренняя ошибка сервера"
	var details map[string]interface{}

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors
	var netErr *apperrors.NetworkError
	var srvErr *apperrors.ServerError
	var consErr *apperrors.ConsistencyError
	var inputErr *apperrors.InvalidInputError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		details = httpErr.Details
	case errors.As(err, &validationErrs):
		code = http.StatusUnprocessableEntity
		message = "Ошибка валидации данных"
		details = map[string]interface{}{}
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
	case errors.As(err, &netErr):
		code = http.StatusBadGateway
		message = "Сервис хранения недоступен"
	case errors.As(err, &srvErr):
		code = http.StatusBadGateway
		message = "Сервис хранения вернул ошибку"
	case errors.As(err, &consErr):
		code = http.StatusInternalServerError
		message = "Данные могли остаться несогласованными, требуется повтор операции"
		details = map[string]interface{}{"ledger_id": consErr.LedgerID}
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = apperrors.ErrNotFound.Error()
	case errors.Is(err, apperrors.ErrAlreadyAssigned),
		errors.Is(err, apperrors.ErrNotAssigned):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotYetValid),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrSessionNotFound):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = apperrors.ErrBadRequest.Error()
	}

	if logger != nil && code >= http.StatusInternalServerError {
		logger.Error("ErrorResponse: ошибка обработки запроса",
			zap.Int("code", code),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
		Details: details,
	})
}
