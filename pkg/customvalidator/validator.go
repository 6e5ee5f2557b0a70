// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations "собирает" все наши кастомные правила валидации
// и регистрирует их в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("serial_number", isSerialNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("iso8601", isISO8601Date); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}

	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// isSerialNumber - серийные номера больничного оборудования: буквы, цифры,
// дефисы, от 3 символов.
func isSerialNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{2,63}$`)
	return re.MatchString(fl.Field().String())
}

// isISO8601Date - дата в формате ISO 8601: либо полная метка времени,
// либо только дата.
func isISO8601Date(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2}))?$`)
	return re.MatchString(fl.Field().String())
}
