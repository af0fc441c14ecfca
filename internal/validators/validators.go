package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// ValidationError - ошибка проверки запроса с сообщением для клиента
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Messages - сообщения об ошибках по имени json-поля
type Messages map[string]string

// get - ленивая инициализация валидатора, имена полей берутся из json тегов
func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct - проверяет запрос по тегам validate.
// Возвращает *ValidationError для первого неверного поля
func Struct(request interface{}, messages Messages) error {
	err := get().Struct(request)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	field := fieldErrors[0].Field()
	message, ok := messages[field]
	if !ok {
		message = fmt.Sprintf("Invalid field %s", field)
	}
	return &ValidationError{Field: field, Message: message}
}
