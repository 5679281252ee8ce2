package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Struct validates v against its `validate` tags. Tags gender and
// sexual_preference check the domain enums. Field errors are named after the
// json tag when there is one.
func Struct(v any) error {
	return validatorInstance().Struct(v)
}

func validatorInstance() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(jsonTagName)
		_ = instance.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
			return enums.Gender(fl.Field().String()).Valid()
		})
		_ = instance.RegisterValidation("sexual_preference", func(fl validator.FieldLevel) bool {
			return enums.SexualPreference(fl.Field().String()).Valid()
		})
		_ = instance.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return Required(fl.Field().String())
		})
	})
	return instance
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
