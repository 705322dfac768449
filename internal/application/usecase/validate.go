package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bereketw/itadmin-api/internal/domain"
)

// Shared validator for request DTOs. Field names in messages come from the
// json tag so the client sees the wire name, not the Go identifier.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs tag validation and converts the first failure to a
// caller-facing ValidationError.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Validationf("Invalid input.")
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.Validationf("Field '%s' is required", fe.Field())
	case "email":
		return domain.Validationf("Field '%s' must be a valid email address", fe.Field())
	case "oneof":
		return domain.Validationf("Field '%s' must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return domain.Validationf("Field '%s' must be at least %s characters", fe.Field(), fe.Param())
	case "datetime":
		return domain.Validationf("Field '%s' must be a date in YYYY-MM-DD format", fe.Field())
	default:
		return domain.Validationf("Field '%s' is invalid", fe.Field())
	}
}
