package validator

import (
	"reflect"
	"strings"

	"go-stocktrack/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their json name so boundary errors match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct checks every rule in field declaration order and returns a
// typed error for the first violation. No side effects on success.
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return &apperr.ValidationError{
		Field: first.Field(),
		Rule:  first.Tag(),
	}
}
