package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerSolo adds a custom validator allowing a field to be set only when
// the slice named by its parameter holds at most one element.
// It also makes validation errors report the `label` tag instead of the Go field name.
func registerSolo(validate *validator.Validate) error {
	if err := validate.RegisterValidation("solo", validateSolo); err != nil {
		return fmt.Errorf("registering solo validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateSolo returns false if the field is non-zero while the referenced
// slice has more than one element.
func validateSolo(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() || field.IsZero() {
		return true
	}

	if other.Kind() != reflect.Slice {
		return true
	}

	return other.Len() <= 1
}
