package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// OneOf returns a validation func accepting only the exact strings in values.
func OneOf(values []string) validator.Func {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// Register installs custom tags on v and reports field names by their json tag.
func Register(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q: %w", tag, err)
		}
	}
	v.RegisterTagNameFunc(JSONFieldName)
	return nil
}

// JSONFieldName names a struct field after its json tag.
func JSONFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// Messages flattens validation errors into one line per field.
func Messages(err error, custom map[string]string) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		msg, ok := custom[e.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on %q", e.Tag())
		}
		out = append(out, fmt.Sprintf("%s: %s", e.Field(), msg))
	}
	return out
}
