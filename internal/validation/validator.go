// Package validation checks decoded request bodies with validator/v10.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-notes/internal/apperrors"
)

// Validator wraps go-playground/validator with apperrors conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate checks s. A violation yields an Invalid error whose message names
// the first offending field and whose details list every field.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Invalid("invalid request").WithCause(err)
	}

	details := make(map[string]string, len(fieldErrs))
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := details[field]; !seen {
			fields = append(fields, field)
		}
		details[field] = friendlyMessage(fe)
	}
	sort.Strings(fields)

	first := fields[0]
	return apperrors.Invalid("%s %s", first, details[first]).WithDetails(details)
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "hexcolor":
		return "must be in hex format (e.g., #FF5733)"
	default:
		return "is invalid"
	}
}
