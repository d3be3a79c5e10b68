package recipe

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"recipe-service/domain"

	"github.com/go-playground/validator/v10"
)

// ValidateRecipeRequest checks the shape of a create/update body and returns
// one entry per offending field. It touches no storage.
func ValidateRecipeRequest(v *validator.Validate, req domain.RecipeRequest) []domain.FieldError {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out = append(out, domain.FieldError{
			Field:   field,
			Message: fieldMessage(field, fe),
		})
	}
	return out
}

// fieldPath drops the root struct name: "RecipeRequest.steps[1].instruction"
// becomes "steps[1].instruction".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("the %s field is required", field)
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("the %s field must have at least %s item(s)", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("the %s field must be at least %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("the %s field must be at least %s", field, fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("the %s field must not be greater than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("the %s field must not be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("the %s field is invalid", field)
	}
}
