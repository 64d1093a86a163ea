package resume

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var reSafeID = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidationError reports a record rejected at the boundary.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid resume: " + strings.Join(e.Fields, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report wire names, e.g. personalInfo.name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("resumeid", func(fl validator.FieldLevel) bool {
		return ValidID(fl.Field().String())
	})
	return v
}

// ValidID reports whether id is usable as a storage file stem.
func ValidID(id string) bool {
	return id != "." && id != ".." && reSafeID.MatchString(id)
}

// Validate checks required fields and normalises optional ones in place.
func Validate(r *Resume) error {
	if r.EnhancedSections == nil {
		r.EnhancedSections = []string{}
	}
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, describe(fe))
	}
	return ve
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Resume.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "resumeid":
		return fmt.Sprintf("%s %q is not a valid id", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
