// Package validation registers the checklist request rules on
// go-playground/validator and converts its failures into AppErrors.
package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/NomadCrew/nomad-checklist-backend/errors"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/go-playground/validator/v10"
)

// Checklist names allow letters, digits, whitespace, hyphen and underscore.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

// Register installs the custom tags and JSON field naming on v. The same
// rules back gin binding and service-level validation.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("checklist_name", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("trip_type", func(fl validator.FieldLevel) bool {
		return types.TripType(fl.Field().String()).IsValid()
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

var (
	instance *validator.Validate
	once     sync.Once
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.SetTagName("binding")
		if err := Register(v); err != nil {
			panic(fmt.Sprintf("register validators: %v", err))
		}
		instance = v
	})
	return instance
}

// Struct checks req against its binding tags.
func Struct(req interface{}) error {
	if err := engine().Struct(req); err != nil {
		return FromError(err)
	}
	return nil
}

// FromError converts a validator failure into a VALIDATION_ERROR AppError
// listing one FieldError per rejected field.
func FromError(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		return errors.ValidationFailedWithDetails("invalid request data", FieldErrors(verrs))
	}
	return errors.ValidationFailed("invalid request data", err.Error())
}

func FieldErrors(verrs validator.ValidationErrors) []types.FieldError {
	out := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, types.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "checklist_name":
		return fmt.Sprintf("%s may only contain letters, numbers, spaces, hyphens and underscores", fe.Field())
	case "trip_type":
		names := make([]string, len(types.TripTypes))
		for i, t := range types.TripTypes {
			names[i] = string(t)
		}
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
