package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cashtracker/backend/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Locations of request data that fails validation.
const (
	LocationBody   = "body"
	LocationParams = "params"
	LocationQuery  = "query"
)

// ValidationError describes one field of the request that is not valid.
type ValidationError struct {
	Type     string `json:"type" example:"field"`
	Value    any    `json:"value" example:"not-an-email"`
	Msg      string `json:"msg" example:"email is not a valid email address"`
	Path     string `json:"path" example:"email"`
	Location string `json:"location" example:"body"`
}

// ValidationErrors is the response for requests that do not have the
// expected shape.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, e.Msg)
	}
	return strings.Join(msgs, ", ")
}

// Invalid returns a ValidationErrors with a single error.
func Invalid(location, path string, value any, msg string) ValidationErrors {
	return ValidationErrors{Errors: []ValidationError{{
		Type:     "field",
		Value:    value,
		Msg:      msg,
		Path:     path,
		Location: location,
	}}}
}

// RegisterValidations sets up v for the request types of the API.
//
// Fields are reported by their JSON name, decimal amounts are validated
// as numbers and the "token" tag checks for confirmation tokens.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "uri", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
		return auth.IsToken(fl.Field().String())
	})
}

// bindError converts an error of gin's binding into ValidationErrors.
// It returns nil if err is not caused by the content of a field.
func bindError(err error, location string) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		v := ValidationErrors{Errors: make([]ValidationError, 0, len(fieldErrors))}
		for _, fe := range fieldErrors {
			v.Errors = append(v.Errors, ValidationError{
				Type:     "field",
				Value:    value(fe),
				Msg:      validationMessage(fe),
				Path:     fe.Field(),
				Location: location,
			})
		}
		return v
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return Invalid(location, typeError.Field, nil, fmt.Sprintf("%s must be a %s", typeError.Field, typeError.Type))
	}

	return nil
}

// value returns the submitted value of the field. Passwords are never echoed.
func value(fe validator.FieldError) any {
	if strings.Contains(strings.ToLower(fe.Field()), "password") {
		return ""
	}
	return fe.Value()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s is too short, it needs at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot be longer than %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "token":
		return fmt.Sprintf("%s is not a valid token", fe.Field())
	case "eqfield":
		return fmt.Sprintf("%s does not match %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is not valid", fe.Field())
}
