package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types that know how to validate
// themselves, usually with Struct plus checks tags cannot express.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a validation issue on one field that struct tags
// cannot express, such as a path id that differs from the body id.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// Fixed messages for bind failures. The binder's own text names Go parsing
// internals and is not shown to clients.
const (
	msgInvalidPath  = "Invalid path parameters"
	msgInvalidQuery = "Invalid query parameters"
	msgInvalidBody  = "Invalid request body"
)

// BindAndValidate fills payload from the path, the query string and the
// body, then validates it. Failures are 400 *errs.HTTPError values.
//
// echo only binds query parameters for GET, DELETE and HEAD; they are bound
// here for every method so POST /api/pokemon?ownerId= works.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if msg := bind(c, payload); msg != "" {
		return errs.NewBadRequestError(msg, false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bind returns the client message for the first step that fails, or "".
func bind(c echo.Context, payload Validatable) string {
	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		return msgInvalidPath
	}
	if err := binder.BindQueryParams(c, payload); err != nil {
		return msgInvalidQuery
	}
	if err := binder.BindBody(c, payload); err != nil {
		return msgInvalidBody
	}
	return ""
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required", "notblank":
			msg = "is required"

		case "min", "gte":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max", "lte":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", err.Field(), err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
