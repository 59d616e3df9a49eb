// ABOUTME: Struct-tag validation for API payloads via go-playground/validator
// ABOUTME: Translates field errors into the engine's ValidationError type

package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"serversizer/models"
)

// RequestValidator validates inbound sizing requests before they reach
// the engine, so malformed payloads fail with the same taxonomy as
// engine-level checks.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that reports fields by their
// JSON names.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// ValidateSizingRequest checks a full sizing request against its
// struct tags. The first failing field is reported as a
// ValidationError.
func (rv *RequestValidator) ValidateSizingRequest(req *models.SizingRequest) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &models.ValidationError{
			Field:   strings.TrimPrefix(fe.Namespace(), "SizingRequest."),
			Message: fmt.Sprintf("failed '%s' constraint", fe.Tag()),
		}
	}
	return &models.ValidationError{Field: "request", Message: err.Error()}
}
