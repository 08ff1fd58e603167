// Package validation runs gin's binding tags and reports failures as
// apperrors.ValidationError field entries named after the JSON keys.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// Struct checks obj against its binding tags. The returned ValidationError is
// never nil so callers can add rules the tags cannot express before calling
// OrNil. A non-nil error means obj could not be validated at all.
func Struct(obj interface{}) (*apperrors.ValidationError, error) {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return &apperrors.ValidationError{}, nil
	}
	if verr, ok := FromError(err); ok {
		return verr, nil
	}
	return nil, err
}

// FromError converts validator failures, as returned by binding or Struct,
// into a ValidationError. It reports false for any other error.
func FromError(err error) (*apperrors.ValidationError, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil, false
	}
	verr := &apperrors.ValidationError{}
	for _, fe := range errs {
		verr.Add(fieldPath(fe), message(fe))
	}
	return verr, true
}

// fieldPath drops the top-level struct name, e.g. "GenerateRequest.assessment.skinType"
// becomes "assessment.skinType".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "eqfield":
		return "must match " + strings.ToLower(fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("must have at least %s entries", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	}
	return fmt.Sprintf("failed the %q check", fe.Tag())
}
