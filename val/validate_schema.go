package val

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/code19m/errx"
	"github.com/go-playground/validator/v10"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
)

// ValidateSchema validates a given schema using the go-playground/validator package.
func ValidateSchema(schema any) error {
	err := getValidator().Struct(schema)

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(errx.M)

		for _, fieldErr := range validationErrors {
			fields[fieldErr.Namespace()] = getFieldErrDescription(fieldErr)
		}

		return errx.New(
			"Validation failed. See fields for details.",
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
			errx.WithFields(fields),
		)
	}
	return errx.New(
		fmt.Sprintf("Unknown validation error: %s", err.Error()),
		errx.WithCode(CodeValidationFailed),
		errx.WithType(errx.T_Validation),
	)
}

// Fail builds a validation error for a single field.
func Fail(field, description string) error {
	return errx.New(
		"Validation failed. See fields for details.",
		errx.WithCode(CodeValidationFailed),
		errx.WithType(errx.T_Validation),
		errx.WithFields(errx.M{field: description}),
	)
}

// RemotePath checks that p is a non-blank Files.com path without ".." segments.
// Failures are reported under field.
func RemotePath(field, p string) error {
	err := getValidator().Var(p, tagNotBlank+","+tagRemotePath)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return Fail(field, getFieldErrDescription(validationErrors[0]))
	}
	return Fail(field, err.Error())
}

func getFieldErrDescription(fieldErr validator.FieldError) string {
	param := fieldErr.Param()
	tag := fieldErr.Tag()

	if desc := getCoreValidationDesc(tag, param, fieldErr); desc != "" {
		return desc
	}

	if desc := getFormatValidationDesc(tag); desc != "" {
		return desc
	}

	if desc := getCustomValidationDesc(tag); desc != "" {
		return desc
	}

	return fmt.Sprintf("Failed validation: %s", tag)
}

func getCoreValidationDesc(tag, param string, fieldErr validator.FieldError) string {
	switch tag {
	case "required":
		return "This field is required"
	case "required_if", "required_with":
		return fmt.Sprintf("This field is required when %s", param)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return fmt.Sprintf("Must be at least %s", param)
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", param)
		}
		return fmt.Sprintf("Must be at most %s", param)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", param)
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", param)
	case "oneof":
		options := strings.ReplaceAll(param, " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	}
	return ""
}

func getFormatValidationDesc(tag string) string {
	switch tag {
	case "url":
		return "Must be a valid URL"
	case "uri":
		return "Must be a valid URI"
	case "hostname":
		return "Must be a valid hostname"
	}
	return ""
}

func getCustomValidationDesc(tag string) string {
	switch tag {
	case tagNotBlank:
		return "Must not be blank"
	case tagRemotePath:
		return "Must be a remote path without '..' segments"
	}
	return ""
}
