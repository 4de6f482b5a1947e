// Package val provides validation functions for configuration and request schemas.
package val

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(getTagName)
		registerCustomValidations(validate)
	})
	return validate
}

// getTagName returns the name of a struct field based on its struct tags.
// It checks 'json', 'yaml' and 'env' tags in that order, and falls back
// to the field name if none of those tags have a non-empty name component.
func getTagName(fld reflect.StructField) string {
	for _, tagName := range []string{"json", "yaml", "env"} {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	// Fall back to the actual field name
	return fld.Name
}
