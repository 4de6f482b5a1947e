package val

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	tagNotBlank   = "notblank"
	tagRemotePath = "remote_path"
)

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		return IsNotBlank(fl.Field().String())
	})
	_ = v.RegisterValidation(tagRemotePath, func(fl validator.FieldLevel) bool {
		return IsRemotePath(fl.Field().String())
	})
}

// IsNotBlank reports whether s contains anything besides whitespace.
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsRemotePath checks that p is usable as a Files.com path:
// no NUL bytes and no ".." segments.
func IsRemotePath(p string) bool {
	if strings.ContainsRune(p, 0) {
		return false
	}
	for seg := range strings.SplitSeq(p, "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}
