package handler

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

const dateLayout = "2006-01-02"

var tagNameOnce sync.Once

// SetupValidator makes binding errors report JSON field names instead of Go
// struct field names. Safe to call more than once.
func SetupValidator() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BindingError converts a ShouldBindJSON failure into a validation error,
// reporting the first missing field as "<field> is required".
func BindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperrors.NewValidationf("%s is required", fe.Field())
		}
		return apperrors.NewValidationf("%s is invalid", fe.Field())
	}
	return apperrors.NewValidation("invalid request body")
}

// ParseDate parses a YYYY-MM-DD date field, reporting failures as validation
// errors rather than letting them surface as server errors.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationf("%s must be a valid date in YYYY-MM-DD format", field)
	}
	return t, nil
}
