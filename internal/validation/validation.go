// Package validation wraps a single go-playground validator instance used by
// every schema shape in the catalog.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	app_errors "model-catalog/internal/errors"

	"github.com/go-playground/validator/v10"
)

// The validator caches struct metadata, so one instance is shared by every
// schema shape instead of being rebuilt per call.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// getInstance uses sync.Once to safely initialize and return the validator singleton.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names so messages line up with the wire contract.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct checks payload against its `validate` tags. A failure is returned as a
// wrapped app_errors.ErrValidation listing every offending field.
func Struct(payload interface{}) error {
	err := getInstance().Struct(payload)
	if err == nil {
		return nil
	}

	// Anything other than ValidationErrors means the payload could not be
	// inspected at all, for example a nil pointer.
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	// Example output: "Field 'top_p' failed on the 'lte=1' tag".
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), describeTag(fieldErr)))
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(messages, "; "))
}

// describeTag renders the failed rule with its parameter, e.g. "gte=0".
func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
