package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	app_errors "ui-architect/backend/internal/errors"
	"ui-architect/backend/internal/model"

	"github.com/go-playground/validator/v10"
)

// A single validator instance shared by all handlers. It caches struct
// metadata, so it is built once.

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance initializes the validator on first use and registers the
// custom tags used by request DTOs.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// element_kind accepts only the identifiers of the element catalogue.
		_ = validate.RegisterValidation("element_kind", func(fl validator.FieldLevel) bool {
			return model.ElementKind(fl.Field().String()).Valid()
		})
	})
	return validate
}

// validateRequest checks payload against its `validate` struct tags. A
// failure is returned wrapped in app_errors.ErrValidation with one line per
// offending field.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		// e.g. "Field 'SelectedElements[0]' failed on the 'element_kind' tag"
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}
