package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	app_errors "imagevault/internal/errors"

	"github.com/go-playground/validator/v10"
)

// This file holds the request body validation helper shared by the account and
// library handlers. A single validator instance is built lazily and reused, since
// it caches struct metadata across calls.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// getInstance uses sync.Once to initialize and return the validator singleton.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Report JSON field names rather than Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// validateRequest checks a payload struct against the rules in its field tags
// (e.g. `validate:"required,min=3,max=80"`). A failure is returned as a wrapped
// app_errors.ErrValidation whose message names every offending field, which
// respondWithError passes through to the client as a 400.
func validateRequest(payload interface{}) error {
	err := getInstance().Struct(payload)
	if err == nil {
		return nil
	}

	// Anything other than validator.ValidationErrors means the payload itself
	// could not be inspected, e.g. a non-struct was passed in.
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	// One entry per failing field, using the JSON name of the field.
	var errorMessages []string
	for _, fieldErr := range validationErrors {
		// Example output: "field 'username' failed on the 'min' tag"
		errorMessages = append(errorMessages, fmt.Sprintf("field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}
