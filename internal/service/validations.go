package service

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// 3 to 20 ASCII letters, digits or underscores
		validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	})
}

// validateStruct wraps field errors of v into ErrValidation.
func validateStruct(v any) error {
	InitValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrs := make([]error, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fieldErrs = append(fieldErrs, fieldErr)
		}
		return fmt.Errorf("%w: %w", errorvalues.ErrValidation, errors.Join(fieldErrs...))
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// ValidateUsername checks the username format without touching storage.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username must be 3-20 characters of letters, digits or underscores", errorvalues.ErrValidation)
	}
	return nil
}
