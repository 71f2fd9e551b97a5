package setup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FieldError describes one invalid field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every invalid field of a record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "invalid setup: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CheckDriverName applies the configurator's name rule: at least
// MinDriverNameLen characters and starting with a letter.
func CheckDriverName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if utf8.RuneCountInString(name) < MinDriverNameLen {
		return fmt.Errorf("name must be at least %d characters long", MinDriverNameLen)
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(first) {
		return errors.New("first character must be a letter")
	}
	return nil
}

// Validate checks the record against the catalog and the numeric bounds.
// It returns a *ValidationError listing every problem, or nil.
func (r Record) Validate() error {
	var errs []FieldError

	if err := CheckDriverName(r.Driver.Name); err != nil {
		errs = append(errs, FieldError{Field: FieldDriverName, Message: err.Error()})
	}
	if r.Driver.Age < MinDriverAge || r.Driver.Age > MaxDriverAge {
		errs = append(errs, FieldError{
			Field:   FieldDriverAge,
			Message: fmt.Sprintf("must be %d-%d, got %d", MinDriverAge, MaxDriverAge, r.Driver.Age),
		})
	}
	if r.Wheels.TirePressure < MinTirePressure || r.Wheels.TirePressure > MaxTirePressure {
		errs = append(errs, FieldError{
			Field:   FieldTirePressure,
			Message: fmt.Sprintf("must be %d-%d PSI, got %d", MinTirePressure, MaxTirePressure, r.Wheels.TirePressure),
		})
	}

	for _, s := range Sections {
		for _, f := range s.Fields {
			v, _ := r.Get(f.Key)
			if !f.Has(v) {
				errs = append(errs, FieldError{
					Field:   f.Key,
					Message: fmt.Sprintf("%q is not one of %s", v, strings.Join(f.Labels(), ", ")),
				})
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}
