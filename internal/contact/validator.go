package contact

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names as they appear on the form.
const (
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldMessage  = "message"
)

// emailShape matches local@domain.tld
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission holds the named fields extracted from the form.
type Submission struct {
	FullName string `validate:"required" form:"full_name"`
	Email    string `validate:"required,emailshape" form:"email"`
	Phone    string `form:"phone"`
	Message  string `form:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		FullName: strings.TrimSpace(s.FullName),
		Email:    strings.TrimSpace(s.Email),
		Phone:    strings.TrimSpace(s.Phone),
		Message:  strings.TrimSpace(s.Message),
	}
}

// Validator checks submissions against the form's rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the emailshape rule registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return ValidEmailShape(fl.Field().String())
	}); err != nil {
		// Only fails on an empty tag or nil func
		panic(fmt.Sprintf("registering emailshape: %v", err))
	}
	return &Validator{validate: v}
}

// ValidEmailShape reports whether s looks like local@domain.tld.
func ValidEmailShape(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}

// Validate returns nil for an acceptable submission, or a *ValidationError
// for the first broken rule. Missing required fields are reported before a
// malformed email.
func (v *Validator) Validate(s Submission) error {
	err := v.validate.Struct(s.Trimmed())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating submission: %w", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return NewValidationError(fe.Field(), ReasonMissing)
		}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "emailshape" {
			return NewValidationError(fe.Field(), ReasonEmailShape)
		}
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Reason: ReasonMissing, Message: fe.Error()}
}
