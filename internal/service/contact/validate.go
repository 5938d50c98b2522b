package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length limits, matching the stored schema.
const (
	MaxNameLength    = 50
	MaxEmailLength   = 50
	MaxSubjectLength = 100
	MaxMessageLength = 500
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports a field constraint violation. It is recoverable:
// the message is safe to show to the submitter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// normalized returns a copy of p with all four text fields trimmed.
func (p SubmitParams) normalized() SubmitParams {
	return SubmitParams{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.TrimSpace(p.Email),
		Subject: strings.TrimSpace(p.Subject),
		Message: strings.TrimSpace(p.Message),
	}
}

// validateSubmission checks presence on the raw input first, then applies
// the per-field constraints to the trimmed values. The presence check runs
// before anything else so that an incomplete form never reaches storage.
func validateSubmission(p SubmitParams) error {
	if p.Name == "" || p.Email == "" || p.Subject == "" || p.Message == "" {
		return ErrFieldsRequired
	}

	n := p.normalized()
	if err := validateName(n.Name); err != nil {
		return err
	}
	if err := validateEmail(n.Email); err != nil {
		return err
	}
	if err := validateSubject(n.Subject); err != nil {
		return err
	}
	return validateMessage(n.Message)
}

func validateName(name string) error {
	return validateLength("name", "Name", name, MaxNameLength)
}

func validateEmail(email string) error {
	if err := validateLength("email", "Email", email, MaxEmailLength); err != nil {
		return err
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	return nil
}

func validateSubject(subject string) error {
	return validateLength("subject", "Subject", subject, MaxSubjectLength)
}

func validateMessage(message string) error {
	return validateLength("message", "Message", message, MaxMessageLength)
}

func validateLength(field, label, value string, max int) error {
	if value == "" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", label)}
	}
	// Limits are in characters, not bytes; multi-byte input counts per rune.
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be less than %d characters", label, max),
		}
	}
	return nil
}
