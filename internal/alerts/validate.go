package alerts

import (
	"strings"
	"unicode/utf8"

	"naukri/matcher-service/internal/model"
)

// MinContactLength is the shortest accepted phone number or email.
const MinContactLength = 5

// Field names used in FieldError.
const (
	FieldContact    = "contact"
	FieldCategories = "categories"
	FieldChannels   = "channels"
)

// FieldError is a user-facing message attached to one preference field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult lists every failing field. Valid is true when Errors is
// empty.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Has reports whether field failed validation.
func (r ValidationResult) Has(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// ValidationError carries the field errors of a rejected subscription.
type ValidationError struct{ Errors []FieldError }

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, " ")
}

// Validate checks prefs and reports every failing field. It never panics and
// does not modify prefs.
func Validate(prefs model.AlertPreferences) ValidationResult {
	var errs []FieldError
	if utf8.RuneCountInString(prefs.Contact) < MinContactLength {
		errs = append(errs, FieldError{FieldContact, "Please enter a valid Phone Number or Email."})
	}
	if len(prefs.Categories) == 0 {
		errs = append(errs, FieldError{FieldCategories, "Select at least one job category."})
	}
	if len(prefs.Channels) == 0 {
		errs = append(errs, FieldError{FieldChannels, "Select a notification channel (WhatsApp/Telegram)."})
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
