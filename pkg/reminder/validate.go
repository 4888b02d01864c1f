package reminder

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation messages shown verbatim in the form's error line.
const (
	MsgFieldsRequired = "All fields must be filled"
	MsgBadTime        = "Invalid time format. Use HH:MM (e.g., 06:59)"
)

// timePattern accepts exactly the zero-padded 24-hour HH:MM strings.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTime reports whether s is a zero-padded 24-hour HH:MM time.
// "06:59" is valid, "6:59" is not.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidateDraft checks an uncommitted form draft before it touches the
// store: all three fields must be non-empty and the time must pass
// ValidTime.
func ValidateDraft(title, description, timeOfDay string) error {
	for _, field := range []string{title, description, timeOfDay} {
		if err := validation.Validate(field, validation.Required); err != nil {
			return errors.New(MsgFieldsRequired)
		}
	}
	if err := validation.Validate(timeOfDay, validation.Match(timePattern)); err != nil {
		return errors.New(MsgBadTime)
	}
	return nil
}
