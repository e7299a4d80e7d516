package handlers

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the accepted date_of_joining formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// newValidator builds the validator shared by the handlers, with the
// custom isodate tag registered.
func newValidator() *validator.Validate {
	v := validator.New()
	// The return value is always nil when the second argument is a valid
	// function, so it is safe to ignore here.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// parseDate parses a date_of_joining value in RFC 3339 or date-only form.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected ISO 8601", value)
}

// validationErrorMap flattens validator errors into a field -> message map.
// Every violated rule is reported, not just the first.
func validationErrorMap(err error) map[string]string {
	errorMessages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorMessages["request"] = err.Error()
		return errorMessages
	}
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return errorMessages
}
