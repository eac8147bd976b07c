package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Job card number validation: state code, scheme block and a running
// serial, e.g. "UP-05-001-002/123".
var jobCardRegex = regexp.MustCompile(`^[A-Z]{2}-\d{2}-\d{3}-\d{3}/\d{1,6}$`)

func IsValidJobCardID(jobCardID string) bool {
	return jobCardRegex.MatchString(jobCardID)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// ValidateDateRange parses a start/end pair and reports field errors the
// way DTO Validate methods expect them.
func ValidateDateRange(startDate, endDate string) (time.Time, time.Time, ValidationErrors) {
	var errs ValidationErrors

	start, okStart := IsValidDate(startDate)
	if !okStart {
		errs = append(errs, ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := IsValidDate(endDate)
	if !okEnd {
		errs = append(errs, ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && start.After(end) {
		errs = append(errs, ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	return start, end, errs
}
