package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Username":       "Username",
	"Bio":            "Bio",
	"PortfolioLink":  "Portfolio link",
	"ResumeMode":     "Resume type",
	"ResumeFile":     "Resume file",
	"ResumeLink":     "Resume link",
	"ProfilePicture": "Profile picture",
	"Email":          "Email",
	"LinkedIn":       "LinkedIn profile",
	"LeetCode":       "LeetCode profile",
	"CodeChef":       "CodeChef profile",
	"GeeksforGeeks":  "GeeksforGeeks profile",

	// request bodies
	"Value": "Value",
	"Mode":  "Mode",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "required_trim":
		return fmt.Sprintf("%s: is required", label)

	case "trimmed_len":
		lo, hi, _ := strings.Cut(param, ":")
		return fmt.Sprintf("%s: must be between %s and %s characters", label, lo, hi)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "abs_url", "url":
		return fmt.Sprintf("%s: is not a valid URL", label)

	case "loose_email", "email":
		return fmt.Sprintf("%s: is not a valid email address", label)

	case "resume_active":
		return fmt.Sprintf("%s: exactly one resume representation must be set", label)

	case "picture_present":
		return fmt.Sprintf("%s: a picture must be recorded", label)

	case "picture_file":
		return fmt.Sprintf("%s: must be a JPG/JPEG image of at most 2MB", label)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
