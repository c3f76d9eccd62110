package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// one-or-more non-space-non-@, "@", same, ".", same; "space" includes
	// Unicode separators, not only ASCII \s
	emailRegex = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*$`)
)

// Schemes that only make sense with a host component.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// File is the minimal view of an uploaded file the file validators need.
type File interface {
	MIMEType() string
	ByteSize() int64
}

// IsRequired reports whether value has any non-whitespace content.
func IsRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidateLength reports whether the trimmed length of value lies in [min, max].
// Length is counted in code points; an empty value has length 0.
func ValidateLength(value string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	return n >= min && n <= max
}

// IsValidURL reports whether value parses as an absolute URL.
func IsValidURL(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if u.Scheme == "" || !schemeRegex.MatchString(u.Scheme) {
		return false
	}
	if hostSchemes[u.Scheme] {
		if u.Host == "" {
			// slashes after a special scheme are optional: "http:example.com"
			rest := strings.TrimLeft(value[len(u.Scheme)+1:], `/\`)
			if u, err = url.Parse(u.Scheme + "://" + rest); err != nil {
				return false
			}
		}
		if u.Hostname() == "" {
			return false
		}
	}
	if u.Host != "" && strings.ContainsAny(u.Host, " \t\n") {
		return false
	}
	return true
}

// IsValidEmail applies an intentionally permissive shape check.
func IsValidEmail(value string) bool {
	if value == "" {
		return false
	}
	return emailRegex.MatchString(value)
}

// IsValidFileType reports whether the file's declared MIME type is allowed.
func IsValidFileType(file File, allowedTypes []string) bool {
	if absent(file) {
		return false
	}
	t := file.MIMEType()
	for _, allowed := range allowedTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// IsValidFileSize reports whether the file is no larger than maxBytes.
func IsValidFileSize(file File, maxBytes int64) bool {
	if absent(file) {
		return false
	}
	return file.ByteSize() <= maxBytes
}

// absent also catches a typed nil pointer wrapped in the interface.
func absent(file File) bool {
	if file == nil {
		return true
	}
	v := reflect.ValueOf(file)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// RegisterValidators registers the profile validators on a validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("required_trim", RequiredTrim)
	_ = v.RegisterValidation("trimmed_len", TrimmedLen)
	_ = v.RegisterValidation("abs_url", AbsURL)
	_ = v.RegisterValidation("loose_email", LooseEmail)
}

// RequiredTrim fails on empty or whitespace-only strings
func RequiredTrim(fl validator.FieldLevel) bool {
	return IsRequired(fl.Field().String())
}

// TrimmedLen checks the trimmed length against a "min:max" param
func TrimmedLen(fl validator.FieldLevel) bool {
	lo, hi, ok := parseRange(fl.Param())
	if !ok {
		return false
	}
	return ValidateLength(fl.Field().String(), lo, hi)
}

// AbsURL validates an absolute URL. Empty values pass, use required_trim if needed
func AbsURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsValidURL(val)
}

// LooseEmail validates the permissive email shape. Empty values pass
func LooseEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsValidEmail(val)
}

func parseRange(param string) (int, int, bool) {
	lo, hi, found := strings.Cut(param, ":")
	if !found {
		return 0, 0, false
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.Atoi(hi)
	if err != nil || min > max {
		return 0, 0, false
	}
	return min, max, true
}
