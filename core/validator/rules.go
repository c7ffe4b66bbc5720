package validator

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Required fails for nil, blank strings, empty collections and zero numbers.
func Required(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return !isEmpty(reflect.ValueOf(value))
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func isEmpty(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// MinLenString requires at least min runes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

// MaxLenString allows at most max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail checks a plain addr-spec; display names are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidAlphanumeric allows Unicode letters and digits only.
func ValidAlphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must contain only letters and digits",
			TranslationKey:    "validation.alphanumeric",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// InList requires value to be one of allowed.
func InList(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			TranslationKey:    "validation.in",
			TranslationValues: map[string]any{"field": field, "values": allowed},
		},
	}
}

// MatchesRegex requires value to match pattern. An invalid pattern always fails.
func MatchesRegex(field, value, pattern, description string) Rule {
	re, err := regexp.Compile(pattern)
	return Rule{
		Check: func() bool {
			return err == nil && re.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must match %s", description),
			TranslationKey:    "validation.regex",
			TranslationValues: map[string]any{"field": field, "pattern": description},
		},
	}
}

// MinInt requires value >= min.
func MinInt(field string, value, min int64) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d", min),
			TranslationKey:    "validation.min",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

// PositiveInt requires value > 0.
func PositiveInt(field string, value int64) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be positive",
			TranslationKey:    "validation.positive",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// ValidFileName rejects empty names, path separators, "." and "..", and
// control characters.
func ValidFileName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" || value == "." || value == ".." {
				return false
			}
			if strings.ContainsAny(value, `/\`) || value != filepath.Base(value) {
				return false
			}
			for _, r := range value {
				if unicode.IsControl(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a plain file name",
			TranslationKey:    "validation.filename",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// AbsolutePath requires an absolute filesystem path.
func AbsolutePath(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return filepath.IsAbs(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be an absolute path",
			TranslationKey:    "validation.absolute_path",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
