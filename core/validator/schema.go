package validator

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	errNotANumber     = errors.New("must be a number")
	errNotAnInteger   = errors.New("must be an integer")
	errNotSafeInteger = errors.New("must be a safe integer")
)

// maxInt64Float is 2^63, the first float64 above math.MaxInt64.
const maxInt64Float = float64(1 << 63)

type schemaKind int

const (
	kindInteger schemaKind = iota + 1
	kindString
)

// Result is the outcome of Schema.Validate. Error is nil on success and
// holds ValidationErrors otherwise. Value is the converted value on success
// and the original input on failure.
type Result struct {
	Error error
	Value any
}

// Schema validates a single dynamic value. Builder methods return copies,
// so package-level schemas such as ID can be extended safely.
type Schema struct {
	kind     schemaKind
	label    string
	required bool
	min      *int64
	minLen   int
	maxLen   int
}

var (
	// ID accepts a required integer >= 1.
	ID = Integer().Min(1).Required()

	// FileName accepts a required non-empty string.
	FileName = String().Required()
)

// Integer starts an integer schema. Integral floats and numeric strings are
// converted to int64.
func Integer() Schema {
	return Schema{kind: kindInteger, label: "value"}
}

// String starts a string schema. Empty strings are always rejected.
func String() Schema {
	return Schema{kind: kindString, label: "value"}
}

// Required rejects nil.
func (s Schema) Required() Schema {
	s.required = true
	return s
}

// Label sets the field name used in errors.
func (s Schema) Label(name string) Schema {
	s.label = name
	return s
}

// Min sets the lowest accepted integer.
func (s Schema) Min(n int64) Schema {
	s.min = &n
	return s
}

// MinLen sets the minimum string length in runes.
func (s Schema) MinLen(n int) Schema {
	s.minLen = n
	return s
}

// MaxLen sets the maximum string length in runes. Zero means unlimited.
func (s Schema) MaxLen(n int) Schema {
	s.maxLen = n
	return s
}

// Validate checks value against the schema.
func (s Schema) Validate(value any) Result {
	if isNil(value) {
		if s.required {
			return Result{Error: Apply(Required(s.label, nil)), Value: value}
		}
		return Result{Value: value}
	}

	switch s.kind {
	case kindInteger:
		return s.validateInteger(value)
	case kindString:
		return s.validateString(value)
	default:
		return Result{Value: value}
	}
}

func (s Schema) validateInteger(value any) Result {
	n, err := toInt64(value)
	if err != nil {
		return Result{Error: Apply(typeRule(s.label, err.Error(), "validation.integer")), Value: value}
	}

	var rules []Rule
	if s.min != nil {
		rules = append(rules, MinInt(s.label, n, *s.min))
	}
	if err := Apply(rules...); err != nil {
		return Result{Error: err, Value: value}
	}
	return Result{Value: n}
}

func (s Schema) validateString(value any) Result {
	str, ok := value.(string)
	if !ok {
		return Result{Error: Apply(typeRule(s.label, "must be a string", "validation.string")), Value: value}
	}

	rules := []Rule{{
		Check: func() bool { return str != "" },
		Error: ValidationError{
			Field:             s.label,
			Message:           "is not allowed to be empty",
			TranslationKey:    "validation.empty",
			TranslationValues: map[string]any{"field": s.label},
		},
	}}
	if s.minLen > 0 {
		rules = append(rules, MinLenString(s.label, str, s.minLen))
	}
	if s.maxLen > 0 {
		rules = append(rules, MaxLenString(s.label, str, s.maxLen))
	}
	if err := Apply(rules...); err != nil {
		return Result{Error: err, Value: value}
	}
	return Result{Value: str}
}

func typeRule(field, message, key string) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func toInt64(value any) (int64, error) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, errNotSafeInteger
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt64(rv.Float())
	case reflect.String:
		str := strings.TrimSpace(rv.String())
		if n, err := strconv.ParseInt(str, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return 0, errNotANumber
		}
		return floatToInt64(f)
	default:
		return 0, errNotANumber
	}
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotANumber
	}
	if f != math.Trunc(f) {
		return 0, errNotAnInteger
	}
	if f >= maxInt64Float || f < math.MinInt64 {
		return 0, errNotSafeInteger
	}
	return int64(f), nil
}
