// Package validator provides rule-based validation with three entry points.
//
// Programmatic rules are plain values combined with Apply:
//
//	err := validator.Apply(
//		validator.Required("name", name),
//		validator.MaxLenString("name", name, 100),
//		validator.ValidFileName("name", name),
//	)
//
// Struct tags use semicolon separated rules with colon parameters:
//
//	type Upload struct {
//		Name string `validate:"required;max:255;filename"`
//		Dir  string `validate:"required"`
//	}
//	err := validator.ValidateStruct(&upload)
//
// Schemas validate a single dynamic value and never fail loudly; the result
// carries the error and the (possibly converted) value:
//
//	res := validator.ID.Validate("42")
//	if res.Error != nil { ... }
//	id := res.Value.(int64) // 42
//
// All failures are ValidationErrors, which implement error and carry field
// names, messages and translation keys for each failed rule.
package validator
