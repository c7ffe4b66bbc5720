package validator_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(
		validator.Required("name", "photo"),
		validator.MinLenString("name", "photo", 3),
		validator.MaxLenString("name", "photo", 10),
		validator.ValidFileName("name", "photo.png"),
	))

	err := validator.Apply(
		validator.Required("name", ""),
		validator.ValidEmail("email", "nope"),
		validator.PositiveInt("id", 0),
	)
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"name", "email", "id"}, errs.Fields())
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("other"))
	assert.Contains(t, err.Error(), "email: must be a valid email address")
}

func TestValidFileName(t *testing.T) {
	t.Parallel()

	valid := []string{"a.txt", "photo", ".env", "my file.png"}
	invalid := []string{"", ".", "..", "dir/a.txt", `dir\a.txt`, "bad\x00name"}

	for _, name := range valid {
		assert.NoError(t, validator.Apply(validator.ValidFileName("f", name)), name)
	}
	for _, name := range invalid {
		assert.Error(t, validator.Apply(validator.ValidFileName("f", name)), name)
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.InList("mode", "tls", []string{"tls", "plain"})))
	assert.Error(t, validator.Apply(validator.InList("mode", "ssl", []string{"tls", "plain"})))
	assert.NoError(t, validator.Apply(validator.MatchesRegex("code", "ab12", `^[a-z0-9]+$`, "code")))
	assert.Error(t, validator.Apply(validator.MatchesRegex("code", "x", `[`, "broken")))
	assert.NoError(t, validator.Apply(validator.ValidAlphanumeric("u", "abc123")))
	assert.Error(t, validator.Apply(validator.ValidAlphanumeric("u", "abc-123")))
	assert.NoError(t, validator.Apply(validator.MinInt("n", 3, 3)))
	assert.Error(t, validator.Apply(validator.AbsolutePath("dir", "relative/dir")))
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type Nested struct {
		Dir string `validate:"required;abspath"`
	}
	type Upload struct {
		Name    string `validate:"required;max:10;filename"`
		Mode    string `validate:"in:tls,plain"`
		Count   int    `validate:"positive"`
		Ignored string `validate:"-"`
		Nested  Nested
		Ptr     *string `validate:"required"`
		private string
	}

	name := "x"
	valid := Upload{Name: "a.txt", Mode: "tls", Count: 1, Nested: Nested{Dir: "/srv"}, Ptr: &name}
	assert.NoError(t, validator.ValidateStruct(&valid))

	invalid := Upload{Name: "far/too/long.txt", Mode: "ssl", Nested: Nested{Dir: "rel"}}
	err := validator.ValidateStruct(&invalid)
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	for _, field := range []string{"Name", "Mode", "Count", "Nested.Dir", "Ptr"} {
		assert.True(t, errs.Has(field), field)
	}
	assert.False(t, errs.Has("Ignored"))
}

func TestValidateStruct_NotPointer(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, validator.ValidateStruct(struct{}{}), validator.ErrNotStructPointer)
	var nilPtr *struct{}
	assert.ErrorIs(t, validator.ValidateStruct(nilPtr), validator.ErrNotStructPointer)
	n := 1
	assert.ErrorIs(t, validator.ValidateStruct(&n), validator.ErrNotStructPointer)
}

func TestRegisterValidator(t *testing.T) {
	t.Parallel()

	validator.RegisterValidator("even_test", func(field string, value reflect.Value, _ []string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return value.Int()%2 == 0 },
			Error: validator.ValidationError{Field: field, Message: "must be even"},
		}
	})

	type S struct {
		N int `validate:"even_test"`
	}

	assert.NoError(t, validator.ValidateStruct(&S{N: 2}))
	err := validator.ValidateStruct(&S{N: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrValidation))
}
