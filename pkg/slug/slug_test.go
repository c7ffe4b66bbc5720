package slug_test

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/toolbox/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello, World!", "hello-world"},
		{"already slug", "my-file", "my-file"},
		{"diacritics", "Café & Restaurant", "cafe-restaurant"},
		{"german", "Straße in München", "strasse-in-munchen"},
		{"french", "naïve résumé", "naive-resume"},
		{"nordic", "Ærø Ø", "aero-o"},
		{"cyrillic", "Москва", "moskva"},
		{"cyrillic keeps yo", "Ёлка", "yolka"},
		{"greek with tonos", "Ελλάδα", "ellada"},
		{"greek digraphs", "Φως και Ψυχή", "fos-kai-psychi"},
		{"cjk dropped", "北京", ""},
		{"empty", "", ""},
		{"only symbols", "!!!---???", ""},
		{"trim separators", "  --Leading and trailing--  ", "leading-and-trailing"},
		{"dots and underscores", "my_photo.final", "my-photo-final"},
		{"digits kept", "IMG 2024 01", "img-2024-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.input))
		})
	}
}

func TestMake_Options(t *testing.T) {
	t.Parallel()

	t.Run("separator and case", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("Product Name", slug.Separator("_"), slug.Lowercase(false))
		assert.Equal(t, "Product_Name", got)
	})

	t.Run("strip chars", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "price-100-00", slug.Make("Price: $100.00", slug.StripChars("$:")))
	})

	t.Run("custom replace prefers longest key", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("C++ & Go @ GitHub", slug.CustomReplace(map[string]string{
			"&":   "and",
			"@":   "at",
			"C++": "cpp",
			"C":   "see",
		}))
		assert.Equal(t, "cpp-and-go-at-github", got)
	})

	t.Run("max length", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("Very long title that exceeds limits", slug.MaxLength(15))
		assert.Equal(t, "very-long-title", got)
	})

	t.Run("suffix", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("Article Title", slug.WithSuffix(6))
		assert.Regexp(t, regexp.MustCompile(`^article-title-[a-z0-9]{6}$`), got)
	})

	t.Run("suffix within max length", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("Long Article Title", slug.MaxLength(20), slug.WithSuffix(6))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 20)
		assert.Regexp(t, regexp.MustCompile(`-[a-z0-9]{6}$`), got)
	})

	t.Run("suffix only for empty input", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{4}$`), slug.Make("???", slug.WithSuffix(4)))
	})
}
