package slug

type config struct {
	separator  string
	maxLength  int
	lowercase  bool
	stripChars string
	replace    map[string]string
	suffixLen  int
}

func defaultConfig() config {
	return config{
		separator: "-",
		lowercase: true,
	}
}

// Option configures Make.
type Option func(*config)

// Separator sets the string placed between words. Defaults to "-".
func Separator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// MaxLength limits the slug to n runes, suffix included. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxLength = n
		}
	}
}

// Lowercase toggles lowercasing. Enabled by default.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars removes every listed character before slugifying.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace substitutes whole substrings before slugifying.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.replace = replacements
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of n characters.
func WithSuffix(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.suffixLen = n
		}
	}
}
