// Package sanitizer normalizes user supplied strings before they are
// validated or sent to external systems.
//
// Fields opt in with a `sanitize` tag:
//
//	type Message struct {
//		To      string `sanitize:"email"`
//		Subject string `sanitize:"header,max:200"`
//	}
//
//	_ = sanitizer.SanitizeStruct(&msg)
//
// Built-in names: trim, trim_lower, single_line, no_spaces, no_control,
// email and header. RegisterSanitizer adds more.
package sanitizer
