// Package hasher produces salted digests and bcrypt password hashes.
//
// SecuredHash prepends a fresh cryptographically random seed to the data
// before digesting it, so two calls with the same input never return the
// same hex string:
//
//	h, err := hasher.New("sha1")
//	a, _ := h.SecuredHash(5, "S4lt") // 40 hex characters
//	b, _ := h.SecuredHash(5, "S4lt") // different from a
//
// The seed is not returned, which makes the output suitable for one-off
// tokens and identifiers, not for later verification. Use HashPassword and
// ComparePassword for credentials.
package hasher
