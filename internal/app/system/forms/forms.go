// internal/app/system/forms/forms.go

// Package forms validates the public submission forms before anything
// touches the store. Each form kind lists its required fields; email
// fields additionally get a shape check.
package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRe is intentionally loose: something@something.something. The
// goal is catching typos, not RFC 5322 conformance.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// Field is one submission form field to validate.
type Field struct {
	Name  string
	Value string
	Email bool // also check email shape when non-empty requirement passes
}

// Required validates that every field is non-blank (and well-shaped
// for email fields). The first failure wins, mirroring how the
// submission modals surface one error at a time.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return fmt.Errorf("%s is required", f.Name)
		}
		if f.Email && !ValidEmail(f.Value) {
			return fmt.Errorf("%s must be a valid email address", f.Name)
		}
	}
	return nil
}
