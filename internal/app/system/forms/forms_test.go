// internal/app/system/forms/forms_test.go
package forms_test

import (
	"testing"

	"github.com/syneroa/platform/internal/app/system/forms"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.edu",
		" padded@example.com ",
	}
	for _, e := range valid {
		if !forms.ValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"@example.com",
		"two words@example.com",
	}
	for _, e := range invalid {
		if forms.ValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestRequired_AllPresent(t *testing.T) {
	err := forms.Required(
		forms.Field{Name: "title", Value: "An Idea"},
		forms.Field{Name: "email", Value: "a@example.com", Email: true},
	)
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestRequired_BlankField(t *testing.T) {
	err := forms.Required(
		forms.Field{Name: "title", Value: "   "},
		forms.Field{Name: "email", Value: "a@example.com", Email: true},
	)
	if err == nil || err.Error() != "title is required" {
		t.Errorf("expected 'title is required', got %v", err)
	}
}

func TestRequired_BadEmail(t *testing.T) {
	err := forms.Required(
		forms.Field{Name: "email", Value: "not-an-email", Email: true},
	)
	if err == nil || err.Error() != "email must be a valid email address" {
		t.Errorf("expected email shape error, got %v", err)
	}
}

func TestRequired_FirstFailureWins(t *testing.T) {
	err := forms.Required(
		forms.Field{Name: "firstName", Value: ""},
		forms.Field{Name: "email", Value: "bad", Email: true},
	)
	if err == nil || err.Error() != "firstName is required" {
		t.Errorf("expected first failure, got %v", err)
	}
}
