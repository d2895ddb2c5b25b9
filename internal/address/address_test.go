package address

import (
	"testing"

	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/types"
)

func alexAddress() types.Address {
	return types.Address{
		FullName:  "Alex Rivera",
		Phone:     "+1 (555) 123-4567",
		Street:    "742 Evergreen Terrace",
		Apartment: "Apt 3B",
		City:      "Los Angeles",
		State:     "CA",
		Zip:       "90001",
		Country:   "United States",
	}
}

func TestValidateTrimsFields(t *testing.T) {
	in := alexAddress()
	in.FullName = "  Alex Rivera  "
	in.Apartment = "   "

	out, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FullName != "Alex Rivera" {
		t.Fatalf("expected trimmed name, got %q", out.FullName)
	}
	if out.Apartment != "" {
		t.Fatalf("expected blank apartment to be trimmed away, got %q", out.Apartment)
	}
}

func TestValidateApartmentOptional(t *testing.T) {
	in := alexAddress()
	in.Apartment = ""
	if _, err := Validate(in); err != nil {
		t.Fatalf("apartment should be optional: %v", err)
	}
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	in := types.Address{FullName: "Alex", Street: "   ", City: "LA", Country: "US"}

	_, err := Validate(in)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "Phone number is required" {
		t.Fatalf("expected first missing field message, got %q", typed.Message())
	}

	fields, ok := typed.Details().(pkgerrors.FieldErrors)
	if !ok {
		t.Fatalf("expected field errors, got %T", typed.Details())
	}
	want := map[string]string{
		"phone":  "Phone number is required",
		"street": "Street address is required",
		"state":  "State is required",
		"zip":    "ZIP code is required",
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d field errors, got %v", len(want), fields)
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, fields[field])
		}
	}
}
