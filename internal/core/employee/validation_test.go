package employee

import (
	"errors"
	"testing"
	"time"
)

func TestValidator_EmployeeIDFormat(t *testing.T) {
	t.Parallel()

	v := NewValidator(&stubClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})

	cases := map[string]bool{
		"1234AB":  true,
		"0000ZZ":  true,
		"12AB":    false,
		"1234ab":  false,
		"12345AB": false,
		"ABCD12":  false,
	}

	for id, ok := range cases {
		in := validInput()
		in.EmployeeID = id
		err := v.ValidateCreate(in)
		if ok && err != nil {
			t.Errorf("%s: expected valid, got %v", id, err)
		}
		if !ok && !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("%s: expected ErrInvalidFormat, got %v", id, err)
		}
	}
}

func TestValidator_PhoneNumber(t *testing.T) {
	t.Parallel()

	v := NewValidator(&stubClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})

	for _, phone := range []string{"555123456", "55512345678", "+555123456", "555-123-45"} {
		in := validInput()
		in.PhoneNumber = phone
		if err := v.ValidateCreate(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("%q: expected ErrInvalidFormat, got %v", phone, err)
		}
	}
}

func TestValidator_DateOfJoiningUsesClock(t *testing.T) {
	t.Parallel()

	clk := &stubClock{now: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)}
	v := NewValidator(clk)

	in := validInput()
	in.DateOfJoining = "2024-02-29"
	if err := v.ValidateCreate(in); err != nil {
		t.Fatalf("same-day joining should be valid, got %v", err)
	}

	in.DateOfJoining = "2024-03-01"
	err := v.ValidateCreate(in)
	var verr *ValidationError
	if !errors.As(err, &verr) || !verr.HasKind(KindRange) {
		t.Fatalf("expected range violation, got %v", err)
	}

	in.DateOfJoining = "2023-02-30"
	if err := v.ValidateCreate(in); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for impossible date, got %v", err)
	}
}

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Violations: []Violation{{Field: "email", Kind: KindFormat}}}
	if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected validation and format sentinels to match")
	}
	if errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected sentinel match")
	}
}
