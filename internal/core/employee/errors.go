package employee

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation     = errors.New("employee: validation failed")
	ErrMissingField   = errors.New("employee: missing field")
	ErrInvalidFormat  = errors.New("employee: invalid format")
	ErrOutOfRange     = errors.New("employee: value out of range")
	ErrImmutableField = errors.New("employee: employee id cannot be changed")
	ErrDuplicateKey   = errors.New("employee: employee id already exists")
	ErrNotFound       = errors.New("employee: not found")
)

// ViolationKind は入力違反の種別です。
type ViolationKind string

const (
	KindMissingField ViolationKind = "missing_field"
	KindFormat       ViolationKind = "format"
	KindRange        ViolationKind = "range"
)

func (k ViolationKind) sentinel() error {
	switch k {
	case KindMissingField:
		return ErrMissingField
	case KindFormat:
		return ErrInvalidFormat
	case KindRange:
		return ErrOutOfRange
	default:
		return nil
	}
}

// Violation はフィールド単位の入力違反です。
type Violation struct {
	Field   string
	Kind    ViolationKind
	Message string
}

// ValidationError は入力違反の集合を保持するエラーです。
// errors.Is で ErrValidation および含まれる種別の sentinel に一致します。
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is は errors.Is 用の実装です。
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	if e == nil {
		return false
	}
	for _, v := range e.Violations {
		if s := v.Kind.sentinel(); s != nil && s == target {
			return true
		}
	}
	return false
}

// HasKind は指定した種別の違反が含まれるかを返します。
func (e *ValidationError) HasKind(kind ViolationKind) bool {
	if e == nil {
		return false
	}
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}
