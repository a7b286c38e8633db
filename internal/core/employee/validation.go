package employee

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	employeeIDPattern  = regexp.MustCompile(`^[0-9]{4}[A-Z]{2}$`)
	phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidEmployeeID は社員 ID が 4 桁の数字 + 英大文字 2 文字の形式かを返します。
func ValidEmployeeID(id string) bool {
	return employeeIDPattern.MatchString(id)
}

// record は検証対象の社員レコードです。フィールドの宣言順が違反の並び順になります。
type record struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	EmployeeID    string `json:"employeeId" validate:"required,employee_id"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,phone10"`
	Department    string `json:"department" validate:"required"`
	DateOfJoining string `json:"dateOfJoining" validate:"required,calendar_date,not_future"`
	Role          string `json:"role" validate:"required"`
}

var violationMessages = map[string]string{
	"required":      "is required",
	"employee_id":   "must be 4 digits followed by 2 uppercase letters",
	"email":         "must be a valid email address",
	"phone10":       "must be exactly 10 digits",
	"calendar_date": "must be a date in YYYY-MM-DD format",
	"not_future":    "must not be in the future",
}

// Validator は社員レコードの入力規則を検証します。副作用はなく、現在日付は Clock から取得します。
type Validator struct {
	validate *validator.Validate
	clock    Clock
}

// NewValidator は Validator を生成します。
func NewValidator(clock Clock) *Validator {
	if clock == nil {
		clock = realClock{}
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "employee_id", func(fl validator.FieldLevel) bool {
		return employeeIDPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
		return phoneNumberPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "calendar_date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "not_future", func(fl validator.FieldLevel) bool {
		d, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.After(ToDate(clock.Now()))
	})

	return &Validator{validate: v, clock: clock}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateCreate はすべてのフィールドを検証します。
func (v *Validator) ValidateCreate(in CreateEmployeeInput) error {
	return v.check(record{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		EmployeeID:    in.EmployeeID,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Department:    in.Department,
		DateOfJoining: in.DateOfJoining,
		Role:          in.Role,
	}, nil)
}

// ValidateUpdate はパッチに含まれるフィールドだけを検証します。
func (v *Validator) ValidateUpdate(in UpdateEmployeeInput) error {
	var (
		rec     record
		present = make(map[string]struct{}, 7)
	)

	set := func(field string, dst *string, src *string) {
		if src == nil {
			return
		}
		*dst = *src
		present[field] = struct{}{}
	}
	set("firstName", &rec.FirstName, in.FirstName)
	set("lastName", &rec.LastName, in.LastName)
	set("email", &rec.Email, in.Email)
	set("phoneNumber", &rec.PhoneNumber, in.PhoneNumber)
	set("department", &rec.Department, in.Department)
	set("dateOfJoining", &rec.DateOfJoining, in.DateOfJoining)
	set("role", &rec.Role, in.Role)

	if len(present) == 0 {
		return &ValidationError{Violations: []Violation{{
			Field:   "body",
			Kind:    KindMissingField,
			Message: "at least one updatable field is required",
		}}}
	}

	return v.check(rec, present)
}

func (v *Validator) check(rec record, only map[string]struct{}) error {
	err := v.validate.Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if only != nil {
			if _, ok := only[fe.Field()]; !ok {
				continue
			}
		}
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Kind:    kindForTag(fe.Tag()),
			Message: violationMessages[fe.Tag()],
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func kindForTag(tag string) ViolationKind {
	switch tag {
	case "required":
		return KindMissingField
	case "not_future":
		return KindRange
	default:
		return KindFormat
	}
}

// ParseDate は YYYY-MM-DD 形式の日付を UTC で解釈します。
func ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
}
