// Package form は社員登録・編集フォームの状態遷移を扱います。
// State は不変値で、Reduce が新しい State を返します。
package form

import (
	"strings"

	"github.com/ogurasousui/employee-records/internal/core/employee"
)

// フィールド名は HTTP API の JSON キーと同じです。
const (
	FieldFirstName     = "firstName"
	FieldLastName      = "lastName"
	FieldEmployeeID    = "employeeId"
	FieldEmail         = "email"
	FieldPhoneNumber   = "phoneNumber"
	FieldDepartment    = "department"
	FieldDateOfJoining = "dateOfJoining"
	FieldRole          = "role"
)

// MsgEmployeeIDFormat は社員 ID の入力中チェックで表示するメッセージです。
const MsgEmployeeIDFormat = "Format: 4 digits, 2 letters"

// Mode はフォームが新規登録か既存社員の編集かを表します。
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// Values はフォームの入力値です。
type Values struct {
	FirstName     string
	LastName      string
	EmployeeID    string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining string
	Role          string
}

func (v Values) with(field, value string) (Values, bool) {
	switch field {
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldEmployeeID:
		v.EmployeeID = value
	case FieldEmail:
		v.Email = value
	case FieldPhoneNumber, "phone":
		v.PhoneNumber = value
	case FieldDepartment:
		v.Department = value
	case FieldDateOfJoining:
		v.DateOfJoining = value
	case FieldRole:
		v.Role = value
	default:
		return v, false
	}
	return v, true
}

// Missing は未入力のフィールド名を宣言順で返します。
func (v Values) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{FieldFirstName, v.FirstName},
		{FieldLastName, v.LastName},
		{FieldEmployeeID, v.EmployeeID},
		{FieldEmail, v.Email},
		{FieldPhoneNumber, v.PhoneNumber},
		{FieldDepartment, v.Department},
		{FieldDateOfJoining, v.DateOfJoining},
		{FieldRole, v.Role},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// State はフォームの状態です。ゼロ値は空の新規登録フォームです。
type State struct {
	values      Values
	mode        Mode
	editingKey  string
	fieldErrors map[string]string
	globalError string
	message     string
	submitting  bool
}

// New は空のフォームを返します。
func New() State {
	return State{}
}

func (s State) Values() Values      { return s.values }
func (s State) Mode() Mode          { return s.mode }
func (s State) EditingKey() string  { return s.editingKey }
func (s State) GlobalError() string { return s.globalError }
func (s State) Message() string     { return s.message }
func (s State) Submitting() bool    { return s.submitting }

// FieldError は指定フィールドの入力エラーを返します。
func (s State) FieldError(field string) string {
	return s.fieldErrors[field]
}

// HasFieldErrors はフィールド単位のエラーが残っているかを返します。
func (s State) HasFieldErrors() bool {
	return len(s.fieldErrors) > 0
}

// CanSubmit は送信可能かを返します。
func (s State) CanSubmit() bool {
	return !s.submitting && !s.HasFieldErrors()
}

func (s State) withFieldError(field, msg string) State {
	next := make(map[string]string, len(s.fieldErrors)+1)
	for k, v := range s.fieldErrors {
		if k != field {
			next[k] = v
		}
	}
	if msg != "" {
		next[field] = msg
	}
	if len(next) == 0 {
		next = nil
	}
	s.fieldErrors = next
	return s
}

// Action はフォームに対する操作です。
type Action interface {
	isAction()
}

// ChangeField は 1 フィールドの入力を反映します。
type ChangeField struct {
	Field string
	Value string
}

// Reset は入力値・エラー・メッセージをすべて消去し新規登録モードに戻します。
type Reset struct{}

// StartEdit は既存社員の値でフォームを埋め、編集モードにします。
type StartEdit struct {
	Values Values
}

// Submit は送信開始を表します。以前のメッセージとエラーは消去されます。
type Submit struct{}

// SubmitSucceeded は送信成功を表します。フォームは空に戻ります。
type SubmitSucceeded struct {
	Message string
}

// SubmitFailed は送信失敗を表します。入力値は保持されます。
type SubmitFailed struct {
	Error string
}

func (ChangeField) isAction()     {}
func (Reset) isAction()           {}
func (StartEdit) isAction()       {}
func (Submit) isAction()          {}
func (SubmitSucceeded) isAction() {}
func (SubmitFailed) isAction()    {}

// Reduce は action を適用した新しい State を返します。s 自体は変更しません。
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case ChangeField:
		// 編集中の社員 ID はキーなので変更できない
		if a.Field == FieldEmployeeID && s.mode == ModeEdit {
			return s
		}
		values, ok := s.values.with(a.Field, a.Value)
		if !ok {
			return s
		}
		s.values = values
		if a.Field == FieldEmployeeID {
			msg := ""
			if !employee.ValidEmployeeID(a.Value) {
				msg = MsgEmployeeIDFormat
			}
			s = s.withFieldError(FieldEmployeeID, msg)
		}
		return s
	case Reset:
		return New()
	case StartEdit:
		return State{
			values:     a.Values,
			mode:       ModeEdit,
			editingKey: a.Values.EmployeeID,
		}
	case Submit:
		s.submitting = true
		s.message = ""
		s.globalError = ""
		return s
	case SubmitSucceeded:
		next := New()
		next.message = a.Message
		return next
	case SubmitFailed:
		s.submitting = false
		s.message = ""
		s.globalError = a.Error
		return s
	default:
		return s
	}
}
