package employee

import "time"

// DateLayout は入社日の入出力フォーマットです。
const DateLayout = "2006-01-02"

// SuggestedDepartments は画面で提示する部署の候補です。サーバー側では閉じた集合として扱いません。
var SuggestedDepartments = []string{"HR", "Engineering", "Marketing", "Sales"}

// Employee は社員エンティティです。EmployeeID が自然キーになります。
type Employee struct {
	FirstName     string
	LastName      string
	EmployeeID    string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining time.Time
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Patch は更新可能なフィールドの許可リストです。EmployeeID は含みません。
type Patch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	PhoneNumber   *string
	Department    *string
	DateOfJoining *time.Time
	Role          *string
	UpdatedAt     time.Time
}

// IsEmpty は更新対象のフィールドが一つもない場合に true を返します。
func (p Patch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Email == nil &&
		p.PhoneNumber == nil &&
		p.Department == nil &&
		p.DateOfJoining == nil &&
		p.Role == nil
}

// Apply はパッチの内容を e に反映した複製を返します。
func (p Patch) Apply(e *Employee) *Employee {
	if e == nil {
		return nil
	}
	out := *e
	if p.FirstName != nil {
		out.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		out.LastName = *p.LastName
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		out.PhoneNumber = *p.PhoneNumber
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	if p.DateOfJoining != nil {
		out.DateOfJoining = *p.DateOfJoining
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if !p.UpdatedAt.IsZero() {
		out.UpdatedAt = p.UpdatedAt
	}
	return &out
}

// ToDate は時刻を UTC の日付(0時0分)に丸めます。
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
