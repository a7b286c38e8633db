package mysql

import (
	"context"
	"errors"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/ogurasousui/employee-records/internal/core/employee"
	"gorm.io/gorm"
)

const (
	duplicateEntryErrorNumber  = 1062
	checkConstraintErrorNumber = 3819
)

// employeeRecord は employees テーブルの行に対応する gorm モデルです。
type employeeRecord struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	FirstName     string    `gorm:"size:255;not null"`
	LastName      string    `gorm:"size:255;not null"`
	EmployeeID    string    `gorm:"column:employee_id;size:6;not null;uniqueIndex:employees_employee_id_key"`
	Email         string    `gorm:"size:255;not null"`
	PhoneNumber   string    `gorm:"size:10;not null"`
	Department    string    `gorm:"size:100;not null"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	Role          string    `gorm:"size:100;not null"`
	CreatedAt     time.Time `gorm:"not null;index:employees_created_at_idx"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (employeeRecord) TableName() string {
	return "employees"
}

// EmployeeRepository は gorm (MySQL) を利用した社員永続化の実装です。
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// AutoMigrate は employees テーブルを作成・更新します。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&employeeRecord{})
}

// Insert は社員を新規登録します。
func (r *EmployeeRepository) Insert(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	rec := toRecord(e)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateMySQLError(err)
	}
	return toDomain(rec), nil
}

// ListAll は登録順に社員を全件取得します。
func (r *EmployeeRepository) ListAll(ctx context.Context) ([]*employee.Employee, error) {
	var recs []employeeRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&recs).Error; err != nil {
		return nil, translateMySQLError(err)
	}

	employees := make([]*employee.Employee, 0, len(recs))
	for _, rec := range recs {
		employees = append(employees, toDomain(rec))
	}
	return employees, nil
}

// UpdateByKey はパッチに含まれる列だけを更新し、更新後の行を返します。
func (r *EmployeeRepository) UpdateByKey(ctx context.Context, employeeID string, patch employee.Patch) (*employee.Employee, error) {
	if patch.IsEmpty() {
		return nil, employee.ErrValidation
	}

	var updated employeeRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&employeeRecord{}).
			Where("employee_id = ?", employeeID).
			Updates(patchColumns(patch)).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", employeeID).First(&updated).Error
	})
	if err != nil {
		return nil, translateMySQLError(err)
	}
	return toDomain(updated), nil
}

// DeleteByKey は社員を削除します。
func (r *EmployeeRepository) DeleteByKey(ctx context.Context, employeeID string) error {
	result := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&employeeRecord{})
	if result.Error != nil {
		return translateMySQLError(result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrNotFound
	}
	return nil
}

// patchColumns は許可リストの列だけを更新用の map に詰めます。
func patchColumns(p employee.Patch) map[string]any {
	cols := make(map[string]any, 8)
	if p.FirstName != nil {
		cols["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["last_name"] = *p.LastName
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = *p.PhoneNumber
	}
	if p.Department != nil {
		cols["department"] = *p.Department
	}
	if p.DateOfJoining != nil {
		cols["date_of_joining"] = employee.ToDate(*p.DateOfJoining)
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	if !p.UpdatedAt.IsZero() {
		cols["updated_at"] = p.UpdatedAt
	}
	return cols
}

func toRecord(e *employee.Employee) employeeRecord {
	return employeeRecord{
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		EmployeeID:    e.EmployeeID,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		Department:    e.Department,
		DateOfJoining: employee.ToDate(e.DateOfJoining),
		Role:          e.Role,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toDomain(rec employeeRecord) *employee.Employee {
	return &employee.Employee{
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		EmployeeID:    rec.EmployeeID,
		Email:         rec.Email,
		PhoneNumber:   rec.PhoneNumber,
		Department:    rec.Department,
		DateOfJoining: employee.ToDate(rec.DateOfJoining.UTC()),
		Role:          rec.Role,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func translateMySQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employee.ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return employee.ErrInvalidFormat
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case duplicateEntryErrorNumber:
			return employee.ErrDuplicateKey
		case checkConstraintErrorNumber:
			return employee.ErrInvalidFormat
		}
	}

	return err
}
