package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-records/internal/core/employee"
	pgdb "github.com/ogurasousui/employee-records/internal/platform/db/postgres"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

const employeeColumns = `first_name, last_name, employee_id, email, phone_number, department, date_of_joining, role, created_at, updated_at`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Insert は社員を新規登録します。
func (r *EmployeeRepository) Insert(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (`+employeeColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+employeeColumns,
		e.FirstName,
		e.LastName,
		e.EmployeeID,
		e.Email,
		e.PhoneNumber,
		e.Department,
		employee.ToDate(e.DateOfJoining),
		e.Role,
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return created, nil
}

// ListAll は登録順に社員を全件取得します。
func (r *EmployeeRepository) ListAll(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         ORDER BY created_at ASC, id ASC
    `)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}

	return employees, nil
}

// UpdateByKey は社員番号で対象を特定し、パッチに含まれる列だけを更新します。
func (r *EmployeeRepository) UpdateByKey(ctx context.Context, employeeID string, patch employee.Patch) (*employee.Employee, error) {
	if patch.IsEmpty() {
		return nil, employee.ErrValidation
	}

	assignments := patchAssignments(patch)
	sets := make([]string, 0, len(assignments))
	args := make([]any, 0, len(assignments)+1)
	for _, a := range assignments {
		args = append(args, a.value)
		sets = append(sets, a.column+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, employeeID)

	query := `
        UPDATE employees
           SET ` + strings.Join(sets, ", ") + `
         WHERE employee_id = $` + strconv.Itoa(len(args)) + `
        RETURNING ` + employeeColumns

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	updated, err := scanEmployee(exec.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err)
	}
	return updated, nil
}

// DeleteByKey は社員を削除します。
func (r *EmployeeRepository) DeleteByKey(ctx context.Context, employeeID string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

type assignment struct {
	column string
	value  any
}

// patchAssignments は許可リストの列だけを SET 句の候補として並べます。
func patchAssignments(p employee.Patch) []assignment {
	out := make([]assignment, 0, 8)
	if p.FirstName != nil {
		out = append(out, assignment{"first_name", *p.FirstName})
	}
	if p.LastName != nil {
		out = append(out, assignment{"last_name", *p.LastName})
	}
	if p.Email != nil {
		out = append(out, assignment{"email", *p.Email})
	}
	if p.PhoneNumber != nil {
		out = append(out, assignment{"phone_number", *p.PhoneNumber})
	}
	if p.Department != nil {
		out = append(out, assignment{"department", *p.Department})
	}
	if p.DateOfJoining != nil {
		out = append(out, assignment{"date_of_joining", employee.ToDate(*p.DateOfJoining)})
	}
	if p.Role != nil {
		out = append(out, assignment{"role", *p.Role})
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	out = append(out, assignment{"updated_at", updatedAt})
	return out
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		e      employee.Employee
		joined time.Time
	)

	if err := row.Scan(
		&e.FirstName,
		&e.LastName,
		&e.EmployeeID,
		&e.Email,
		&e.PhoneNumber,
		&e.Department,
		&joined,
		&e.Role,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}

	e.DateOfJoining = employee.ToDate(joined.UTC())
	return &e, nil
}

func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrDuplicateKey
		case checkViolationCode:
			return employee.ErrInvalidFormat
		}
	}

	return err
}
