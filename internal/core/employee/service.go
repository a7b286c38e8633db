package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	clock     Clock
	tx        TransactionManager
	validator *Validator
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, validator: NewValidator(clock)}
}

// CreateEmployeeInput は社員登録時の入力です。入社日は YYYY-MM-DD 形式の文字列で受け取ります。
type CreateEmployeeInput struct {
	FirstName     string
	LastName      string
	EmployeeID    string
	Email         string
	PhoneNumber   string
	Department    string
	DateOfJoining string
	Role          string
}

// UpdateEmployeeInput は社員更新時の入力です。nil のフィールドは変更しません。
type UpdateEmployeeInput struct {
	EmployeeID    string
	FirstName     *string
	LastName      *string
	Email         *string
	PhoneNumber   *string
	Department    *string
	DateOfJoining *string
	Role          *string
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	EmployeeID string
}

// CreateEmployee は入力を検証し、新しい社員を登録します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	in = normalizeCreateInput(in)
	if err := s.validator.ValidateCreate(in); err != nil {
		return nil, err
	}

	joined, err := ParseDate(in.DateOfJoining)
	if err != nil {
		return nil, fmt.Errorf("dateOfJoining: %w", ErrInvalidFormat)
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Insert(txCtx, &Employee{
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			EmployeeID:    in.EmployeeID,
			Email:         in.Email,
			PhoneNumber:   in.PhoneNumber,
			Department:    in.Department,
			DateOfJoining: joined,
			Role:          in.Role,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, storeError("create employee", err)
	}

	return created, nil
}

// ListEmployees は登録済みの社員を全件取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ListAll(txCtx)
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, storeError("list employees", err)
	}

	if employees == nil {
		employees = []*Employee{}
	}
	return employees, nil
}

// UpdateEmployee はパッチに含まれるフィールドだけを検証し、更新します。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	key := strings.TrimSpace(in.EmployeeID)
	if key == "" {
		return nil, missingKeyError()
	}

	in = normalizeUpdateInput(in)
	if err := s.validator.ValidateUpdate(in); err != nil {
		return nil, err
	}

	patch := Patch{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Department:  in.Department,
		Role:        in.Role,
	}
	if in.DateOfJoining != nil {
		joined, err := ParseDate(*in.DateOfJoining)
		if err != nil {
			return nil, fmt.Errorf("dateOfJoining: %w", ErrInvalidFormat)
		}
		patch.DateOfJoining = &joined
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		patch.UpdatedAt = s.clock.Now()
		result, err := s.repo.UpdateByKey(txCtx, key, patch)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, storeError("update employee", err)
	}

	return updated, nil
}

// DeleteEmployee は社員を削除します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	key := strings.TrimSpace(in.EmployeeID)
	if key == "" {
		return missingKeyError()
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteByKey(txCtx, key)
	}); err != nil {
		return storeError("delete employee", err)
	}
	return nil
}

// storeError は型付きのエラーをそのまま返し、それ以外は文脈を付けてラップします。
func storeError(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func missingKeyError() error {
	return &ValidationError{Violations: []Violation{{
		Field:   "employeeId",
		Kind:    KindMissingField,
		Message: violationMessages["required"],
	}}}
}

func normalizeCreateInput(in CreateEmployeeInput) CreateEmployeeInput {
	return CreateEmployeeInput{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		EmployeeID:    strings.TrimSpace(in.EmployeeID),
		Email:         strings.TrimSpace(in.Email),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		Department:    strings.TrimSpace(in.Department),
		DateOfJoining: strings.TrimSpace(in.DateOfJoining),
		Role:          strings.TrimSpace(in.Role),
	}
}

func normalizeUpdateInput(in UpdateEmployeeInput) UpdateEmployeeInput {
	return UpdateEmployeeInput{
		EmployeeID:    strings.TrimSpace(in.EmployeeID),
		FirstName:     trimPtr(in.FirstName),
		LastName:      trimPtr(in.LastName),
		Email:         trimPtr(in.Email),
		PhoneNumber:   trimPtr(in.PhoneNumber),
		Department:    trimPtr(in.Department),
		DateOfJoining: trimPtr(in.DateOfJoining),
		Role:          trimPtr(in.Role),
	}
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
