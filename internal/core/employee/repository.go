package employee

import "context"

// Repository は社員永続化の抽象です。社員番号(EmployeeID)をキーに操作します。
type Repository interface {
	// Insert は社員を登録します。同じ社員番号が存在する場合は ErrDuplicateKey を返します。
	Insert(ctx context.Context, employee *Employee) (*Employee, error)
	// ListAll は登録順に全件を返します。
	ListAll(ctx context.Context) ([]*Employee, error)
	// UpdateByKey はパッチを適用します。対象が存在しない場合は ErrNotFound を返します。
	UpdateByKey(ctx context.Context, employeeID string, patch Patch) (*Employee, error)
	// DeleteByKey は社員を削除します。対象が存在しない場合は ErrNotFound を返します。
	DeleteByKey(ctx context.Context, employeeID string) error
}
