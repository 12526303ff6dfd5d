package repository

import (
	"context"

	"erp/internal/domain/model"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id int64) (model.Employee, error)
	FindByCode(ctx context.Context, code string) (model.Employee, error)
	Create(ctx context.Context, e model.Employee) (model.Employee, error)
	Update(ctx context.Context, e model.Employee) error

	// excludeID以外でemailが使われていればtrue
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)

	// 採番用に最後のEmployeeCode（"EMP007"など）を返す。未登録なら""。
	LastEmployeeCode(ctx context.Context) (string, error)
}
