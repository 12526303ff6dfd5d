package repository

import (
	"context"

	"erp/internal/domain/model"
)

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	Create(ctx context.Context, o model.Order) (model.Order, error)
	Update(ctx context.Context, o model.Order) error

	// 取引先の注文履歴（orderDate降順）
	ListByClient(ctx context.Context, clientID int64) ([]model.Order, error)
}
